// Package router assembles the gin engine: global middleware, the auth
// endpoints and one uniform CRUD route set per entity, each gated by the
// role map (reads for any authenticated user, writes for admin with a
// teacher-or-admin carve-out on internships and both attendance feeds,
// deletes for admin only).
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/handler"
	"github.com/ifsi-gestion/ifsi-api/internal/middleware"
	"github.com/ifsi-gestion/ifsi-api/internal/models"
	"github.com/ifsi-gestion/ifsi-api/internal/service"
	"github.com/ifsi-gestion/ifsi-api/pkg/config"
	"github.com/ifsi-gestion/ifsi-api/pkg/logger"
	corsmiddleware "github.com/ifsi-gestion/ifsi-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ifsi-gestion/ifsi-api/pkg/middleware/requestid"
)

// Services groups everything the router mounts.
type Services struct {
	Auth                 *service.AuthService
	Users                *service.UserService
	Filieres             *service.FiliereService
	Classes              *service.ClassService
	Students             *service.StudentService
	Services             *service.ServiceService
	Periodes             *service.PeriodeService
	Internships          *service.InternshipService
	Attendance           *service.AttendanceService
	InternshipAttendance *service.InternshipAttendanceService
	Subjects             *service.SubjectService
	Rooms                *service.RoomService
	Timetables           *service.TimetableService
	Teachers             *service.TeacherService
	Dashboard            *service.DashboardService
	Exports              *service.ExportService
	Imports              *service.ImportService
	Metrics              *service.MetricsService
}

// New builds the fully wired engine.
func New(cfg *config.Config, logr *zap.Logger, svcs Services) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled && svcs.Metrics != nil {
		r.Use(middleware.Metrics(svcs.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if cfg.Metrics.Enabled && svcs.Metrics != nil {
		r.GET("/metrics", gin.WrapH(svcs.Metrics.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := handler.NewAuthHandler(svcs.Auth, handler.AuthCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
	})

	api := r.Group(cfg.APIPrefix)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	authed := api.Group("", middleware.Session(svcs.Auth, cfg.Session.CookieName))
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/user", authHandler.Me)

	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	teacherOrAdmin := middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher)

	authed.GET("/dashboard/stats", handler.NewDashboardHandler(svcs.Dashboard).Stats)

	exportHandler := handler.NewExportHandler(svcs.Exports)
	importHandler := handler.NewImportHandler(svcs.Imports, cfg.Imports.MaxFileSizeBytes)
	authed.GET("/students/export", adminOnly, exportHandler.Students)
	authed.POST("/students/import", adminOnly, importHandler.Students)
	authed.GET("/attendance/export", teacherOrAdmin, exportHandler.Attendance)

	mount(authed, "filieres", handler.NewResource[models.Filiere, service.CreateFiliereRequest, service.UpdateFiliereRequest](svcs.Filieres,
		func(c *gin.Context) ([]models.Filiere, error) {
			return svcs.Filieres.List(c.Request.Context())
		}), adminOnly, adminOnly)

	mount(authed, "classes", handler.NewResource[models.Class, service.CreateClassRequest, service.UpdateClassRequest](svcs.Classes,
		func(c *gin.Context) ([]models.Class, error) {
			filiereID, err := handler.QueryID(c, "filiereId")
			if err != nil {
				return nil, err
			}
			return svcs.Classes.List(c.Request.Context(), models.ClassFilter{FiliereID: filiereID})
		}), adminOnly, adminOnly)

	mount(authed, "students", handler.NewResource[models.Student, service.CreateStudentRequest, service.UpdateStudentRequest](svcs.Students,
		func(c *gin.Context) ([]models.Student, error) {
			classID, err := handler.QueryID(c, "classId")
			if err != nil {
				return nil, err
			}
			return svcs.Students.List(c.Request.Context(), models.StudentFilter{ClassID: classID})
		}), adminOnly, adminOnly)

	mount(authed, "services", handler.NewResource[models.Service, service.CreateServiceRequest, service.UpdateServiceRequest](svcs.Services,
		func(c *gin.Context) ([]models.Service, error) {
			return svcs.Services.List(c.Request.Context())
		}), adminOnly, adminOnly)

	mount(authed, "periode-de-stages", handler.NewResource[models.PeriodeDeStage, service.CreatePeriodeRequest, service.UpdatePeriodeRequest](svcs.Periodes,
		func(c *gin.Context) ([]models.PeriodeDeStage, error) {
			return svcs.Periodes.List(c.Request.Context())
		}), adminOnly, adminOnly)

	mount(authed, "internships", handler.NewResource[models.Internship, service.CreateInternshipRequest, service.UpdateInternshipRequest](svcs.Internships,
		func(c *gin.Context) ([]models.Internship, error) {
			filter, err := internshipFilter(c)
			if err != nil {
				return nil, err
			}
			return svcs.Internships.List(c.Request.Context(), filter)
		}), teacherOrAdmin, adminOnly)

	mount(authed, "attendance", handler.NewResource[models.Attendance, service.CreateAttendanceRequest, service.UpdateAttendanceRequest](svcs.Attendance,
		func(c *gin.Context) ([]models.Attendance, error) {
			filter, err := attendanceFilter(c)
			if err != nil {
				return nil, err
			}
			return svcs.Attendance.List(c.Request.Context(), filter)
		}), teacherOrAdmin, adminOnly)

	mount(authed, "internship-attendance", handler.NewResource[models.InternshipAttendance, service.CreateInternshipAttendanceRequest, service.UpdateInternshipAttendanceRequest](svcs.InternshipAttendance,
		func(c *gin.Context) ([]models.InternshipAttendance, error) {
			filter, err := internshipAttendanceFilter(c)
			if err != nil {
				return nil, err
			}
			return svcs.InternshipAttendance.List(c.Request.Context(), filter)
		}), teacherOrAdmin, adminOnly)

	mount(authed, "subjects", handler.NewResource[models.Subject, service.CreateSubjectRequest, service.UpdateSubjectRequest](svcs.Subjects,
		func(c *gin.Context) ([]models.Subject, error) {
			return svcs.Subjects.List(c.Request.Context())
		}), adminOnly, adminOnly)

	mount(authed, "rooms", handler.NewResource[models.Room, service.CreateRoomRequest, service.UpdateRoomRequest](svcs.Rooms,
		func(c *gin.Context) ([]models.Room, error) {
			return svcs.Rooms.List(c.Request.Context())
		}), adminOnly, adminOnly)

	mount(authed, "timetables", handler.NewResource[models.Timetable, service.CreateTimetableRequest, service.UpdateTimetableRequest](svcs.Timetables,
		func(c *gin.Context) ([]models.Timetable, error) {
			filter, err := timetableFilter(c)
			if err != nil {
				return nil, err
			}
			return svcs.Timetables.List(c.Request.Context(), filter)
		}), adminOnly, adminOnly)

	mount(authed, "teachers", handler.NewResource[models.Teacher, service.CreateTeacherRequest, service.UpdateTeacherRequest](svcs.Teachers,
		func(c *gin.Context) ([]models.Teacher, error) {
			return svcs.Teachers.List(c.Request.Context())
		}), adminOnly, adminOnly)

	// The users collection is admin-only for every verb, reads included.
	users := authed.Group("", adminOnly)
	mount(users, "users", handler.NewResource[models.User, service.CreateUserRequest, service.UpdateUserRequest](svcs.Users,
		func(c *gin.Context) ([]models.User, error) {
			return svcs.Users.List(c.Request.Context())
		}), nil, nil)

	return r
}

// mount registers the uniform five-route set for one entity. write gates
// POST and PUT, del gates DELETE; nil means the group's own middleware
// already covers the verb.
func mount[E any, C any, U any](rg *gin.RouterGroup, path string, h *handler.Resource[E, C, U], write, del gin.HandlerFunc) {
	rg.GET("/"+path, h.List)
	rg.GET("/"+path+"/:id", h.Get)
	if write != nil {
		rg.POST("/"+path, write, h.Create)
		rg.PUT("/"+path+"/:id", write, h.Update)
	} else {
		rg.POST("/"+path, h.Create)
		rg.PUT("/"+path+"/:id", h.Update)
	}
	if del != nil {
		rg.DELETE("/"+path+"/:id", del, h.Delete)
	} else {
		rg.DELETE("/"+path+"/:id", h.Delete)
	}
}

// Filter parsing honors one key at a time, first match wins.

func internshipFilter(c *gin.Context) (models.InternshipFilter, error) {
	var filter models.InternshipFilter
	studentID, err := handler.QueryID(c, "studentId")
	if err != nil {
		return filter, err
	}
	if studentID != nil {
		filter.StudentID = studentID
		return filter, nil
	}
	serviceID, err := handler.QueryID(c, "serviceId")
	if err != nil {
		return filter, err
	}
	if serviceID != nil {
		filter.ServiceID = serviceID
		return filter, nil
	}
	periodeID, err := handler.QueryID(c, "periodeId")
	if err != nil {
		return filter, err
	}
	filter.PeriodeID = periodeID
	return filter, nil
}

func attendanceFilter(c *gin.Context) (models.AttendanceFilter, error) {
	var filter models.AttendanceFilter
	studentID, err := handler.QueryID(c, "studentId")
	if err != nil {
		return filter, err
	}
	if studentID != nil {
		filter.StudentID = studentID
		return filter, nil
	}
	filter.Date = handler.QueryString(c, "date")
	return filter, nil
}

func internshipAttendanceFilter(c *gin.Context) (models.InternshipAttendanceFilter, error) {
	var filter models.InternshipAttendanceFilter
	internshipID, err := handler.QueryID(c, "internshipId")
	if err != nil {
		return filter, err
	}
	if internshipID != nil {
		filter.InternshipID = internshipID
		return filter, nil
	}
	studentID, err := handler.QueryID(c, "studentId")
	if err != nil {
		return filter, err
	}
	if studentID != nil {
		filter.StudentID = studentID
		return filter, nil
	}
	filter.Date = handler.QueryString(c, "date")
	return filter, nil
}

func timetableFilter(c *gin.Context) (models.TimetableFilter, error) {
	var filter models.TimetableFilter
	classID, err := handler.QueryID(c, "classId")
	if err != nil {
		return filter, err
	}
	if classID != nil {
		filter.ClassID = classID
		return filter, nil
	}
	teacherID, err := handler.QueryID(c, "teacherId")
	if err != nil {
		return filter, err
	}
	if teacherID != nil {
		filter.TeacherID = teacherID
		return filter, nil
	}
	dayOfWeek, err := handler.QueryInt(c, "dayOfWeek")
	if err != nil {
		return filter, err
	}
	filter.DayOfWeek = dayOfWeek
	return filter, nil
}
