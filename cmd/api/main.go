package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/ifsi-gestion/ifsi-api/api/swagger"
	"github.com/ifsi-gestion/ifsi-api/internal/repository"
	"github.com/ifsi-gestion/ifsi-api/internal/repository/memory"
	"github.com/ifsi-gestion/ifsi-api/internal/router"
	"github.com/ifsi-gestion/ifsi-api/internal/service"
	"github.com/ifsi-gestion/ifsi-api/internal/session"
	"github.com/ifsi-gestion/ifsi-api/pkg/cache"
	"github.com/ifsi-gestion/ifsi-api/pkg/config"
	"github.com/ifsi-gestion/ifsi-api/pkg/database"
	"github.com/ifsi-gestion/ifsi-api/pkg/logger"
)

// @title IFSI Gestion API
// @version 1.0.0
// @description Administration backend for a nursing school
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	sessions, err := newSessionStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init session store", "error", err)
	}

	svcs, err := buildServices(cfg, logr, sessions)
	if err != nil {
		logr.Sugar().Fatalw("failed to wire services", "error", err)
	}

	r := router.New(cfg, logr, svcs)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting",
		"addr", addr,
		"env", cfg.Env,
		"store", cfg.Store.Driver,
		"sessions", cfg.Session.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Driver {
	case config.SessionRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return session.NewRedisStore(client), nil
	case config.SessionMemory, "":
		return session.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}

func buildServices(cfg *config.Config, logr *zap.Logger, sessions session.Store) (router.Services, error) {
	validate := validator.New()
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return router.Services{}, fmt.Errorf("connect postgres: %w", err)
		}
		return postgresServices(cfg, logr, validate, sessions, db), nil
	case config.StoreMemory, "":
		return memoryServices(cfg, logr, validate, sessions, memory.NewStore()), nil
	default:
		return router.Services{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func memoryServices(cfg *config.Config, logr *zap.Logger, validate *validator.Validate, sessions session.Store, store *memory.Store) router.Services {
	students := store.Students()
	filieres := store.Filieres()
	classes := store.Classes()
	services := store.Services()
	internships := store.Internships()
	attendance := store.Attendance()

	return router.Services{
		Auth:                 service.NewAuthService(store.Users(), sessions, cfg.Session.TTL, validate, logr),
		Users:                service.NewUserService(store.Users(), validate, logr),
		Filieres:             service.NewFiliereService(filieres, validate, logr),
		Classes:              service.NewClassService(classes, validate, logr),
		Students:             service.NewStudentService(students, validate, logr),
		Services:             service.NewServiceService(services, validate, logr),
		Periodes:             service.NewPeriodeService(store.Periodes(), validate, logr),
		Internships:          service.NewInternshipService(internships, validate, logr),
		Attendance:           service.NewAttendanceService(attendance, validate, logr),
		InternshipAttendance: service.NewInternshipAttendanceService(store.InternshipAttendance(), validate, logr),
		Subjects:             service.NewSubjectService(store.Subjects(), validate, logr),
		Rooms:                service.NewRoomService(store.Rooms(), validate, logr),
		Timetables:           service.NewTimetableService(store.Timetables(), validate, logr),
		Teachers:             service.NewTeacherService(store.Teachers(), validate, logr),
		Dashboard:            service.NewDashboardService(students, filieres, classes, services, internships, attendance, logr),
		Exports:              service.NewExportService(students, attendance, logr),
		Imports:              service.NewImportService(students, logr),
		Metrics:              newMetrics(cfg),
	}
}

func postgresServices(cfg *config.Config, logr *zap.Logger, validate *validator.Validate, sessions session.Store, db *sqlx.DB) router.Services {
	students := repository.NewStudentRepository(db)
	filieres := repository.NewFiliereRepository(db)
	classes := repository.NewClassRepository(db)
	services := repository.NewServiceRepository(db)
	internships := repository.NewInternshipRepository(db)
	attendance := repository.NewAttendanceRepository(db)
	users := repository.NewUserRepository(db)

	return router.Services{
		Auth:                 service.NewAuthService(users, sessions, cfg.Session.TTL, validate, logr),
		Users:                service.NewUserService(users, validate, logr),
		Filieres:             service.NewFiliereService(filieres, validate, logr),
		Classes:              service.NewClassService(classes, validate, logr),
		Students:             service.NewStudentService(students, validate, logr),
		Services:             service.NewServiceService(services, validate, logr),
		Periodes:             service.NewPeriodeService(repository.NewPeriodeRepository(db), validate, logr),
		Internships:          service.NewInternshipService(internships, validate, logr),
		Attendance:           service.NewAttendanceService(attendance, validate, logr),
		InternshipAttendance: service.NewInternshipAttendanceService(repository.NewInternshipAttendanceRepository(db), validate, logr),
		Subjects:             service.NewSubjectService(repository.NewSubjectRepository(db), validate, logr),
		Rooms:                service.NewRoomService(repository.NewRoomRepository(db), validate, logr),
		Timetables:           service.NewTimetableService(repository.NewTimetableRepository(db), validate, logr),
		Teachers:             service.NewTeacherService(repository.NewTeacherRepository(db), validate, logr),
		Dashboard:            service.NewDashboardService(students, filieres, classes, services, internships, attendance, logr),
		Exports:              service.NewExportService(students, attendance, logr),
		Imports:              service.NewImportService(students, logr),
		Metrics:              newMetrics(cfg),
	}
}

func newMetrics(cfg *config.Config) *service.MetricsService {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return service.NewMetricsService()
}
