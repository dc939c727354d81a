package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/repository/memory"
	"github.com/ifsi-gestion/ifsi-api/internal/service"
	"github.com/ifsi-gestion/ifsi-api/internal/session"
	"github.com/ifsi-gestion/ifsi-api/pkg/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:       config.EnvDevelopment,
		APIPrefix: "/api",
		Store:     config.StoreConfig{Driver: config.StoreMemory},
		Session: config.SessionConfig{
			Driver:     config.SessionMemory,
			TTL:        time.Hour,
			CookieName: "ifsi_session",
		},
	}

	logr := zap.NewNop()
	validate := validator.New()
	sessions := session.NewMemoryStore()
	store := memory.NewStore()

	students := store.Students()
	filieres := store.Filieres()
	classes := store.Classes()
	services := store.Services()
	internships := store.Internships()
	attendance := store.Attendance()

	return New(cfg, logr, Services{
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
	})
}

func request(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// registerUser creates an account through the public endpoint and returns
// its session token.
func registerUser(t *testing.T, r *gin.Engine, username, role string) string {
	t.Helper()
	body := `{"username":"` + username + `","password":"motdepasse","fullName":"Test User","role":"` + role + `"}`
	rec := request(r, http.MethodPost, "/api/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Data.Token)
	return env.Data.Token
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t)

	rec := request(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/students", "/api/filieres", "/api/dashboard/stats", "/api/user"} {
		rec := request(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouterLoginFlow(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "directrice", "admin")

	rec := request(r, http.MethodPost, "/api/login", "", `{"username":"directrice","password":"motdepasse"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	token := env.Data.Token

	rec = request(r, http.MethodGet, "/api/user", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"directrice"`)

	rec = request(r, http.MethodPost, "/api/logout", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(r, http.MethodGet, "/api/user", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterLoginBadPassword(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "directrice", "admin")

	rec := request(r, http.MethodPost, "/api/login", "", `{"username":"directrice","password":"faux"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestRouterAdminCrud(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "directrice", "admin")

	rec := request(r, http.MethodPost, "/api/filieres", admin, `{"name":"Infirmier Polyvalent","abbreviation":"IP","numYears":3}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = request(r, http.MethodPost, "/api/classes", admin, `{"name":"IP1-A","filiereId":1,"abbreviation":"IP1A"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = request(r, http.MethodGet, "/api/classes?filiereId=1", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IP1-A")

	rec = request(r, http.MethodGet, "/api/classes?filiereId=99", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)

	rec = request(r, http.MethodDelete, "/api/classes/1", admin, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouterPeriodeDeStagePath(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "directrice", "admin")

	rec := request(r, http.MethodPost, "/api/periode-de-stages", admin, `{"name":"Stage S1","startDate":"2026-01-05","endDate":"2026-02-27"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = request(r, http.MethodGet, "/api/periode-de-stages", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stage S1")

	rec = request(r, http.MethodGet, "/api/periode-de-stages/1", admin, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// The pluralization lives on "stages"; the other spelling is not a route.
	rec = request(r, http.MethodGet, "/api/periodes-de-stage", admin, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterRoleGates(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "directrice", "admin")
	teacher := registerUser(t, r, "formateur", "teacher")

	// Reads are open to any authenticated role.
	rec := request(r, http.MethodGet, "/api/students", teacher, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Admin-only writes.
	rec = request(r, http.MethodPost, "/api/filieres", teacher, `{"name":"Sage-femme","abbreviation":"SF","numYears":3}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Teachers may record attendance.
	rec = request(r, http.MethodPost, "/api/attendance", teacher, `{"studentId":1,"date":"2026-03-02","status":"Present"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// But may not delete it.
	rec = request(r, http.MethodDelete, "/api/attendance/1", teacher, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The users collection is closed to non-admins entirely.
	rec = request(r, http.MethodGet, "/api/users", teacher, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouterMalformedFilterIs400(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "directrice", "admin")

	rec := request(r, http.MethodGet, "/api/classes?filiereId=abc", admin, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestRouterStudentExportCSV(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "directrice", "admin")
	teacher := registerUser(t, r, "formateur", "teacher")

	rec := request(r, http.MethodPost, "/api/students", admin, `{"fullName":"Awa Diallo"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = request(r, http.MethodGet, "/api/students/export?format=csv", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "students.csv")
	assert.Contains(t, rec.Body.String(), "Awa Diallo")

	// Roster export is admin-only.
	rec = request(r, http.MethodGet, "/api/students/export", teacher, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouterDashboardStats(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "directrice", "admin")

	rec := request(r, http.MethodPost, "/api/students", admin, `{"fullName":"Awa Diallo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = request(r, http.MethodGet, "/api/dashboard/stats", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalStudents":1`)
	assert.Contains(t, rec.Body.String(), `"activeStudents":1`)
}
