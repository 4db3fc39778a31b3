package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nes268/healmate/internal/config"
	"github.com/nes268/healmate/internal/email"
	"github.com/nes268/healmate/internal/handler"
	appointmentHandler "github.com/nes268/healmate/internal/handler/appointment"
	authHandler "github.com/nes268/healmate/internal/handler/auth"
	dashboardHandler "github.com/nes268/healmate/internal/handler/dashboard"
	doctorHandler "github.com/nes268/healmate/internal/handler/doctor"
	emergencyHandler "github.com/nes268/healmate/internal/handler/emergency"
	paymentHandler "github.com/nes268/healmate/internal/handler/payment"
	userHandler "github.com/nes268/healmate/internal/handler/user"
	waittimeHandler "github.com/nes268/healmate/internal/handler/waittime"
	"github.com/nes268/healmate/internal/middleware"
	"github.com/nes268/healmate/internal/repository/sqlite"
	"github.com/nes268/healmate/internal/router"
	appointmentService "github.com/nes268/healmate/internal/service/appointment"
	authService "github.com/nes268/healmate/internal/service/auth"
	dashboardService "github.com/nes268/healmate/internal/service/dashboard"
	doctorService "github.com/nes268/healmate/internal/service/doctor"
	emergencyService "github.com/nes268/healmate/internal/service/emergency"
	paymentService "github.com/nes268/healmate/internal/service/payment"
	userService "github.com/nes268/healmate/internal/service/user"
	waittimeService "github.com/nes268/healmate/internal/service/waittime"
	"github.com/nes268/healmate/pkg/auth"
	"github.com/nes268/healmate/pkg/security"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Seed(db))

	userRepo := sqlite.NewUserRepository(db)
	doctorRepo := sqlite.NewDoctorRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	waitTimeRepo := sqlite.NewWaitTimeRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)

	jwtSvc := auth.NewJWTService("test-secret", 24*time.Hour)
	hasher := security.NewBcryptHasher(4)
	emailSvc := email.NewService(config.SMTPConfig{})

	authSvc := authService.NewService(userRepo, hasher, jwtSvc, auth.NewMemoryRevoker())

	r := router.NewRouter(
		middleware.NewAuthMiddleware(authSvc),
		handler.NewHealthHandler(db),
		authHandler.NewHandler(authSvc),
		[]router.Handler{
			doctorHandler.NewHandler(doctorService.NewService(doctorRepo)),
			waittimeHandler.NewHandler(waittimeService.NewService(waitTimeRepo)),
		},
		[]router.Handler{
			userHandler.NewHandler(userService.NewService(userRepo)),
			dashboardHandler.NewHandler(dashboardService.NewService(appointmentRepo, paymentRepo)),
			appointmentHandler.NewHandler(appointmentService.NewService(appointmentRepo, emailSvc)),
			paymentHandler.NewHandler(paymentService.NewService(paymentRepo)),
			emergencyHandler.NewHandler(emergencyService.NewService(emailSvc)),
		},
		router.Config{
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
			CORS:           middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()
	return r.Engine()
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerAlice(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	w := doRequest(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
		"phone":    "+1000000000",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice@example.com", resp.User.Email)
	return resp.Token
}

func TestHealthAndBanner(t *testing.T) {
	engine := newTestServer(t)

	require.Equal(t, http.StatusOK, doRequest(t, engine, http.MethodGet, "/", "", nil).Code)
	require.Equal(t, http.StatusOK, doRequest(t, engine, http.MethodGet, "/healthz", "", nil).Code)
	require.Equal(t, http.StatusOK, doRequest(t, engine, http.MethodGet, "/metrics", "", nil).Code)
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/user/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/appointments", "garbage-token", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterLoginAndProfile(t *testing.T) {
	engine := newTestServer(t)
	registerAlice(t, engine)

	// duplicate registration fails and the first account remains usable
	w := doRequest(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Imposter",
		"email":    "alice@example.com",
		"password": "other-pass",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)

	w = doRequest(t, engine, http.MethodGet, "/api/user/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	decode(t, w, &profile)
	require.Equal(t, "alice@example.com", profile.Email)
	require.Empty(t, profile.Password)
}

func TestLoginInvalidCredentials(t *testing.T) {
	engine := newTestServer(t)
	registerAlice(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-pass",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	engine := newTestServer(t)
	token := registerAlice(t, engine)

	require.Equal(t, http.StatusOK, doRequest(t, engine, http.MethodPost, "/api/auth/logout", token, nil).Code)

	w := doRequest(t, engine, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestDoctorsArePublicAndFiltered(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/doctors?specialty=Cardiology", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doctors []struct {
		Name           string   `json:"name"`
		AvailableSlots []string `json:"availableSlots"`
	}
	decode(t, w, &doctors)
	require.Len(t, doctors, 1)
	require.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	require.Equal(t, []string{"09:00", "10:00", "11:00", "14:00", "15:00"}, doctors[0].AvailableSlots)

	require.Equal(t, http.StatusNotFound, doRequest(t, engine, http.MethodGet, "/api/doctors/999", "", nil).Code)
}

func TestAppointmentFlowAndDashboard(t *testing.T) {
	engine := newTestServer(t)
	token := registerAlice(t, engine)

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	w := doRequest(t, engine, http.MethodPost, "/api/appointments", token, gin.H{
		"doctorName": "Dr. Sarah Johnson",
		"specialty":  "Cardiology",
		"date":       future,
		"time":       "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID       int64  `json:"id"`
		Duration int    `json:"duration"`
		Status   string `json:"status"`
	}
	decode(t, w, &created)
	require.Equal(t, 60, created.Duration)
	require.Equal(t, "confirmed", created.Status)

	w = doRequest(t, engine, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		UpcomingAppointments int `json:"upcomingAppointments"`
	}
	decode(t, w, &stats)
	require.Equal(t, 1, stats.UpcomingAppointments)

	// deleting an id that never existed still succeeds
	require.Equal(t, http.StatusOK, doRequest(t, engine, http.MethodDelete, "/api/appointments/99999", token, nil).Code)

	require.Equal(t, http.StatusOK, doRequest(t, engine, http.MethodDelete, "/api/appointments/1", token, nil).Code)

	w = doRequest(t, engine, http.MethodGet, "/api/appointments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var appointments []json.RawMessage
	decode(t, w, &appointments)
	require.Empty(t, appointments)
}

func TestPaymentDefaults(t *testing.T) {
	engine := newTestServer(t)
	token := registerAlice(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/payments", token, gin.H{
		"amount":        150,
		"description":   "Lab Test Payment",
		"paymentMethod": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var payment struct {
		Status string `json:"status"`
		Date   string `json:"date"`
	}
	decode(t, w, &payment)
	require.Equal(t, "completed", payment.Status)
	require.Equal(t, time.Now().Format("2006-01-02"), payment.Date)
}

func TestEmergencyBookings(t *testing.T) {
	engine := newTestServer(t)
	token := registerAlice(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/ambulance", token, gin.H{
		"pickupAddress": "1 Main St",
		"destination":   "City Hospital",
		"ambulanceType": "basic",
		"contactNumber": "+1000000000",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var booking struct {
		Reference   string `json:"id"`
		Service     string `json:"service"`
		Status      string `json:"status"`
		RequestedAt string `json:"requestedAt"`
	}
	decode(t, w, &booking)
	require.NotEmpty(t, booking.Reference)
	require.Equal(t, "ambulance", booking.Service)
	require.Equal(t, "requested", booking.Status)
	require.NotEmpty(t, booking.RequestedAt)

	w = doRequest(t, engine, http.MethodPost, "/api/diagnostic-van", token, gin.H{
		"fullName":      "Alice",
		"address":       "1 Main St",
		"contactNumber": "+1000000000",
		"date":          "2026-10-01",
		"testType":      "blood",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// validation failures surface as 400s
	w = doRequest(t, engine, http.MethodPost, "/api/ambulance", token, gin.H{"notes": "missing everything"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWaitTimesArePublic(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/wait-times", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var waitTimes []struct {
		Department string `json:"department"`
	}
	decode(t, w, &waitTimes)
	require.Len(t, waitTimes, 3)
}

func TestProfileUpdate(t *testing.T) {
	engine := newTestServer(t)
	token := registerAlice(t, engine)

	w := doRequest(t, engine, http.MethodPut, "/api/user/profile", token, gin.H{
		"bloodGroup": "B-",
		"emergencyContact": gin.H{
			"name":         "Bob",
			"phone":        "+1888888888",
			"relationship": "Brother",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		BloodGroup       string `json:"bloodGroup"`
		EmergencyContact struct {
			Name string `json:"name"`
		} `json:"emergencyContact"`
	}
	decode(t, w, &profile)
	require.Equal(t, "B-", profile.BloodGroup)
	require.Equal(t, "Bob", profile.EmergencyContact.Name)
}
