package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const testSecret = "routes-secret"

func init() {
	gin.SetMode(gin.TestMode)
	if err := validators.Register(); err != nil {
		panic(err)
	}
}

type recordingInvalidator struct {
	mu   sync.Mutex
	keys []booking.ViewKey
}

func (r *recordingInvalidator) Invalidate(_ context.Context, key booking.ViewKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
}

type testServer struct {
	t       *testing.T
	db      *gorm.DB
	router  *gin.Engine
	inv     *recordingInvalidator
	shop    models.Barbershop
	haircut models.BarbershopService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, dbpkg.Migrate(db))

	s := &testServer{t: t, db: db, inv: &recordingInvalidator{}}

	s.shop = models.Barbershop{Name: "Vintage Barber", Address: "Rua A, 10", Phones: "(11) 9999-0000"}
	require.NoError(t, db.Create(&s.shop).Error)
	s.haircut = models.BarbershopService{BarbershopID: s.shop.ID, Name: "Corte de Cabelo", Price: 60}
	require.NoError(t, db.Create(&s.haircut).Error)

	cfg := &config.Config{
		JWTSecret:      testSecret,
		JWTExpireHours: 1,
		Timezone:       "UTC",
		SlotMatchMode:  "loose",
	}

	s.router = gin.New()
	RegisterRoutes(s.router, db, cfg, Infra{
		Logger:      logger.Discard(),
		Invalidator: s.inv,
	})
	return s
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) userToken(role string) string {
	s.t.Helper()

	u := models.User{Name: "User " + role, Email: role + "@example.com", PasswordHash: "x", Role: role}
	require.NoError(s.t, s.db.Create(&u).Error)
	tok, err := middleware.IssueToken(testSecret, u.ID, u.Role, time.Hour)
	require.NoError(s.t, err)
	return tok
}

func (s *testServer) countBookings() int64 {
	var n int64
	require.NoError(s.t, s.db.Model(&models.Booking{}).Count(&n).Error)
	return n
}

func nextWeek() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestCreateBooking_AnonymousIsRejected(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/bookings", map[string]string{
		"service_id": s.haircut.ID,
		"date":       nextWeek(),
		"time":       "09:00",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthenticated", decode[map[string]string](t, w)["error_code"])
	assert.Zero(t, s.countBookings())
	assert.Empty(t, s.inv.keys)
}

func TestCreateBooking_ThenAvailabilityHidesSlot(t *testing.T) {
	s := newTestServer(t)
	token := s.userToken(models.RoleCustomer)
	day := nextWeek()

	w := s.do(http.MethodPost, "/api/bookings", map[string]string{
		"service_id": s.haircut.ID,
		"date":       day,
		"time":       "09:00",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[booking.Booking](t, w)
	assert.Equal(t, s.haircut.ID, created.ServiceID)
	assert.Equal(t, day+" 09:00", created.Date.UTC().Format("2006-01-02 15:04"))
	assert.Equal(t, int64(1), s.countBookings())
	assert.Equal(t, []booking.ViewKey{booking.ViewKey("bookings:" + s.haircut.ID + ":" + day)}, s.inv.keys)

	w = s.do(http.MethodGet, "/api/services/"+s.haircut.ID+"/availability?date="+day, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[struct {
		Times []string `json:"times"`
	}](t, w)
	assert.NotContains(t, res.Times, "09:00")
	assert.Contains(t, res.Times, "08:30")
	assert.Len(t, res.Times, 20)

	w = s.do(http.MethodGet, "/api/services/"+s.haircut.ID+"/bookings?date="+day, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["total"])
	assert.Contains(t, w.Body.String(), created.ID)
	assert.NotContains(t, w.Body.String(), "user_id")

	w = s.do(http.MethodGet, "/api/me/bookings", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Data []struct {
			Service struct {
				Name string `json:"name"`
			} `json:"service"`
			Barbershop struct {
				Name string `json:"name"`
			} `json:"barbershop"`
		} `json:"data"`
	}](t, w)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Corte de Cabelo", list.Data[0].Service.Name)
	assert.Equal(t, "Vintage Barber", list.Data[0].Barbershop.Name)
}

func TestCreateBooking_UnknownService(t *testing.T) {
	s := newTestServer(t)
	token := s.userToken(models.RoleCustomer)

	w := s.do(http.MethodPost, "/api/bookings", map[string]string{
		"service_id": "00000000-0000-0000-0000-000000000000",
		"date":       nextWeek(),
		"time":       "09:00",
	}, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", decode[map[string]string](t, w)["error_code"])
	assert.Zero(t, s.countBookings())
	assert.Empty(t, s.inv.keys)
}

func TestCreateBooking_BadPayload(t *testing.T) {
	s := newTestServer(t)
	token := s.userToken(models.RoleCustomer)

	w := s.do(http.MethodPost, "/api/bookings", map[string]string{
		"service_id": s.haircut.ID,
		"date":       nextWeek(),
		"time":       "9h",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/bookings", map[string]string{
		"service_id": s.haircut.ID,
		"date":       "31/12/2030",
		"time":       "09:00",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date_or_time", decode[map[string]string](t, w)["error_code"])

	assert.Zero(t, s.countBookings())
}

func TestAvailability_Errors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/services/"+s.haircut.ID+"/availability?date=nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/services/00000000-0000-0000-0000-000000000000/availability?date="+nextWeek(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", decode[map[string]string](t, w)["error_code"])
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "Ana@Example.com",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret1",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ana@example.com",
		"password": "wrong-pass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ana@example.com",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decode[map[string]any](t, w)["token"].(string)
	require.NotEmpty(t, token)

	w = s.do(http.MethodGet, "/api/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"ana@example.com"`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/me", nil, "").Code)
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/barbershops", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	home := decode[map[string][]map[string]any](t, w)
	assert.Len(t, home["recommended"], 1)
	assert.Len(t, home["popular"], 1)
	assert.Len(t, home["quick_search"], 6)

	w = s.do(http.MethodGet, "/api/barbershops/search?service=corte", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["total"])

	w = s.do(http.MethodGet, "/api/barbershops/search?title=nada", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, w)["total"])

	w = s.do(http.MethodGet, "/api/barbershops/"+s.shop.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Corte de Cabelo")

	w = s.do(http.MethodGet, "/api/barbershops/00000000-0000-0000-0000-000000000000", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/quick-search", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(6), decode[map[string]any](t, w)["total"])
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	customer := s.userToken(models.RoleCustomer)
	admin := s.userToken(models.RoleAdmin)

	body := map[string]any{"name": "Nova Barbearia", "address": "Rua B, 20", "phones": []string{"1111", "2222"}}
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/admin/barbershops", body, "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/admin/barbershops", body, customer).Code)

	w := s.do(http.MethodPost, "/api/admin/barbershops", body, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	shopID, _ := decode[map[string]any](t, w)["id"].(string)
	require.NotEmpty(t, shopID)

	w = s.do(http.MethodPost, "/api/admin/barbershops/"+shopID+"/services",
		map[string]any{"name": "Barba", "price": 35.5}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	serviceID, _ := decode[map[string]any](t, w)["id"].(string)

	w = s.do(http.MethodPatch, "/api/admin/services/"+serviceID, map[string]any{"price": 40}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(40), decode[map[string]any](t, w)["price"])

	w = s.do(http.MethodPut, "/api/admin/services/"+serviceID+"/image", nil, admin)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
