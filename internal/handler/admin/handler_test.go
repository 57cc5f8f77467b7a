package admin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrec/hospital-api/internal/config"
	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository/sqlite"
	appointmentService "github.com/medrec/hospital-api/internal/service/appointment"
	authService "github.com/medrec/hospital-api/internal/service/auth"
	billService "github.com/medrec/hospital-api/internal/service/bill"
	doctorService "github.com/medrec/hospital-api/internal/service/doctor"
	patientService "github.com/medrec/hospital-api/internal/service/patient"
	"github.com/medrec/hospital-api/pkg/security"
)

// client carries the session cookie between requests the way a browser would.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		cl.cookies = set
	}
	return w
}

func (cl *client) login(username, password string) *httptest.ResponseRecorder {
	cl.t.Helper()
	return cl.do(http.MethodPost, "/admin/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

func setup(t *testing.T) (*client, *patientService.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()
	require.NoError(t, sqlite.Migrate(ctx, db))

	authSvc := authService.NewService(sqlite.NewAdminRepository(db), security.NewBcryptHasher(4))
	require.NoError(t, authSvc.Bootstrap(ctx, "admin", "admin123"))

	patientSvc := patientService.NewService(sqlite.NewPatientRepository(db))
	h := NewHandler(
		authSvc,
		patientSvc,
		doctorService.NewService(sqlite.NewDoctorRepository(db)),
		appointmentService.NewService(sqlite.NewAppointmentRepository(db)),
		billService.NewService(sqlite.NewBillRepository(db)),
	)

	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")
	r.Use(sessions.Sessions("hospital_session", cookie.NewStore([]byte("test-secret"))))
	h.RegisterRoutes(r)

	return &client{t: t, router: r}, patientSvc
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	cl, _ := setup(t)

	w := cl.do(http.MethodGet, "/admin/patients", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestLoginReturnsToRequestedPage(t *testing.T) {
	cl, _ := setup(t)

	// the guard remembers where we were headed
	w := cl.do(http.MethodGet, "/admin/doctors", nil)
	require.Equal(t, http.StatusFound, w.Code)

	w = cl.login("admin", "admin123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/doctors", w.Header().Get("Location"))

	w = cl.do(http.MethodGet, "/admin/doctors", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWithoutTargetGoesToDashboard(t *testing.T) {
	cl, _ := setup(t)

	w := cl.login("admin", "admin123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestLoginWrongPassword(t *testing.T) {
	cl, _ := setup(t)

	w := cl.login("admin", "nope")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	// the error is flashed on the login page and we stay anonymous
	w = cl.do(http.MethodGet, "/admin/login", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")

	w = cl.do(http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestLogout(t *testing.T) {
	cl, _ := setup(t)

	cl.login("admin", "admin123")
	w := cl.do(http.MethodGet, "/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = cl.do(http.MethodGet, "/admin/logout", nil)
	require.Equal(t, http.StatusFound, w.Code)

	w = cl.do(http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestCreatePatientFromForm(t *testing.T) {
	cl, patients := setup(t)
	cl.login("admin", "admin123")

	w := cl.do(http.MethodPost, "/admin/patients", url.Values{
		"name": {"Form Patient"},
		"age":  {"28"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	w = cl.do(http.MethodGet, "/admin/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Patient created")
	assert.Contains(t, w.Body.String(), "Form Patient")

	list, err := patients.ListPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Age)
	assert.Equal(t, 28, *list[0].Age)
}

func TestCreatePatientFormRequiresName(t *testing.T) {
	cl, patients := setup(t)
	cl.login("admin", "admin123")

	w := cl.do(http.MethodPost, "/admin/patients", url.Values{"age": {"28"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = cl.do(http.MethodGet, "/admin/patients", nil)
	assert.Contains(t, w.Body.String(), "name is required")

	list, err := patients.ListPatients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeletePatientTwiceFlashesSuccess(t *testing.T) {
	cl, patients := setup(t)
	cl.login("admin", "admin123")

	created, err := patients.CreatePatient(context.Background(), &model.CreatePatientRequest{Name: "Short Lived"})
	require.NoError(t, err)

	path := fmt.Sprintf("/admin/patients/%d/delete", created.ID)
	for i := 0; i < 2; i++ {
		w := cl.do(http.MethodPost, path, url.Values{})
		require.Equal(t, http.StatusFound, w.Code)

		w = cl.do(http.MethodGet, "/admin/patients", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Patient deleted")
	}
}
