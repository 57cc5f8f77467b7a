package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrec/hospital-api/internal/config"
	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository/sqlite"
	patientService "github.com/medrec/hospital-api/internal/service/patient"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	h := NewHandler(patientService.NewService(sqlite.NewPatientRepository(db)))

	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetPatient(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/patients", gin.H{
		"name":            "John Doe",
		"age":             30,
		"medical_history": "None",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/patients/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "John Doe", got.Name)
	require.NotNil(t, got.Age)
	assert.Equal(t, 30, *got.Age)
	require.NotNil(t, got.MedicalHistory)
	assert.Equal(t, "None", *got.MedicalHistory)
}

func TestCreatePatientWithoutName(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/patients", gin.H{"age": 30})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")

	// nothing was persisted
	w = doJSON(r, http.MethodGet, "/api/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var patients []model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
	assert.Empty(t, patients)
}

func TestUpdatePatientSkipsBadAge(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/patients", gin.H{"name": "Jane", "age": 41})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/patients/%d", created.ID), gin.H{
		"name": "Jane Doe",
		"age":  "forty-two",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Jane Doe", updated.Name)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 41, *updated.Age)
}

func TestUpdateMissingPatient(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPut, "/api/patients/999", gin.H{"name": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatientTwice(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/patients", gin.H{"name": "Temp"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/patients/%d", created.ID)
	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPatientsNewestFirst(t *testing.T) {
	r := setupRouter(t)

	for _, name := range []string{"first", "second"} {
		w := doJSON(r, http.MethodPost, "/api/patients", gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var patients []model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
	require.Len(t, patients, 2)
	assert.Equal(t, "second", patients[0].Name)
}
