package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandlerHealthy(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	rec := httptest.NewRecorder()
	h := &HealthHandler{DB: db}
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"reachable"}`, rec.Body.String())
}

func TestHealthHandlerDatabaseDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").WillReturnError(assert.AnError)

	rec := httptest.NewRecorder()
	h := &HealthHandler{DB: db}
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","database":"unreachable"}`, rec.Body.String())
}

func TestHealthHandlerNoDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	h := &HealthHandler{}
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
