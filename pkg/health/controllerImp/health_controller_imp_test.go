package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeScheduler struct{ running bool }

func (f fakeScheduler) Running() bool { return f.running }

func callHealth(t *testing.T, ctrl *HealthCtrl) (int, map[string]check) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.Health(e.NewContext(req, rec)))

	var body struct {
		Checks map[string]check `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Checks
}

func TestHealth_AllUp(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	code, checks := callHealth(t, NewHealthCtrl(db, fakeScheduler{running: true}))

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, checks["database"].OK)
	assert.True(t, checks["snapshot_job"].OK)
}

func TestHealth_StoppedJobDoesNotDegradeStatus(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	code, checks := callHealth(t, NewHealthCtrl(db, fakeScheduler{running: false}))

	assert.Equal(t, http.StatusOK, code)
	assert.False(t, checks["snapshot_job"].OK)
	assert.Equal(t, "snapshot job not scheduled", checks["snapshot_job"].Err)
}

func TestHealth_MissingDB(t *testing.T) {
	code, checks := callHealth(t, NewHealthCtrl(nil, fakeScheduler{running: true}))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, checks["database"].OK)
}
