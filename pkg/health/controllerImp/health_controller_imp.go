package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// Scheduler is the slice of the snapshot job the health check needs.
type Scheduler interface{ Running() bool }

type HealthCtrl struct {
	db  *gorm.DB
	job Scheduler
}

func NewHealthCtrl(db *gorm.DB, job Scheduler) *HealthCtrl {
	return &HealthCtrl{db: db, job: job}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the database and reports the snapshot scheduler state. Only a
// failing database degrades the HTTP status; a stopped scheduler shows up in
// the payload but the API itself is still serving.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.checkDB(ctx)
	job := check{OK: h.job != nil && h.job.Running()}
	if !job.OK {
		job.Err = "snapshot job not scheduled"
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]bool{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]check{
			"database":     db,
			"snapshot_job": job,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) checkDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
