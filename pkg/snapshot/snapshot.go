// Package snapshot persists nightly runs of the financial analytics engine so
// dashboards can show the last computed state without recomputing. The engine
// never caches anything itself; this job is the caller that does.
package snapshot

import (
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"farmlens/entities"
	actrepo "farmlens/pkg/activity/repository"
	inssvc "farmlens/pkg/insights/service"
)

type Repository interface {
	Save(s *entities.InsightsSnapshot) error
	ListByUser(uid string, limit int) ([]entities.InsightsSnapshot, error)
}

type snapshotRepo struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository { return &snapshotRepo{db} }

func (r *snapshotRepo) Save(s *entities.InsightsSnapshot) error { return r.db.Create(s).Error }

func (r *snapshotRepo) ListByUser(uid string, limit int) ([]entities.InsightsSnapshot, error) {
	var out []entities.InsightsSnapshot
	if err := r.db.Where("user_id = ?", uid).Order("taken_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Job recomputes insights for every tenant with recorded activity.
type Job struct {
	insights   inssvc.Service
	activities actrepo.ActivityRepository
	repo       Repository
	log        zerolog.Logger
	cron       *cron.Cron
}

func NewJob(insights inssvc.Service, activities actrepo.ActivityRepository, repo Repository, log zerolog.Logger) *Job {
	return &Job{insights: insights, activities: activities, repo: repo, log: log}
}

// Start schedules the job with a cron expression (e.g. "0 3 * * *").
func (j *Job) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, j.Run); err != nil {
		return err
	}
	c.Start()
	j.cron = c
	j.log.Info().Str("spec", spec).Msg("insights snapshot job scheduled")
	return nil
}

func (j *Job) Stop() {
	if j.cron != nil {
		j.cron.Stop()
		j.cron = nil
	}
}

// Running reports whether the scheduler is active.
func (j *Job) Running() bool { return j.cron != nil }

// Run takes one snapshot per tenant. A failing tenant is logged and skipped;
// the rest of the batch still runs.
func (j *Job) Run() {
	uids, err := j.activities.UserIDs()
	if err != nil {
		j.log.Error().Err(err).Msg("snapshot: list tenants")
		return
	}
	now := time.Now()
	for _, uid := range uids {
		in, err := j.insights.Financial(uid)
		if err != nil {
			j.log.Error().Err(err).Str("uid", uid).Msg("snapshot: compute insights")
			continue
		}
		payload, err := json.Marshal(in)
		if err != nil {
			j.log.Error().Err(err).Str("uid", uid).Msg("snapshot: encode insights")
			continue
		}
		s := &entities.InsightsSnapshot{UserID: uid, TakenAt: now, PayloadJSON: string(payload)}
		if err := j.repo.Save(s); err != nil {
			j.log.Error().Err(err).Str("uid", uid).Msg("snapshot: save")
			continue
		}
	}
	j.log.Info().Int("tenants", len(uids)).Msg("insights snapshots taken")
}
