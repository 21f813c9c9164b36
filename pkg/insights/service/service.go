package service

import (
	"sync"

	"farmlens/entities"
	"farmlens/pkg/analytics"
	actrepo "farmlens/pkg/activity/repository"
	croprepo "farmlens/pkg/crop/repository"
)

// Service computes financial insights for a tenant. The analytics engine is
// pure; this layer does the record fetching the engine's contract leaves to
// callers, and owns the live price table so imports can swap it at runtime.
type Service interface {
	Financial(uid string) (analytics.FinancialInsights, error)
	UpdatePrices(points []analytics.PricePoint)
	Records(uid string) ([]entities.Activity, []entities.Crop, error)
}

type service struct {
	activities actrepo.ActivityRepository
	crops      croprepo.CropRepository

	mu     sync.RWMutex
	engine *analytics.Engine
	base   analytics.Config
}

func New(activities actrepo.ActivityRepository, crops croprepo.CropRepository, cfg analytics.Config) Service {
	return &service{
		activities: activities,
		crops:      crops,
		engine:     analytics.NewEngine(cfg),
		base:       cfg,
	}
}

func (s *service) Financial(uid string) (analytics.FinancialInsights, error) {
	acts, crops, err := s.Records(uid)
	if err != nil {
		return analytics.FinancialInsights{}, err
	}
	s.mu.RLock()
	eng := s.engine
	s.mu.RUnlock()
	return eng.ComputeFinancialInsights(acts, crops), nil
}

// UpdatePrices rebuilds the engine with imported prices laid over the stock
// table. The engine itself stays immutable; only the reference is swapped.
func (s *service) UpdatePrices(points []analytics.PricePoint) {
	cfg := s.base
	merged := make([]analytics.PricePoint, 0, len(points)+len(cfg.Prices))
	merged = append(merged, points...)
	merged = append(merged, cfg.Prices...)
	cfg.Prices = merged

	s.mu.Lock()
	s.engine = analytics.NewEngine(cfg)
	s.mu.Unlock()
}

// Records fetches the tenant's raw inputs. The two reads are independent; the
// report writer reuses this to avoid a second pair of queries.
func (s *service) Records(uid string) ([]entities.Activity, []entities.Crop, error) {
	acts, err := s.activities.ListByUser(uid)
	if err != nil {
		return nil, nil, err
	}
	crops, err := s.crops.ListByUser(uid)
	if err != nil {
		return nil, nil, err
	}
	return acts, crops, nil
}
