package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sci-simulator/domain"
	"sci-simulator/repository"
)

const cacheKeyPrefix = "sci:projection:v1:"

// Explainer turns a projection into a short human-readable comparison.
type Explainer interface {
	ExplainComparison(ctx context.Context, input domain.ProjectInputs, projection domain.Projection) string
}

type SimulationService struct {
	repo      repository.SimulationRepository
	cache     repository.CacheRepository
	explainer Explainer
	logger    *logrus.Logger
	now       func() time.Time
}

// NewSimulationService wires the engine to its store, cache and explainer.
// explainer may be nil, in which case the plain verdict is used.
func NewSimulationService(
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
	explainer Explainer,
	logger *logrus.Logger,
) *SimulationService {
	if logger == nil {
		logger = logrus.New()
	}
	return &SimulationService{
		repo:      repo,
		cache:     cache,
		explainer: explainer,
		logger:    logger,
		now:       time.Now,
	}
}

// Simulate validates the inputs, runs (or recalls) the projection and stores
// the resulting simulation.
func (s *SimulationService) Simulate(
	ctx context.Context,
	input domain.ProjectInputs,
) (domain.Simulation, error) {
	if err := ValidateInputs(input); err != nil {
		return domain.Simulation{}, err
	}

	key, err := CacheKey(input)
	if err != nil {
		return domain.Simulation{}, fmt.Errorf("cache key: %w", err)
	}

	projection, cached := s.cachedProjection(ctx, key)
	if !cached {
		projection = Project(input)
		s.storeProjection(ctx, key, projection)
	}

	explanation := Verdict(projection.Summary)
	if s.explainer != nil {
		explanation = s.explainer.ExplainComparison(ctx, input, projection)
	}

	simulation := domain.Simulation{
		ID:          uuid.NewString(),
		Inputs:      input,
		Projection:  projection,
		Explanation: explanation,
		Cached:      cached,
		CreatedAt:   s.now().UTC(),
	}

	// Storing is best effort; the caller still gets the result.
	if err := s.repo.Save(ctx, simulation); err != nil {
		s.logger.WithError(err).WithField("simulation_id", simulation.ID).
			Warn("failed to save simulation")
	}

	s.logger.WithFields(logrus.Fields{
		"simulation_id": simulation.ID,
		"cached":        cached,
		"advantage":     projection.Summary.Advantage,
		"difference":    projection.Summary.Difference,
	}).Info("simulation computed")

	return simulation, nil
}

func (s *SimulationService) Get(ctx context.Context, id string) (domain.Simulation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SimulationService) List(ctx context.Context) ([]domain.Simulation, error) {
	return s.repo.List(ctx)
}

func (s *SimulationService) cachedProjection(ctx context.Context, key string) (domain.Projection, bool) {
	if s.cache == nil {
		return domain.Projection{}, false
	}

	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.Projection{}, false
	}

	var projection domain.Projection
	if err := json.Unmarshal([]byte(raw), &projection); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("discarding unreadable cached projection")
		return domain.Projection{}, false
	}
	return projection, true
}

func (s *SimulationService) storeProjection(ctx context.Context, key string, projection domain.Projection) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(projection)
	if err != nil {
		s.logger.WithError(err).Warn("failed to encode projection for cache")
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("failed to cache projection")
	}
}

// CacheKey hashes the canonical JSON form of the inputs. Equal inputs always
// map to the same key since the projection is a pure function of them.
func CacheKey(input domain.ProjectInputs) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64(raw)), nil
}
