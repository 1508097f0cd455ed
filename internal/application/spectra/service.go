// Package spectra provides the application-level service for spectrum
// operations.  It sits between the HTTP/CLI interfaces and the domain
// engine, adding caching, metrics and logging that the stateless engine
// itself must not know about.
package spectra

import (
	"context"
	"math/rand"
	"strings"

	"github.com/synthspec/synthspec/internal/domain/catalog"
	"github.com/synthspec/synthspec/internal/domain/spectrum"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/metrics"
	"github.com/synthspec/synthspec/pkg/errors"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// Service defines the application operations exposed to the interfaces.
type Service interface {
	Synthesize(ctx context.Context, req stypes.SynthesisRequest) (stypes.SynthesisResult, error)
	Detect(ctx context.Context, descriptor string) (stypes.FeatureFlags, error)
	ListMolecules(ctx context.Context) []stypes.Molecule
	GetMolecule(ctx context.Context, name string) (stypes.Molecule, error)
	GetMoleculeByDescriptor(ctx context.Context, descriptor string) (stypes.Molecule, error)
}

// Cache is the slice of the response cache the service needs.  A nil Cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, req stypes.SynthesisRequest) (*stypes.SynthesisResult, error)
	Set(ctx context.Context, req stypes.SynthesisRequest, res stypes.SynthesisResult) error
}

type serviceImpl struct {
	synth   *spectrum.Synthesizer
	catalog *catalog.Catalog
	cache   Cache
	logger  logging.Logger
	metrics *metrics.AppMetrics
}

// ServiceOption customises the service.
type ServiceOption func(*serviceImpl)

// WithCache attaches the optional response cache.
func WithCache(c Cache) ServiceOption {
	return func(s *serviceImpl) { s.cache = c }
}

// WithMetrics attaches application metrics; without it nothing is recorded.
func WithMetrics(m *metrics.AppMetrics) ServiceOption {
	return func(s *serviceImpl) { s.metrics = m }
}

// NewService creates the spectra application service.
func NewService(synth *spectrum.Synthesizer, cat *catalog.Catalog, logger logging.Logger, opts ...ServiceOption) Service {
	s := &serviceImpl{
		synth:   synth,
		catalog: cat,
		logger:  logger,
		metrics: metrics.NewNopAppMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize runs one synthesis request end to end.  Seeded requests are
// deterministic and therefore cache-eligible; unseeded requests always hit
// the engine and always differ run to run.
func (s *serviceImpl) Synthesize(ctx context.Context, req stypes.SynthesisRequest) (stypes.SynthesisResult, error) {
	modality := string(req.Modality)
	timer := metrics.NewTimer(s.metrics.SynthesisDuration.WithLabelValues(modality))
	defer timer.ObserveDuration()

	if s.cache != nil && req.Seed != nil {
		cached, err := s.cache.Get(ctx, req)
		if err != nil {
			s.metrics.CacheErrorsTotal.WithLabelValues("get").Inc()
			s.logger.Warn("cache get failed", logging.Err(err))
		} else if cached != nil {
			s.metrics.CacheHitsTotal.WithLabelValues(modality).Inc()
			return *cached, nil
		} else {
			s.metrics.CacheMissesTotal.WithLabelValues(modality).Inc()
		}
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	res, err := s.synth.Synthesize(rng, req.Descriptor, req.Modality, req.Nucleus)
	if err != nil {
		s.metrics.SynthesisTotal.WithLabelValues(modality, "error").Inc()
		s.metrics.ErrorsTotal.WithLabelValues(string(errors.GetCode(err))).Inc()
		return res, err
	}
	s.metrics.SynthesisTotal.WithLabelValues(modality, "ok").Inc()
	s.metrics.PeaksExtracted.WithLabelValues(modality).Observe(float64(len(res.Peaks) + len(res.NMRPeaks)))
	s.metrics.SamplesRendered.WithLabelValues(modality).Observe(float64(len(res.Curve)))

	s.logger.Debug("synthesis complete",
		logging.String("modality", modality),
		logging.Bool("seeded", req.Seed != nil),
		logging.Int("peaks", len(res.Peaks)+len(res.NMRPeaks)),
	)

	if s.cache != nil && req.Seed != nil {
		if err := s.cache.Set(ctx, req, res); err != nil {
			s.metrics.CacheErrorsTotal.WithLabelValues("set").Inc()
			s.logger.Warn("cache set failed", logging.Err(err))
		}
	}
	return res, nil
}

// Detect runs feature detection alone.  Unlike synthesis, detection of an
// empty descriptor is rejected: there is nothing to report on.
func (s *serviceImpl) Detect(ctx context.Context, descriptor string) (stypes.FeatureFlags, error) {
	if strings.TrimSpace(descriptor) == "" {
		s.metrics.DetectionTotal.WithLabelValues("error").Inc()
		return stypes.FeatureFlags{}, errors.New(errors.CodeEmptyDescriptor, "descriptor is empty")
	}
	s.metrics.DetectionTotal.WithLabelValues("ok").Inc()
	return s.synth.Detect(descriptor), nil
}

// ListMolecules returns the catalog picklist.
func (s *serviceImpl) ListMolecules(context.Context) []stypes.Molecule {
	return s.catalog.List()
}

// GetMolecule resolves a catalog entry by name.
func (s *serviceImpl) GetMolecule(_ context.Context, name string) (stypes.Molecule, error) {
	return s.catalog.Get(name)
}

// GetMoleculeByDescriptor resolves a catalog entry by exact descriptor.
func (s *serviceImpl) GetMoleculeByDescriptor(_ context.Context, descriptor string) (stypes.Molecule, error) {
	return s.catalog.GetByDescriptor(descriptor)
}
