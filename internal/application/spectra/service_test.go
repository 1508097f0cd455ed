package spectra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthspec/synthspec/internal/domain/catalog"
	"github.com/synthspec/synthspec/internal/domain/spectrum"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	"github.com/synthspec/synthspec/pkg/errors"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

func newTestService(opts ...ServiceOption) Service {
	return NewService(spectrum.NewSynthesizer(), catalog.Default(), logging.NewNopLogger(), opts...)
}

func seedPtr(v int64) *int64 { return &v }

func TestService_Synthesize_Seeded(t *testing.T) {
	svc := newTestService()
	req := stypes.SynthesisRequest{
		Descriptor: "c1ccccc1",
		Modality:   stypes.ModalityIR,
		Seed:       seedPtr(7),
	}

	r1, err := svc.Synthesize(context.Background(), req)
	require.NoError(t, err)
	r2, err := svc.Synthesize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "same seed must reproduce the same spectrum")
	assert.Len(t, r1.Curve, 1801)
	assert.True(t, r1.Flags.AromaticRing)
}

func TestService_Synthesize_UnseededVaries(t *testing.T) {
	svc := newTestService()
	req := stypes.SynthesisRequest{Descriptor: "CCO", Modality: stypes.ModalityIR}

	r1, err := svc.Synthesize(context.Background(), req)
	require.NoError(t, err)
	r2, err := svc.Synthesize(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, r1.Curve, r2.Curve)
}

func TestService_Synthesize_InvalidModality(t *testing.T) {
	svc := newTestService()
	_, err := svc.Synthesize(context.Background(), stypes.SynthesisRequest{
		Descriptor: "CCO",
		Modality:   stypes.Modality("RAMAN"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeModalityUnsupported))
}

func TestService_Synthesize_CacheRoundTrip(t *testing.T) {
	cache := &fakeCache{entries: map[string]stypes.SynthesisResult{}}
	svc := newTestService(WithCache(cache))

	req := stypes.SynthesisRequest{
		Descriptor: "CC(=O)C",
		Modality:   stypes.ModalityNMR,
		Nucleus:    stypes.NucleusProton,
		Seed:       seedPtr(1),
	}

	r1, err := svc.Synthesize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	r2, err := svc.Synthesize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, r1, r2)
}

func TestService_Synthesize_UnseededSkipsCache(t *testing.T) {
	cache := &fakeCache{entries: map[string]stypes.SynthesisResult{}}
	svc := newTestService(WithCache(cache))

	_, err := svc.Synthesize(context.Background(), stypes.SynthesisRequest{
		Descriptor: "CC(=O)C",
		Modality:   stypes.ModalityIR,
	})
	require.NoError(t, err)
	assert.Zero(t, cache.gets)
	assert.Zero(t, cache.sets)
}

func TestService_Synthesize_CacheFailureIsNotFatal(t *testing.T) {
	cache := &fakeCache{fail: true}
	svc := newTestService(WithCache(cache))

	res, err := svc.Synthesize(context.Background(), stypes.SynthesisRequest{
		Descriptor: "CCO",
		Modality:   stypes.ModalityIR,
		Seed:       seedPtr(3),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Curve)
}

func TestService_Detect(t *testing.T) {
	svc := newTestService()

	flags, err := svc.Detect(context.Background(), "CC(=O)O")
	require.NoError(t, err)
	assert.True(t, flags.CarboxylicAcid)
	assert.False(t, flags.Hydroxyl)
}

func TestService_Detect_EmptyDescriptorRejected(t *testing.T) {
	svc := newTestService()
	for _, descriptor := range []string{"", "  "} {
		_, err := svc.Detect(context.Background(), descriptor)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeEmptyDescriptor))
	}
}

func TestService_Catalog(t *testing.T) {
	svc := newTestService()

	list := svc.ListMolecules(context.Background())
	assert.NotEmpty(t, list)

	m, err := svc.GetMolecule(context.Background(), "benzene")
	require.NoError(t, err)
	assert.Equal(t, "c1ccccc1", m.Descriptor)

	_, err = svc.GetMolecule(context.Background(), "kryptonite")
	assert.True(t, errors.IsCode(err, errors.CodeMoleculeNotFound))

	m, err = svc.GetMoleculeByDescriptor(context.Background(), "c1ccccc1")
	require.NoError(t, err)
	assert.Equal(t, "benzene", m.Name)
}

// fakeCache is an in-memory Cache double.
type fakeCache struct {
	entries map[string]stypes.SynthesisResult
	fail    bool
	gets    int
	sets    int
	hits    int
}

func (f *fakeCache) key(req stypes.SynthesisRequest) string {
	return req.Descriptor + "|" + string(req.Modality) + "|" + string(req.Nucleus)
}

func (f *fakeCache) Get(_ context.Context, req stypes.SynthesisRequest) (*stypes.SynthesisResult, error) {
	f.gets++
	if f.fail {
		return nil, errors.New(errors.CodeCacheError, "down")
	}
	if res, ok := f.entries[f.key(req)]; ok {
		f.hits++
		return &res, nil
	}
	return nil, nil
}

func (f *fakeCache) Set(_ context.Context, req stypes.SynthesisRequest, res stypes.SynthesisResult) error {
	f.sets++
	if f.fail {
		return errors.New(errors.CodeCacheError, "down")
	}
	f.entries[f.key(req)] = res
	return nil
}
