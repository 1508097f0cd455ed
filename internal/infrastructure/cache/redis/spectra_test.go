package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/synthspec/synthspec/internal/config"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

type SpectraCacheSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	cache *SpectraCache
}

func (s *SpectraCacheSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	client := &Client{rdb: db, logger: logging.NewNopLogger()}
	s.cache = NewSpectraCache(client, config.CacheConfig{
		TTL:       time.Hour,
		KeyPrefix: "synthspec:",
	}, logging.NewNopLogger())
}

func (s *SpectraCacheSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func seededRequest(seed int64) stypes.SynthesisRequest {
	return stypes.SynthesisRequest{
		Descriptor: "CC(=O)C",
		Modality:   stypes.ModalityIR,
		Seed:       &seed,
	}
}

func (s *SpectraCacheSuite) TestGet_Hit() {
	req := seededRequest(7)
	want := stypes.SynthesisResult{
		Modality: stypes.ModalityIR,
		Peaks:    []stypes.LabeledPeak{{X: 1715, Y: 8.2, Label: "C=O stretch (ketone)"}},
	}
	raw, err := json.Marshal(want)
	require.NoError(s.T(), err)

	s.mock.ExpectGet(s.cache.Key(req)).SetVal(string(raw))

	got, err := s.cache.Get(context.Background(), req)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), want, *got)
}

func (s *SpectraCacheSuite) TestGet_Miss() {
	req := seededRequest(7)
	s.mock.ExpectGet(s.cache.Key(req)).RedisNil()

	got, err := s.cache.Get(context.Background(), req)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *SpectraCacheSuite) TestGet_CorruptEntryIsAMiss() {
	req := seededRequest(7)
	s.mock.ExpectGet(s.cache.Key(req)).SetVal("{not json")

	got, err := s.cache.Get(context.Background(), req)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *SpectraCacheSuite) TestGet_UnseededNeverTouchesRedis() {
	req := stypes.SynthesisRequest{Descriptor: "CC(=O)C", Modality: stypes.ModalityIR}

	got, err := s.cache.Get(context.Background(), req)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *SpectraCacheSuite) TestSet_StoresWithTTL() {
	req := seededRequest(7)
	res := stypes.SynthesisResult{Modality: stypes.ModalityIR}
	raw, err := json.Marshal(res)
	require.NoError(s.T(), err)

	s.mock.ExpectSet(s.cache.Key(req), raw, time.Hour).SetVal("OK")

	assert.NoError(s.T(), s.cache.Set(context.Background(), req, res))
}

func (s *SpectraCacheSuite) TestSet_UnseededIsANoOp() {
	req := stypes.SynthesisRequest{Descriptor: "CC(=O)C", Modality: stypes.ModalityIR}
	assert.NoError(s.T(), s.cache.Set(context.Background(), req, stypes.SynthesisResult{}))
}

func TestSpectraCacheSuite(t *testing.T) {
	suite.Run(t, new(SpectraCacheSuite))
}

func TestKey_Shape(t *testing.T) {
	cache := NewSpectraCache(nil, config.CacheConfig{KeyPrefix: "synthspec:"}, logging.NewNopLogger())

	seed := int64(42)
	key := cache.Key(stypes.SynthesisRequest{
		Descriptor: "CC(=O)C",
		Modality:   stypes.ModalityNMR,
		Nucleus:    stypes.NucleusProton,
		Seed:       &seed,
	})

	assert.Regexp(t, `^synthspec:spectra:[0-9a-f]{40}:NMR:1H:42$`, key)

	// Same request identity, same key; different descriptor, different key.
	key2 := cache.Key(stypes.SynthesisRequest{
		Descriptor: "CCO",
		Modality:   stypes.ModalityNMR,
		Nucleus:    stypes.NucleusProton,
		Seed:       &seed,
	})
	assert.NotEqual(t, key, key2)
}

func TestCacheable(t *testing.T) {
	seed := int64(1)
	assert.True(t, Cacheable(stypes.SynthesisRequest{Seed: &seed}))
	assert.False(t, Cacheable(stypes.SynthesisRequest{}))
}
