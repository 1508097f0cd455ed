package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModality_IsValid(t *testing.T) {
	assert.True(t, ModalityIR.IsValid())
	assert.True(t, ModalityUVVis.IsValid())
	assert.True(t, ModalityNMR.IsValid())
	assert.False(t, Modality("MS").IsValid())
	assert.False(t, Modality("").IsValid())
}

func TestParseModality(t *testing.T) {
	tests := []struct {
		in      string
		want    Modality
		wantErr bool
	}{
		{"ir", ModalityIR, false},
		{"IR", ModalityIR, false},
		{" uv ", ModalityUVVis, false},
		{"uv-vis", ModalityUVVis, false},
		{"UVVIS", ModalityUVVis, false},
		{"nmr", ModalityNMR, false},
		{"raman", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModality(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNucleus(t *testing.T) {
	for _, in := range []string{"1h", "1H", "proton", "H"} {
		got, err := ParseNucleus(in)
		require.NoError(t, err, in)
		assert.Equal(t, NucleusProton, got)
	}
	for _, in := range []string{"13c", "13C", "carbon", "C"} {
		got, err := ParseNucleus(in)
		require.NoError(t, err, in)
		assert.Equal(t, NucleusCarbon, got)
	}
	_, err := ParseNucleus("19F")
	assert.Error(t, err)
}

func TestFeatureFlags_Any(t *testing.T) {
	assert.False(t, FeatureFlags{}.Any())
	assert.True(t, FeatureFlags{Ketone: true}.Any())
}

func TestSynthesisResult_Empty(t *testing.T) {
	assert.True(t, SynthesisResult{}.Empty())
	assert.False(t, SynthesisResult{Peaks: []LabeledPeak{{X: 1715}}}.Empty())
	assert.False(t, SynthesisResult{NMRPeaks: []NMRPeak{{Shift: 2.1}}}.Empty())
	assert.False(t, SynthesisResult{Curve: Curve{{X: 400, Y: 98}}}.Empty())
}
