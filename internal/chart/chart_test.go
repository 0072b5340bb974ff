package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		oneRM     float64
		percent   float64
		increment float64
		want      float64
	}{
		{"75% of 100", 100, 75, 2.5, 75},
		{"plate rounding down", 115.49, 80, 2.5, 92.5},
		{"plate rounding up", 115.49, 85, 2.5, 97.5},
		{"five pound plates", 225, 72, 5, 160},
		{"no rounding", 115.49, 50, 0, 57.745},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Load(tt.oneRM, tt.percent, tt.increment), 1e-9)
		})
	}
}

func TestBuild_SortsHeaviestFirst(t *testing.T) {
	rows, err := Build(100, []float64{60, 90, 75}, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Percent: 90, Load: 90},
		{Percent: 75, Load: 75},
		{Percent: 60, Load: 60},
	}, rows)
}

func TestBuild_RejectsNonFinite(t *testing.T) {
	_, err := Build(math.Inf(1), []float64{90}, 2.5)
	assert.Error(t, err)

	_, err = Build(math.NaN(), []float64{90}, 2.5)
	assert.Error(t, err)
}

func TestBuild_Empty(t *testing.T) {
	rows, err := Build(100, nil, 2.5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
