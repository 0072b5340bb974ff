// Package chart turns an estimated one-rep max into working loads.
package chart

import (
	"fmt"
	"math"
	"sort"
)

type Row struct {
	Percent float64
	Load    float64
}

// Load returns percent of oneRM rounded to the nearest increment
// (e.g. 2.5 for plates). An increment of 0 leaves the load unrounded.
func Load(oneRM, percent, increment float64) float64 {
	raw := oneRM * percent / 100
	if increment <= 0 {
		return raw
	}
	return math.Round(raw/increment) * increment
}

// Build computes one row per percentage, heaviest first.
func Build(oneRM float64, percentages []float64, increment float64) ([]Row, error) {
	if math.IsNaN(oneRM) || math.IsInf(oneRM, 0) {
		return nil, fmt.Errorf("cannot chart a 1RM of %v", oneRM)
	}

	rows := make([]Row, 0, len(percentages))
	for _, p := range percentages {
		rows = append(rows, Row{Percent: p, Load: Load(oneRM, p, increment)})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Percent > rows[j].Percent
	})
	return rows, nil
}
