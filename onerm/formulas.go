package onerm

import "math"

// Func estimates a one-rep max from a weight lifted for reps repetitions.
type Func func(weight, reps float64) float64

// Epley: weight * (1 + reps/30).
func Epley(weight, reps float64) float64 {
	return weight * (1 + reps/30)
}

// Brzycki: weight * 36 / (37 - reps). Diverges at reps = 37.
func Brzycki(weight, reps float64) float64 {
	return weight * (36 / (37 - reps))
}

// Lombardi: weight * reps^0.1.
func Lombardi(weight, reps float64) float64 {
	return weight * math.Pow(reps, 0.1)
}

// Mayhew: 100 * weight / (52.2 + 41.9 * e^(-0.055 * reps)).
func Mayhew(weight, reps float64) float64 {
	return (100 * weight) / (52.2 + 41.9*math.Exp(-0.055*reps))
}

// OConner: weight * (1 + 0.025 * reps).
func OConner(weight, reps float64) float64 {
	return weight * (1 + 0.025*reps)
}

// Wathan: 100 * weight / (48.8 + 53.8 * e^(-0.075 * reps)).
func Wathan(weight, reps float64) float64 {
	return (100 * weight) / (48.8 + 53.8*math.Exp(-0.075*reps))
}

// Landers: 100 * weight / (101.3 - 2.67123 * reps). Diverges near reps = 37.9.
func Landers(weight, reps float64) float64 {
	return (100 * weight) / (101.3 - 2.67123*reps)
}
