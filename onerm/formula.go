package onerm

import (
	"fmt"
	"strings"
)

// Formula names one of the supported 1RM regression models.
type Formula string

const (
	FormulaEpley    Formula = "epley"
	FormulaBrzycki  Formula = "brzycki"
	FormulaLombardi Formula = "lombardi"
	FormulaMayhew   Formula = "mayhew"
	FormulaOConner  Formula = "oconner"
	FormulaWathan   Formula = "wathan"
	FormulaLanders  Formula = "landers"
)

// formulaOrder is the fixed order used for averaging and enumeration.
var formulaOrder = [...]Formula{
	FormulaEpley,
	FormulaBrzycki,
	FormulaLombardi,
	FormulaMayhew,
	FormulaOConner,
	FormulaWathan,
	FormulaLanders,
}

var formulaFuncs = map[Formula]Func{
	FormulaEpley:    Epley,
	FormulaBrzycki:  Brzycki,
	FormulaLombardi: Lombardi,
	FormulaMayhew:   Mayhew,
	FormulaOConner:  OConner,
	FormulaWathan:   Wathan,
	FormulaLanders:  Landers,
}

var formulaExpressions = map[Formula]string{
	FormulaEpley:    "w × (1 + r/30)",
	FormulaBrzycki:  "w × 36 / (37 − r)",
	FormulaLombardi: "w × r^0.1",
	FormulaMayhew:   "100w / (52.2 + 41.9e^(−0.055r))",
	FormulaOConner:  "w × (1 + 0.025r)",
	FormulaWathan:   "100w / (48.8 + 53.8e^(−0.075r))",
	FormulaLanders:  "100w / (101.3 − 2.67123r)",
}

// Formulas returns every supported formula in the fixed enumeration order.
// The returned slice is a copy and may be modified by the caller.
func Formulas() []Formula {
	out := make([]Formula, len(formulaOrder))
	copy(out, formulaOrder[:])
	return out
}

// ParseFormula converts a user supplied name into a Formula.
// Matching ignores case and surrounding whitespace.
func ParseFormula(name string) (Formula, error) {
	f := Formula(strings.ToLower(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormula, name)
	}
	return f, nil
}

// Valid reports whether f is one of the supported formulas.
func (f Formula) Valid() bool {
	_, ok := formulaFuncs[f]
	return ok
}

// Func returns the estimator for f.
func (f Formula) Func() (Func, bool) {
	fn, ok := formulaFuncs[f]
	return fn, ok
}

// Expression returns a short human readable form of the formula, with w for
// weight and r for reps.
func (f Formula) Expression() string {
	return formulaExpressions[f]
}

func (f Formula) String() string {
	return string(f)
}
