package models

import "time"

type Lift struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Reps    float64 `json:"reps"`
	Formula string  `json:"formula,omitempty"` // Empty selects the average.
}

type Estimate struct {
	LiftID   string             `toml:"lift_id"`
	Name     string             `toml:"name"`
	Weight   float64            `toml:"weight"`
	Reps     float64            `toml:"reps"`
	Formula  string             `toml:"formula"`
	OneRM    float64            `toml:"one_rm"`
	Formulas map[string]float64 `toml:"formulas"`
}

type Report struct {
	ReportID    string     `toml:"report_id"`
	GeneratedAt time.Time  `toml:"generated_at"`
	Decimals    int        `toml:"decimals"`
	Unit        string     `toml:"unit"`
	Estimates   []Estimate `toml:"estimate"`
}

//
// For TOML parsing only
//

type LiftTOML struct {
	ID      string  `toml:"id"`
	Name    string  `toml:"name"`
	Weight  float64 `toml:"weight"`
	Reps    float64 `toml:"reps"`
	Formula string  `toml:"formula,omitempty"`
}

type LiftImport struct {
	Lifts []LiftTOML `toml:"set"`
}
