// Package batch estimates one-rep maxes for a file of logged sets and
// renders the results as a TOML report.
package batch

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/misterclayt0n/liftmax/internal/models"
	"github.com/misterclayt0n/liftmax/onerm"
)

// AverageLabel marks estimates that used the cross-formula average.
const AverageLabel = "average"

type Options struct {
	Decimals int
	Formula  onerm.Formula // Applied to lifts that do not name their own.
	Unit     string
	Now      func() time.Time
}

// Read decodes lifts from TOML. Lifts without an id get a fresh one.
func Read(r io.Reader) ([]models.Lift, error) {
	var importData models.LiftImport
	if _, err := toml.NewDecoder(r).Decode(&importData); err != nil {
		return nil, fmt.Errorf("invalid TOML format: %w", err)
	}

	lifts := make([]models.Lift, 0, len(importData.Lifts))
	for _, l := range importData.Lifts {
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}
		lifts = append(lifts, models.Lift{
			ID:      id,
			Name:    l.Name,
			Weight:  l.Weight,
			Reps:    l.Reps,
			Formula: l.Formula,
		})
	}
	return lifts, nil
}

func ReadFile(path string) ([]models.Lift, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Run estimates every lift. A lift naming an unknown formula fails the whole
// run.
func Run(lifts []models.Lift, opts Options) (*models.Report, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	report := &models.Report{
		ReportID:    uuid.New().String(),
		GeneratedAt: now().UTC(),
		Decimals:    opts.Decimals,
		Unit:        opts.Unit,
		Estimates:   make([]models.Estimate, 0, len(lifts)),
	}

	for i, l := range lifts {
		est, err := estimate(l, opts)
		if err != nil {
			return nil, fmt.Errorf("set %d (%s): %w", i+1, l.Name, err)
		}
		report.Estimates = append(report.Estimates, est)
	}

	return report, nil
}

func estimate(l models.Lift, opts Options) (models.Estimate, error) {
	formula := opts.Formula
	if l.Formula != "" {
		f, err := onerm.ParseFormula(l.Formula)
		if err != nil {
			return models.Estimate{}, err
		}
		formula = f
	}

	oneRM, err := onerm.OneRepMax(l.Weight, l.Reps, opts.Decimals, formula)
	if err != nil {
		return models.Estimate{}, err
	}

	all, err := onerm.All(l.Weight, l.Reps, opts.Decimals)
	if err != nil {
		return models.Estimate{}, err
	}

	byName := make(map[string]float64, len(all))
	for f, v := range all {
		byName[f.String()] = v
	}

	label := AverageLabel
	if formula != "" {
		label = formula.String()
	}

	return models.Estimate{
		LiftID:   l.ID,
		Name:     l.Name,
		Weight:   l.Weight,
		Reps:     l.Reps,
		Formula:  label,
		OneRM:    oneRM,
		Formulas: byName,
	}, nil
}

// Write encodes the report as TOML.
func Write(w io.Writer, report *models.Report) error {
	if err := toml.NewEncoder(w).Encode(report); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// WriteFile writes the report to path, replacing any existing file.
func WriteFile(path string, report *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, report); err != nil {
		return err
	}
	return f.Close()
}
