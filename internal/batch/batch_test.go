package batch

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/misterclayt0n/liftmax/internal/models"
	"github.com/misterclayt0n/liftmax/onerm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLifts = `
[[set]]
id = "bench-1"
name = "Bench Press"
weight = 100.0
reps = 5

[[set]]
name = "Squat"
weight = 80.0
reps = 6
formula = "Epley"
`

var fixedNow = func() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestRead(t *testing.T) {
	lifts, err := Read(strings.NewReader(sampleLifts))
	require.NoError(t, err)
	require.Len(t, lifts, 2)

	assert.Equal(t, models.Lift{ID: "bench-1", Name: "Bench Press", Weight: 100, Reps: 5}, lifts[0])

	assert.Equal(t, "Squat", lifts[1].Name)
	assert.Equal(t, "Epley", lifts[1].Formula)
	_, err = uuid.Parse(lifts[1].ID)
	assert.NoError(t, err, "missing ids are generated")
}

func TestRead_Invalid(t *testing.T) {
	_, err := Read(strings.NewReader("[[set]\nname ="))
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	lifts, err := Read(strings.NewReader(sampleLifts))
	require.NoError(t, err)

	report, err := Run(lifts, Options{Decimals: 2, Unit: "kg", Now: fixedNow})
	require.NoError(t, err)

	_, err = uuid.Parse(report.ReportID)
	assert.NoError(t, err)
	assert.Equal(t, fixedNow(), report.GeneratedAt)
	assert.Equal(t, "kg", report.Unit)
	require.Len(t, report.Estimates, 2)

	bench := report.Estimates[0]
	assert.Equal(t, "bench-1", bench.LiftID)
	assert.Equal(t, AverageLabel, bench.Formula)
	assert.Equal(t, 115.49, bench.OneRM)
	assert.Len(t, bench.Formulas, len(onerm.Formulas()))
	assert.Equal(t, 119.01, bench.Formulas["mayhew"])

	squat := report.Estimates[1]
	assert.Equal(t, "epley", squat.Formula)
	assert.Equal(t, 96.0, squat.OneRM)
	assert.Equal(t, 92.9, squat.Formulas["brzycki"])
}

func TestRun_DefaultFormula(t *testing.T) {
	lifts := []models.Lift{{ID: "a", Name: "Row", Weight: 100, Reps: 5}}

	report, err := Run(lifts, Options{Decimals: 1, Formula: onerm.FormulaLanders, Now: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, "landers", report.Estimates[0].Formula)
	assert.Equal(t, 113.7, report.Estimates[0].OneRM)
}

func TestRun_UnknownFormula(t *testing.T) {
	lifts := []models.Lift{
		{ID: "a", Name: "Bench", Weight: 100, Reps: 5},
		{ID: "b", Name: "Curl", Weight: 20, Reps: 10, Formula: "guess"},
	}

	_, err := Run(lifts, Options{Decimals: 2})
	require.ErrorIs(t, err, onerm.ErrUnknownFormula)
	assert.Contains(t, err.Error(), "set 2 (Curl)")
}

func TestRun_InvalidDecimals(t *testing.T) {
	lifts := []models.Lift{{ID: "a", Name: "Bench", Weight: 100, Reps: 5}}
	_, err := Run(lifts, Options{Decimals: -2})
	assert.ErrorIs(t, err, onerm.ErrInvalidDecimals)
}

func TestWrite(t *testing.T) {
	lifts := []models.Lift{
		{ID: "a", Name: "Bench", Weight: 100, Reps: 5},
		{ID: "b", Name: "Pulls", Weight: 100, Reps: 37, Formula: "brzycki"},
	}
	report, err := Run(lifts, Options{Decimals: 2, Unit: "kg", Now: fixedNow})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, report))
	assert.Contains(t, buf.String(), "[[estimate]]")
	assert.Contains(t, buf.String(), "report_id = ")

	var decoded models.Report
	_, err = toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, report.ReportID, decoded.ReportID)
	assert.Equal(t, 115.49, decoded.Estimates[0].OneRM)
	assert.True(t, math.IsInf(decoded.Estimates[1].OneRM, 1))
}

func TestWriteFile(t *testing.T) {
	report, err := Run(nil, Options{Decimals: 2, Now: fixedNow})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.toml")
	require.NoError(t, WriteFile(path, report))

	var decoded models.Report
	_, err = toml.DecodeFile(path, &decoded)
	require.NoError(t, err)
	assert.Equal(t, report.ReportID, decoded.ReportID)
	assert.Empty(t, decoded.Estimates)
}
