package app

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T) (Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts := Options{
		ConfigPath:   filepath.Join(t.TempDir(), "odds_config.yaml"),
		Set:          "either",
		Piece:        "flower",
		SubstatCount: "any",
		Stdout:       &stdout,
		Stderr:       &stderr,
		Now:          func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) },
	}
	return opts, &stdout, &stderr
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestRun_Single(t *testing.T) {
	opts, stdout, _ := newTestOptions(t)
	opts.Set = "1"
	opts.Piece = "sands"
	opts.MainStat = "atk%"
	opts.SubstatCount = "4"
	opts.Substats = "cr,cd"

	require.Equal(t, exitOK, RunWithOptions(opts))
	want := "" +
		"Calculation Details:\n" +
		"Set chance: 50.00%\n" +
		"Piece chance: 10.00%\n" +
		"Main Stat chance: 20.00%\n" +
		"Starting Substats: 4 (p_subroll=0.2)\n" +
		"Substats: 2 selected (p_subs=0.133333)\n" +
		"\n" +
		"Total Probability: 0.053333%\n" +
		"Expected Runs: 1875.0\n"
	assert.Equal(t, want, stdout.String())
}

func TestRun_SingleWithOutlook(t *testing.T) {
	opts, stdout, _ := newTestOptions(t)
	opts.Within = 2
	opts.Confidence = 0.9

	require.Equal(t, exitOK, RunWithOptions(opts))
	assert.Contains(t, stdout.String(), "Expected Runs: 5.0\n\nChance within 2 runs: 36.00%\nRuns for 90% confidence: 11\n")
}

func TestRun_SelectionExceedsRollCount(t *testing.T) {
	opts, stdout, stderr := newTestOptions(t)
	opts.SubstatCount = "3"
	opts.Substats = "cr,cd,atk%,er"

	assert.Equal(t, exitUsage, RunWithOptions(opts))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "max 3 substats allowed, got 4")
}

func TestRun_AnyModeIgnoresSubstats(t *testing.T) {
	opts, stdout, _ := newTestOptions(t)
	opts.Substats = "cr,cd,atk%,er,em"

	require.Equal(t, exitOK, RunWithOptions(opts))
	assert.Contains(t, stdout.String(), "Substats: Any (p_subs=1.0)\n")
}

func TestRun_AnyModeSkipsUnknownSubstats(t *testing.T) {
	opts, stdout, stderr := newTestOptions(t)
	opts.Substats = "luck"

	require.Equal(t, exitOK, RunWithOptions(opts), stderr.String())
	assert.Contains(t, stdout.String(), "Substats: Any (p_subs=1.0)\n")
}

func TestRun_MainStatNotOnPiece(t *testing.T) {
	opts, _, stderr := newTestOptions(t)
	opts.Piece = "sands"
	opts.MainStat = "cr"

	assert.Equal(t, exitUsage, RunWithOptions(opts))
	assert.Contains(t, stderr.String(), "main stat not available for piece")
}

func TestRun_List(t *testing.T) {
	opts, stdout, _ := newTestOptions(t)
	opts.List = true

	require.Equal(t, exitOK, RunWithOptions(opts))
	assert.Contains(t, stdout.String(), "Goblet of Eonothem: ATK%, HP%, DEF%")
}

func TestRun_ConfigLang(t *testing.T) {
	opts, stdout, _ := newTestOptions(t)
	writeConfig(t, opts.ConfigPath, "lang: ru\n")

	require.Equal(t, exitOK, RunWithOptions(opts))
	assert.Contains(t, stdout.String(), "Подробности расчёта:")

	stdout.Reset()
	opts.Lang = "en"
	require.Equal(t, exitOK, RunWithOptions(opts))
	assert.Contains(t, stdout.String(), "Calculation Details:")
}

func TestRun_BadConfig(t *testing.T) {
	opts, _, stderr := newTestOptions(t)
	writeConfig(t, opts.ConfigPath, "dark_mode: true\n")

	assert.Equal(t, exitUsage, RunWithOptions(opts))
	assert.Contains(t, stderr.String(), `unsupported key "dark_mode"`)
}

const batchConfig = "" +
	"name: weekly\n" +
	"workers: 2\n" +
	"within: 50\n" +
	"scenarios:\n" +
	"  - name: crit circlet\n" +
	"    set: 1\n" +
	"    piece: circlet\n" +
	"    main_stat: cr\n" +
	"    substat_count: 4\n" +
	"    substats: [cd, atk%]\n" +
	"  - name: any flower\n" +
	"    piece: flower\n" +
	"  - name: er sands\n" +
	"    set: 2\n" +
	"    piece: sands\n" +
	"    main_stat: er\n"

func TestRun_Batch(t *testing.T) {
	opts, stdout, _ := newTestOptions(t)
	writeConfig(t, opts.ConfigPath, batchConfig)
	opts.Batch = true

	require.Equal(t, exitOK, RunWithOptions(opts))

	out := stdout.String()
	assert.Contains(t, out, "Results (sorted by total probability):\n- any flower:")
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("er sands")), bytes.Index(stdout.Bytes(), []byte("crit circlet")))

	dir := filepath.Join(filepath.Dir(opts.ConfigPath), "output", "artifact_odds")
	assert.FileExists(t, filepath.Join(dir, "20261015_artifact_odds_weekly.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "weekly.json"))
}

func TestRun_BatchFailingScenario(t *testing.T) {
	opts, _, stderr := newTestOptions(t)
	writeConfig(t, opts.ConfigPath, ""+
		"scenarios:\n"+
		"  - name: too greedy\n"+
		"    piece: plume\n"+
		"    substat_count: 3\n"+
		"    substats: [cr, cd, atk%, er]\n")
	opts.Batch = true
	opts.OutputDir = t.TempDir()

	assert.Equal(t, exitUsage, RunWithOptions(opts))
	assert.Contains(t, stderr.String(), `scenario "too greedy": max 3 substats allowed, got 4`)
}

func TestRun_BatchWithoutScenarios(t *testing.T) {
	opts, _, stderr := newTestOptions(t)
	opts.Batch = true

	assert.Equal(t, exitUsage, RunWithOptions(opts))
	assert.Contains(t, stderr.String(), "no scenarios")
}

func TestParseOptions(t *testing.T) {
	t.Setenv("ARTIFACT_ODDS_CONFIG", "/tmp/from-env.yaml")
	t.Setenv("ARTIFACT_ODDS_LOG_LEVEL", "warn")

	fs := flag.NewFlagSet("artifact_odds", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts, err := ParseOptions(fs, []string{"-piece", "goblet", "-main", "pyro%", "-subs-count", "4", "-subs", "cr,cd", "-within", "20"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.yaml", opts.ConfigPath)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, "goblet", opts.Piece)
	assert.Equal(t, "pyro%", opts.MainStat)
	assert.Equal(t, "4", opts.SubstatCount)
	assert.Equal(t, "cr,cd", opts.Substats)
	assert.Equal(t, "either", opts.Set)
	assert.Equal(t, 20, opts.Within)

	fs = flag.NewFlagSet("artifact_odds", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = ParseOptions(fs, []string{"-config", "x.yaml", "-nope"})
	assert.Error(t, err)
}
