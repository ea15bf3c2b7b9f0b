package output

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/odds"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "result"
	}
	name = reUnsafe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	if name == "" {
		return "result"
	}
	return name
}

type Report struct {
	GeneratedAt string      `json:"generated_at"`
	Name        string      `json:"name"`
	Within      int         `json:"within,omitempty"`
	Results     []ReportRow `json:"results"`
}

type ReportRow struct {
	Scenario     string   `json:"scenario"`
	Set          string   `json:"set"`
	Piece        string   `json:"piece"`
	MainStat     string   `json:"main_stat"`
	SubstatCount string   `json:"substat_count"`
	Substats     []string `json:"substats"`

	PSet     float64 `json:"p_set"`
	PPiece   float64 `json:"p_piece"`
	PMain    float64 `json:"p_main"`
	PSubroll float64 `json:"p_subroll"`
	PSubs    float64 `json:"p_subs"`
	PTotal   float64 `json:"p_total"`
	// ExpectedRuns is null when the total probability is zero.
	ExpectedRuns *float64 `json:"expected_runs"`
	ChanceWithin *float64 `json:"chance_within,omitempty"`
}

func NewReport(name string, within int, results []domain.ScenarioResult, now time.Time) Report {
	rep := Report{
		GeneratedAt: now.Format(time.RFC3339),
		Name:        name,
		Within:      within,
		Results:     make([]ReportRow, 0, len(results)),
	}
	for _, sr := range results {
		r := sr.Result
		subs := substatNames(r.Request)
		if subs == nil {
			subs = []string{}
		}
		row := ReportRow{
			Scenario:     sr.Name,
			Set:          r.Request.Set.String(),
			Piece:        r.Request.Piece.String(),
			MainStat:     r.Request.MainStat,
			SubstatCount: r.Request.Mode.String(),
			Substats:     subs,
			PSet:         r.PSet,
			PPiece:       r.PPiece,
			PMain:        r.PMain,
			PSubroll:     r.PSubroll,
			PSubs:        r.PSubs,
			PTotal:       r.PTotal,
		}
		if !math.IsInf(r.ExpectedRuns, 1) {
			v := r.ExpectedRuns
			row.ExpectedRuns = &v
		}
		if within > 0 {
			v := odds.ChanceWithin(r.PTotal, within)
			row.ChanceWithin = &v
		}
		rep.Results = append(rep.Results, row)
	}
	return rep
}

func WriteReportJSON(outDir string, report Report) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(outDir, SafeFileName(report.Name)+".json")

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	b = append(b, '\n')
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}
