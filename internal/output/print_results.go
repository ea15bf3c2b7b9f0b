package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
)

// PrintResults writes one summary line per scenario, in the given order.
func PrintResults(w io.Writer, results []domain.ScenarioResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results")
		return
	}

	fmt.Fprintln(w, "Results (sorted by total probability):")
	for _, sr := range results {
		r := sr.Result
		runs := "inf"
		if !math.IsInf(r.ExpectedRuns, 1) {
			runs = fmt.Sprintf("%.1f", r.ExpectedRuns)
		}
		fmt.Fprintf(w, "- %s: %s %s [%s] subs=%s: total=%.6f%%, runs=%s\n",
			sr.Name, r.Request.Set, r.Request.Piece, r.Request.MainStat, describeSubstats(r.Request), r.PTotal*100, runs)
	}
}

// PrintOptions lists every selectable value: pieces with their main stats, the
// substat pool, substat count modes and set choices.
func PrintOptions(w io.Writer) {
	fmt.Fprintln(w, "Sets:")
	for _, s := range domain.AllSetChoices() {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintln(w, "Pieces:")
	for _, p := range domain.AllPieces() {
		fmt.Fprintf(w, "  %s: %s\n", p, strings.Join(p.MainStats(), ", "))
	}
	fmt.Fprintln(w, "Substat counts:")
	for _, m := range domain.AllModes() {
		fmt.Fprintf(w, "  %s\n", m)
	}
	subs := domain.Substats()
	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = string(s)
	}
	fmt.Fprintf(w, "Substats: %s\n", strings.Join(names, ", "))
}

func describeSubstats(req domain.Request) string {
	if req.Mode == domain.ModeAny {
		return "any"
	}
	names := substatNames(req)
	if len(names) == 0 {
		return fmt.Sprintf("%d/none", req.Mode.Rolls())
	}
	return fmt.Sprintf("%d/%s", req.Mode.Rolls(), strings.Join(names, "+"))
}

// substatNames lists the distinct requested substats in request order, the same
// set the engine counts. ModeAny yields none.
func substatNames(req domain.Request) []string {
	if req.Mode == domain.ModeAny {
		return nil
	}
	seen := make(map[domain.Substat]struct{}, len(req.Substats))
	names := make([]string, 0, len(req.Substats))
	for _, s := range req.Substats {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		names = append(names, string(s))
	}
	return names
}
