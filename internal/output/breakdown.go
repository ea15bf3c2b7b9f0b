package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/odds"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type sprintf func(format string, a ...any) string

// Format renders the calculation breakdown in the canonical (English, unlocalized) layout.
func Format(res domain.Result) string {
	return render(fmt.Sprintf, res)
}

// FormatLang renders the breakdown for lang ("en" or "ru"). English uses Format.
func FormatLang(lang string, res domain.Result) string {
	p := printer(lang)
	if p == nil {
		return Format(res)
	}
	return render(func(format string, a ...any) string { return p.Sprintf(format, a...) }, res)
}

// FormatOutlook renders the optional geometric lines: chance within `within` runs and
// runs needed for `confidence`. Zero values skip the line.
func FormatOutlook(lang string, res domain.Result, within int, confidence float64) string {
	f := sprintf(fmt.Sprintf)
	if p := printer(lang); p != nil {
		f = func(format string, a ...any) string { return p.Sprintf(format, a...) }
	}

	var lines []string
	if within > 0 {
		lines = append(lines, f("Chance within %d runs: %.2f%%", within, odds.ChanceWithin(res.PTotal, within)*100))
	}
	if confidence > 0 {
		if runs, ok := odds.RunsForConfidence(res.PTotal, confidence); ok {
			lines = append(lines, f("Runs for %.0f%% confidence: %d", confidence*100, runs))
		}
	}
	return strings.Join(lines, "\n")
}

func render(f sprintf, res domain.Result) string {
	n := res.Request.Mode.Rolls()

	details := []string{
		f("Set chance: %.2f%%", res.PSet*100),
		f("Piece chance: %.2f%%", res.PPiece*100),
		f("Main Stat chance: %.2f%%", res.PMain*100),
	}

	// Priors are 1.0, 0.8 and 0.2, so one decimal prints them exactly.
	if n == 0 {
		details = append(details, f("Starting Substats: Any (p_subroll=%.1f)", res.PSubroll))
	} else {
		details = append(details, f("Starting Substats: %d (p_subroll=%.1f)", n, res.PSubroll))
	}

	switch {
	case res.Request.Mode == domain.ModeAny:
		details = append(details, f("Substats: Any (p_subs=%.1f)", res.PSubs))
	case res.Selected == 0:
		details = append(details, f("Substats: none selected (p_subs=%.1f)", res.PSubs))
	default:
		details = append(details, f("Substats: %d selected (p_subs=%.6f)", res.Selected, res.PSubs))
	}

	var b strings.Builder
	b.WriteString(f("Calculation Details:"))
	b.WriteString("\n")
	b.WriteString(strings.Join(details, "\n"))
	b.WriteString("\n\n")
	b.WriteString(f("Total Probability: %.6f%%", res.PTotal*100))
	b.WriteString("\n")
	b.WriteString(f("Expected Runs: %s", formatRuns(f, res.ExpectedRuns)))
	return b.String()
}

func formatRuns(f sprintf, v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return f("%.1f", v)
}

var russian = language.Russian

func init() {
	for key, msg := range map[string]string{
		"Calculation Details:":                    "Подробности расчёта:",
		"Set chance: %.2f%%":                      "Шанс сета: %.2f%%",
		"Piece chance: %.2f%%":                    "Шанс предмета: %.2f%%",
		"Main Stat chance: %.2f%%":                "Шанс основного стата: %.2f%%",
		"Starting Substats: Any (p_subroll=%.1f)": "Стартовые доп. статы: любые (p_subroll=%.1f)",
		"Starting Substats: %d (p_subroll=%.1f)":  "Стартовые доп. статы: %d (p_subroll=%.1f)",
		"Substats: Any (p_subs=%.1f)":             "Доп. статы: любые (p_subs=%.1f)",
		"Substats: none selected (p_subs=%.1f)":   "Доп. статы: не выбраны (p_subs=%.1f)",
		"Substats: %d selected (p_subs=%.6f)":     "Доп. статы: выбрано %d (p_subs=%.6f)",
		"Total Probability: %.6f%%":               "Итоговая вероятность: %.6f%%",
		"Expected Runs: %s":                       "Ожидаемое число забегов: %s",
		"Chance within %d runs: %.2f%%":           "Шанс за %d забегов: %.2f%%",
		"Runs for %.0f%% confidence: %d":          "Забегов для уверенности %.0f%%: %d",
	} {
		if err := message.SetString(russian, key, msg); err != nil {
			panic(err)
		}
	}
}

// printer returns nil for English, which renders unlocalized.
func printer(lang string) *message.Printer {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "ru":
		return message.NewPrinter(russian)
	default:
		return nil
	}
}
