package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/odds"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Odds"

var xlsxHeaders = []string{
	"Scenario", "Set", "Piece", "Main Stat", "Substat Count", "Substats",
	"Set %", "Piece %", "Main Stat %", "Substat Roll %", "Substat Match %", "Total %", "Expected Runs",
}

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

// ExportResultsXLSX writes results (in the given order) to
// <outDir>/<yyyymmdd>_artifact_odds_<name>.xlsx and returns the path.
func ExportResultsXLSX(outDir, name string, within int, results []domain.ScenarioResult, now time.Time) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", err
	}
	sheet := SheetName

	headers := append([]string(nil), xlsxHeaders...)
	if within > 0 {
		headers = append(headers, fmt.Sprintf("Within %d Runs %%", within))
	}
	for i, h := range headers {
		if err := f.SetCellValue(sheet, fmt.Sprintf("%s1", colName(i+1)), h); err != nil {
			return "", err
		}
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return "", err
	}
	lastCol := colName(len(headers))
	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s1", lastCol), headerStyleID); err != nil {
		return "", err
	}

	for i, sr := range results {
		row := i + 2
		r := sr.Result
		subs := substatNames(r.Request)
		values := []any{
			sr.Name,
			r.Request.Set.String(),
			r.Request.Piece.String(),
			r.Request.MainStat,
			r.Request.Mode.String(),
			strings.Join(subs, ", "),
			r.PSet, r.PPiece, r.PMain, r.PSubroll, r.PSubs, r.PTotal,
		}
		if math.IsInf(r.ExpectedRuns, 1) {
			values = append(values, "inf")
		} else {
			values = append(values, r.ExpectedRuns)
		}
		if within > 0 {
			values = append(values, odds.ChanceWithin(r.PTotal, within))
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return "", err
		}
	}

	if len(results) > 0 {
		lastRow := len(results) + 1
		// 0.00%
		pctStyleID, err := f.NewStyle(&excelize.Style{NumFmt: 10})
		if err != nil {
			return "", err
		}
		// Total % needs more precision than the per-factor columns.
		totalFmt := "0.000000%"
		totalStyleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &totalFmt})
		if err != nil {
			return "", err
		}
		runsFmt := "0.0"
		runsStyleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &runsFmt})
		if err != nil {
			return "", err
		}

		pctCols := []int{7, 8, 9, 10, 11}
		if within > 0 {
			pctCols = append(pctCols, 14)
		}
		for _, c := range pctCols {
			col := colName(c)
			if err := f.SetCellStyle(sheet, fmt.Sprintf("%s2", col), fmt.Sprintf("%s%d", col, lastRow), pctStyleID); err != nil {
				return "", err
			}
		}
		if err := f.SetCellStyle(sheet, "L2", fmt.Sprintf("L%d", lastRow), totalStyleID); err != nil {
			return "", err
		}
		if err := f.SetCellStyle(sheet, "M2", fmt.Sprintf("M%d", lastRow), runsStyleID); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	// yearmonthday
	timestamp := now.Format("20060102")
	filename := filepath.Join(outDir, fmt.Sprintf("%s_artifact_odds_%s.xlsx", timestamp, SafeFileName(name)))
	if err := f.SaveAs(filename); err != nil {
		return "", err
	}
	return filename, nil
}
