package output

import (
	"sort"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
)

// SortResultsByChance orders results by total probability (desc), then by name.
func SortResultsByChance(results []domain.ScenarioResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Result.PTotal != results[j].Result.PTotal {
			return results[i].Result.PTotal > results[j].Result.PTotal
		}
		return results[i].Name < results[j].Name
	})
}
