// Package odds computes the chance of an artifact drop matching a target
// configuration and the expected number of runs to get one.
package odds

import (
	"fmt"
	"math"
	"math/big"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
)

// Compute returns the probability breakdown for req. It is a pure function of req.
//
// Substats are ignored in domain.ModeAny. Duplicate substats count once.
func Compute(req domain.Request) (domain.Result, error) {
	if !req.Set.Valid() {
		return domain.Result{}, fmt.Errorf("set choice %d: %w", req.Set, ErrInvalidRequest)
	}
	if !req.Piece.Valid() {
		return domain.Result{}, fmt.Errorf("piece %d: %w", req.Piece, ErrInvalidRequest)
	}
	if !req.Piece.HasMainStat(req.MainStat) {
		return domain.Result{}, fmt.Errorf("main stat %q on %s: %w", req.MainStat, req.Piece, ErrInvalidRequest)
	}
	if !req.Mode.Valid() {
		return domain.Result{}, fmt.Errorf("substat count mode %d: %w", req.Mode, ErrInvalidRequest)
	}

	selected, err := distinctSubstats(req.Substats)
	if err != nil {
		return domain.Result{}, err
	}

	res := domain.Result{Request: req}

	res.PSet = 0.5
	if req.Set == domain.SetEither {
		res.PSet = 1.0
	}
	res.PPiece = res.PSet * (1.0 / domain.PieceCount)
	res.PMain = 1 / float64(len(req.Piece.MainStats()))
	res.PSubroll = req.Mode.Prior()
	res.PSubs = 1.0

	if req.Mode != domain.ModeAny {
		n := req.Mode.Rolls()
		r := len(selected)
		if r > n {
			return domain.Result{}, &SelectionExceedsRollCountError{Rolls: n, Selected: r}
		}
		res.Selected = r
		if r > 0 {
			res.PSubs = SubstatMatchChance(domain.SubstatPoolSize(), n, r)
		}
	}

	res.PTotal = res.PPiece * res.PMain * res.PSubroll * res.PSubs
	res.ExpectedRuns = math.Inf(1)
	if res.PTotal > 0 {
		res.ExpectedRuns = 1 / res.PTotal
	}
	return res, nil
}

// SubstatMatchChance is the hypergeometric chance that all r wanted substats are among
// n drawn without replacement from a pool of total: C(total-r, n-r) / C(total, n).
func SubstatMatchChance(total, n, r int) float64 {
	if r <= 0 {
		return 1.0
	}
	if r > n || n > total {
		return 0
	}
	favorable := new(big.Int).Binomial(int64(total-r), int64(n-r))
	all := new(big.Int).Binomial(int64(total), int64(n))
	p, _ := new(big.Rat).SetFrac(favorable, all).Float64()
	return p
}

func distinctSubstats(in []domain.Substat) ([]domain.Substat, error) {
	seen := make(map[domain.Substat]struct{}, len(in))
	out := make([]domain.Substat, 0, len(in))
	for _, s := range in {
		if !s.Valid() {
			return nil, fmt.Errorf("substat %q: %w", string(s), ErrInvalidRequest)
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
