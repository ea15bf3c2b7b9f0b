package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
)

var (
	ErrUnknownSet      = errors.New("unknown set choice")
	ErrUnknownPiece    = errors.New("unknown artifact piece")
	ErrUnknownMainStat = errors.New("main stat not available for piece")
	ErrUnknownMode     = errors.New("unknown substat count")
	ErrUnknownSubstat  = errors.New("unknown substat")
)

// Short keys follow the gcsim stat notation used in roster configs.
var statAliases = map[string]string{
	"hp":       "HP",
	"atk":      "ATK",
	"def":      "DEF",
	"hp%":      "HP%",
	"atk%":     "ATK%",
	"def%":     "DEF%",
	"er":       "Energy Recharge%",
	"em":       "Elemental Mastery",
	"cr":       "CRIT Rate%",
	"cd":       "CRIT DMG%",
	"heal":     "Healing Bonus%",
	"phys%":    "Physical DMG Bonus%",
	"pyro%":    "Pyro DMG Bonus%",
	"cryo%":    "Cryo DMG Bonus%",
	"hydro%":   "Hydro DMG Bonus%",
	"anemo%":   "Anemo DMG Bonus%",
	"electro%": "Electro DMG Bonus%",
	"geo%":     "Geo DMG Bonus%",
	"dendro%":  "Dendro DMG Bonus%",
}

var pieceAliases = map[string]domain.Piece{
	"flower":  domain.PieceFlower,
	"plume":   domain.PiecePlume,
	"feather": domain.PiecePlume,
	"sands":   domain.PieceSands,
	"goblet":  domain.PieceGoblet,
	"cup":     domain.PieceGoblet,
	"circlet": domain.PieceCirclet,
	"hat":     domain.PieceCirclet,
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// canonicalStat resolves a short key or a case-insensitive full name. It returns
// the input trimmed when nothing matches so callers can report it.
func canonicalStat(s string) string {
	key := normalize(s)
	if v, ok := statAliases[key]; ok {
		return v
	}
	for _, v := range statAliases {
		if normalize(v) == key {
			return v
		}
	}
	return strings.TrimSpace(s)
}

func ParseSetChoice(s string) (domain.SetChoice, error) {
	switch normalize(s) {
	case "1", "set1", "set 1":
		return domain.SetOne, nil
	case "2", "set2", "set 2":
		return domain.SetTwo, nil
	case "", "either", "either set", "any":
		return domain.SetEither, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSet, s)
}

func ParsePiece(s string) (domain.Piece, error) {
	key := normalize(s)
	if p, ok := pieceAliases[key]; ok {
		return p, nil
	}
	for _, p := range domain.AllPieces() {
		if normalize(p.String()) == key {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPiece, s)
}

// ParseMainStat resolves s against the piece's own main stat list only.
// An empty value is accepted for pieces with a single main stat.
func ParseMainStat(piece domain.Piece, s string) (string, error) {
	stats := piece.MainStats()
	if strings.TrimSpace(s) == "" && len(stats) == 1 {
		return stats[0], nil
	}
	stat := canonicalStat(s)
	if !piece.HasMainStat(stat) {
		return "", fmt.Errorf("%w: %q on %s (allowed: %s)", ErrUnknownMainStat, s, piece, strings.Join(stats, ", "))
	}
	return stat, nil
}

func ParseMode(s string) (domain.SubstatCountMode, error) {
	key := normalize(s)
	switch key {
	case "", "any":
		return domain.ModeAny, nil
	case "3", "3 substats":
		return domain.ModeThree, nil
	case "4", "4 substats":
		return domain.ModeFour, nil
	}
	for _, m := range domain.AllModes() {
		if normalize(m.String()) == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func ParseSubstat(s string) (domain.Substat, error) {
	sub := domain.Substat(canonicalStat(s))
	if !sub.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubstat, s)
	}
	return sub, nil
}

// SplitList splits a comma separated flag value ("cr,cd,atk%"), dropping blank items.
func SplitList(csv string) []string {
	var out []string
	for _, item := range strings.Split(csv, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseScenario turns a config scenario into an engine request. Substats are
// not read at all when the substat count is Any.
func ParseScenario(sc domain.Scenario) (domain.Request, error) {
	set, err := ParseSetChoice(sc.Set)
	if err != nil {
		return domain.Request{}, err
	}
	piece, err := ParsePiece(sc.Piece)
	if err != nil {
		return domain.Request{}, err
	}
	mainStat, err := ParseMainStat(piece, sc.MainStat)
	if err != nil {
		return domain.Request{}, err
	}
	mode, err := ParseMode(sc.SubstatCount)
	if err != nil {
		return domain.Request{}, err
	}
	if mode == domain.ModeAny {
		return domain.Request{Set: set, Piece: piece, MainStat: mainStat, Mode: mode}, nil
	}
	subs := make([]domain.Substat, 0, len(sc.Substats))
	for _, s := range sc.Substats {
		sub, err := ParseSubstat(s)
		if err != nil {
			return domain.Request{}, err
		}
		subs = append(subs, sub)
	}
	return domain.Request{Set: set, Piece: piece, MainStat: mainStat, Mode: mode, Substats: subs}, nil
}
