package domain

type Piece int

const (
	PieceFlower Piece = iota
	PiecePlume
	PieceSands
	PieceGoblet
	PieceCirclet
)

// PieceCount is the number of equipment slots an artifact drop is drawn from.
const PieceCount = 5

var pieceNames = [PieceCount]string{
	PieceFlower:  "Flower of Life",
	PiecePlume:   "Plume of Death",
	PieceSands:   "Sands of Eon",
	PieceGoblet:  "Goblet of Eonothem",
	PieceCirclet: "Circlet of Logos",
}

var mainStatsByPiece = [PieceCount][]string{
	PieceFlower: {"HP"},
	PiecePlume:  {"ATK"},
	PieceSands:  {"HP%", "ATK%", "DEF%", "Energy Recharge%", "Elemental Mastery"},
	PieceGoblet: {
		"ATK%", "HP%", "DEF%", "Elemental Mastery",
		"Physical DMG Bonus%",
		"Pyro DMG Bonus%", "Cryo DMG Bonus%", "Hydro DMG Bonus%", "Anemo DMG Bonus%",
		"Electro DMG Bonus%", "Geo DMG Bonus%", "Dendro DMG Bonus%",
	},
	PieceCirclet: {"ATK%", "HP%", "DEF%", "CRIT Rate%", "CRIT DMG%", "Healing Bonus%", "Elemental Mastery"},
}

// AllPieces returns the pieces in display order.
func AllPieces() []Piece {
	return []Piece{PieceFlower, PiecePlume, PieceSands, PieceGoblet, PieceCirclet}
}

func (p Piece) Valid() bool {
	return p >= 0 && int(p) < PieceCount
}

func (p Piece) String() string {
	if !p.Valid() {
		return "Unknown Piece"
	}
	return pieceNames[p]
}

// MainStats returns a copy of the main stats a piece can roll.
func (p Piece) MainStats() []string {
	if !p.Valid() {
		return nil
	}
	out := make([]string, len(mainStatsByPiece[p]))
	copy(out, mainStatsByPiece[p])
	return out
}

// HasMainStat reports whether stat is one of the piece's main stats (exact match).
func (p Piece) HasMainStat(stat string) bool {
	if !p.Valid() {
		return false
	}
	for _, s := range mainStatsByPiece[p] {
		if s == stat {
			return true
		}
	}
	return false
}

type Substat string

const (
	SubstatATK  Substat = "ATK"
	SubstatATKP Substat = "ATK%"
	SubstatDEF  Substat = "DEF"
	SubstatDEFP Substat = "DEF%"
	SubstatHP   Substat = "HP"
	SubstatHPP  Substat = "HP%"
	SubstatCR   Substat = "CRIT Rate%"
	SubstatCD   Substat = "CRIT DMG%"
	SubstatEM   Substat = "Elemental Mastery"
	SubstatER   Substat = "Energy Recharge%"
)

var substatPool = []Substat{
	SubstatATK, SubstatATKP, SubstatDEF, SubstatDEFP, SubstatHP, SubstatHPP,
	SubstatCR, SubstatCD, SubstatEM, SubstatER,
}

// Substats returns the shared substat pool in display order.
func Substats() []Substat {
	out := make([]Substat, len(substatPool))
	copy(out, substatPool)
	return out
}

// SubstatPoolSize is T in the hypergeometric term.
func SubstatPoolSize() int {
	return len(substatPool)
}

func (s Substat) Valid() bool {
	for _, v := range substatPool {
		if v == s {
			return true
		}
	}
	return false
}

type SubstatCountMode int

const (
	ModeAny SubstatCountMode = iota
	ModeThree
	ModeFour
)

// AllModes returns the substat count modes in display order.
func AllModes() []SubstatCountMode {
	return []SubstatCountMode{ModeAny, ModeThree, ModeFour}
}

func (m SubstatCountMode) Valid() bool {
	return m >= ModeAny && m <= ModeFour
}

// Rolls is N, the number of starting substats. Any has no fixed count and returns 0.
func (m SubstatCountMode) Rolls() int {
	switch m {
	case ModeThree:
		return 3
	case ModeFour:
		return 4
	default:
		return 0
	}
}

// Prior is the chance of an artifact dropping with this many starting substats.
func (m SubstatCountMode) Prior() float64 {
	switch m {
	case ModeThree:
		return 0.8
	case ModeFour:
		return 0.2
	default:
		return 1.0
	}
}

func (m SubstatCountMode) String() string {
	switch m {
	case ModeAny:
		return "Any"
	case ModeThree:
		return "3 Substats (80%)"
	case ModeFour:
		return "4 Substats (20%)"
	default:
		return "Unknown Mode"
	}
}

type SetChoice int

const (
	SetOne SetChoice = iota
	SetTwo
	SetEither
)

// AllSetChoices returns the set choices in display order.
func AllSetChoices() []SetChoice {
	return []SetChoice{SetOne, SetTwo, SetEither}
}

func (s SetChoice) Valid() bool {
	return s >= SetOne && s <= SetEither
}

func (s SetChoice) String() string {
	switch s {
	case SetOne:
		return "Set 1"
	case SetTwo:
		return "Set 2"
	case SetEither:
		return "Either Set"
	default:
		return "Unknown Set"
	}
}
