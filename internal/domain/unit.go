package domain

// Unit is the guessed physical unit of the acceleration values.
type Unit string

const (
	UnitG             Unit = "g"
	UnitMS2           Unit = "m/s²"
	UnitAmbiguousHigh Unit = "ambiguous-high"
)

// Heuristic bounds on PGA used by ClassifyUnit.
const (
	gUpperBound   = 2.0
	ms2UpperBound = 20.0
)

// UnitGuess is the outcome of ClassifyUnit. When HasEquivalent is set,
// Equivalent holds the PGA converted into EquivalentUnit.
type UnitGuess struct {
	Unit           Unit    `json:"unit"`
	Equivalent     float64 `json:"equivalent,omitempty"`
	EquivalentUnit Unit    `json:"equivalent_unit,omitempty"`
	HasEquivalent  bool    `json:"has_equivalent"`
}

// ClassifyUnit guesses the unit of a record from its PGA, first match wins:
//   - pga < 2.0: g, equivalent pga*9.81 in m/s²
//   - pga < 20.0: m/s², equivalent pga/9.81 in g
//   - otherwise: ambiguous (strong motion in m/s², or cm/s²), no equivalent
func ClassifyUnit(pga float64) UnitGuess {
	switch {
	case pga < gUpperBound:
		return UnitGuess{
			Unit:           UnitG,
			Equivalent:     pga * StandardGravity,
			EquivalentUnit: UnitMS2,
			HasEquivalent:  true,
		}
	case pga < ms2UpperBound:
		return UnitGuess{
			Unit:           UnitMS2,
			Equivalent:     pga / StandardGravity,
			EquivalentUnit: UnitG,
			HasEquivalent:  true,
		}
	default:
		return UnitGuess{Unit: UnitAmbiguousHigh}
	}
}
