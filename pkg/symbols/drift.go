package symbols

import (
	"fmt"
	"sort"
)

// DriftKind classifies a single disagreement between two symbol sources.
type DriftKind string

// Drift kinds.
const (
	// DriftMissing means the reference has the symbol but the checked source does not.
	DriftMissing DriftKind = "missing"
	// DriftExtra means the checked source has a symbol the reference lacks.
	DriftExtra DriftKind = "extra"
	// DriftID means both have the symbol under different ids.
	DriftID DriftKind = "id"
	// DriftName means the compiled grammar names the id differently.
	DriftName DriftKind = "name"
	// DriftOutOfRange means the id is past the compiled grammar's symbol count.
	DriftOutOfRange DriftKind = "out_of_range"
)

// Drift describes one symbol on which two sources disagree.
type Drift struct {
	Kind   DriftKind `json:"kind"   yaml:"kind"`
	Symbol string    `json:"symbol" yaml:"symbol"`
	Want   string    `json:"want"   yaml:"want"`
	Got    string    `json:"got"    yaml:"got"`
	ID     int       `json:"id"     yaml:"id"`
}

func (d Drift) String() string {
	return fmt.Sprintf("%s %s (id %d): want %q, got %q", d.Kind, d.Symbol, d.ID, d.Want, d.Got)
}

// Compare reports every difference between want and got, ordered by id.
func Compare(want, got Enumeration) []Drift {
	var drifts []Drift

	for name, wantID := range want.ids {
		gotID, ok := got.ids[name]

		switch {
		case !ok:
			drifts = append(drifts, Drift{
				Kind: DriftMissing, Symbol: name, ID: wantID,
				Want: fmt.Sprint(wantID),
			})
		case gotID != wantID:
			drifts = append(drifts, Drift{
				Kind: DriftID, Symbol: name, ID: wantID,
				Want: fmt.Sprint(wantID), Got: fmt.Sprint(gotID),
			})
		}
	}

	for name, gotID := range got.ids {
		if _, ok := want.ids[name]; !ok {
			drifts = append(drifts, Drift{
				Kind: DriftExtra, Symbol: name, ID: gotID,
				Got: fmt.Sprint(gotID),
			})
		}
	}

	sortDrifts(drifts)

	return drifts
}

func sortDrifts(drifts []Drift) {
	sort.Slice(drifts, func(i, j int) bool {
		if drifts[i].ID != drifts[j].ID {
			return drifts[i].ID < drifts[j].ID
		}

		return drifts[i].Symbol < drifts[j].Symbol
	})
}
