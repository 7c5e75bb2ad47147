package leaftable

// Entry explains one slot of a table.
type Entry struct {
	ID     int    `json:"id"               yaml:"id"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Class  Class  `json:"value"            yaml:"value"`
	Reason string `json:"reason"           yaml:"reason"`
}

// Report is the explain output.
type Report struct {
	Stats   Stats   `json:"stats"   yaml:"stats"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Filter selects entries for a report.
type Filter func(Entry) bool

// Explain returns one entry per slot, in id order, keeping those every filter accepts.
func (t *Table) Explain(filters ...Filter) Report {
	report := Report{Stats: t.Stats()}

	for id, value := range t.values {
		name, _ := t.enum.Name(id)

		entry := Entry{
			ID:     id,
			Symbol: name,
			Class:  value,
			Reason: t.reasons[id].String(),
		}

		if accepts(entry, filters) {
			report.Entries = append(report.Entries, entry)
		}
	}

	return report
}

// ByClass keeps entries of the given class.
func ByClass(class Class) Filter {
	return func(e Entry) bool { return e.Class == class }
}

// ByReason keeps entries decided by the given step.
func ByReason(reason Reason) Filter {
	want := reason.String()

	return func(e Entry) bool { return e.Reason == want }
}

func accepts(entry Entry, filters []Filter) bool {
	for _, filter := range filters {
		if !filter(entry) {
			return false
		}
	}

	return true
}
