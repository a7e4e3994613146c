package models

// Entry is one parsed geometry parameter line
type Entry struct {
	Name     string    // parameter name, left of the colon
	Type     EntryType // inferred value kind
	RawValue string    // value text exactly as written, never evaluated
	Unit     string    // unit constant to scale by; empty means no scaling
	Line     int       // 1-based line number in the source file, 0 if unknown
}

// HasUnit reports whether a unit multiplier applies to the entry
func (e Entry) HasUnit() bool {
	return e.Unit != ""
}

// IsVector reports whether the entry holds a vector of doubles
func (e Entry) IsVector() bool {
	return e.Type == EntryTypeDoubleVector
}

// Summary counts entries per type
type Summary struct {
	Entries      int
	Doubles      int
	Bools        int
	Vectors      int
	SkippedLines int
}

// Summarize builds a Summary for the given entries
func Summarize(entries []Entry) Summary {
	s := Summary{Entries: len(entries)}
	for _, e := range entries {
		switch e.Type {
		case EntryTypeDouble:
			s.Doubles++
		case EntryTypeBool:
			s.Bools++
		case EntryTypeDoubleVector:
			s.Vectors++
		}
	}
	return s
}
