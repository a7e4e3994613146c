package templates

import (
	"strings"

	"github.com/toyz/geomtyper/internal/models"
)

// EntryData is the per-entry view handed to the pass templates
type EntryData struct {
	Name        string
	Type        string // dialect spelling of the entry type
	Unit        string
	Read        string // rendered read expression
	Const       bool   // declared const in the header
	Scaled      bool   // initializer multiplies by the unit
	ScaleVector bool   // constructor body scales every element
	IsVector    bool
}

// PassData is the root object for every pass template
type PassData struct {
	Entries    []EntryData
	StreamType string
	StreamName string
	LogSink    string
	Category   string
}

// readData is the data exposed to the dialect read expression
type readData struct {
	Name string
	Type string
	Unit string
}

// IsConst reports whether the member is declared const.
// Vectors are scaled in the constructor body, so they stay mutable.
func IsConst(e models.Entry) bool {
	return e.Type.IsScalar()
}

// ScalesInInitializer reports whether the initializer multiplies by the unit.
// Only Double scalars with a unit qualify; Bool and vectors never do.
func ScalesInInitializer(e models.Entry) bool {
	return e.Type == models.EntryTypeDouble && e.HasUnit()
}

// ScalesVector reports whether the constructor body scales the vector elements
func ScalesVector(e models.Entry) bool {
	if !e.IsVector() || !e.HasUnit() {
		return false
	}
	name := strings.ToLower(e.Name)
	return !strings.Contains(name, "color") && !strings.Contains(name, "vis")
}
