package generator

import (
	"fmt"
	"strings"
)

// Section identifies where a block of generated code is pasted
type Section string

const (
	SectionHeader Section = "header"
	SectionInit   Section = "init"
	SectionBody   Section = "body"
	SectionPrint  Section = "print"
)

// AllSections returns every section in output order
func AllSections() []Section {
	return []Section{SectionHeader, SectionInit, SectionBody, SectionPrint}
}

// Banner returns the line printed above the section
func (s Section) Banner() string {
	switch s {
	case SectionHeader:
		return "-- CUT AND PASTE BELOW into class member data in header file --"
	case SectionInit:
		return "-- CUT AND PASTE BELOW into constructor initialization list --"
	case SectionBody:
		return "-- CUT AND PASTE BELOW into constructor body --"
	case SectionPrint:
		return "-- CUT AND PASTE BELOW into the print method --"
	default:
		return fmt.Sprintf("-- CUT AND PASTE BELOW into %s --", string(s))
	}
}

// ParseSections converts section names into sections in output order.
// Duplicates are dropped; an empty list selects every section.
func ParseSections(names []string) ([]Section, error) {
	if len(names) == 0 {
		return AllSections(), nil
	}

	wanted := make(map[Section]bool, len(names))
	for _, name := range names {
		s := Section(strings.ToLower(strings.TrimSpace(name)))
		if !s.valid() {
			return nil, fmt.Errorf("unknown section %q (valid: header, init, body, print)", name)
		}
		wanted[s] = true
	}

	var sections []Section
	for _, s := range AllSections() {
		if wanted[s] {
			sections = append(sections, s)
		}
	}
	return sections, nil
}

func (s Section) valid() bool {
	for _, known := range AllSections() {
		if s == known {
			return true
		}
	}
	return false
}
