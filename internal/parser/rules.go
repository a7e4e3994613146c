package parser

import (
	"strings"

	"github.com/toyz/geomtyper/internal/models"
)

// ClassificationRule adjusts the type or unit of an entry under construction.
// Rules run in ascending Precedence and every rule runs; a later rule may
// override what an earlier one decided.
type ClassificationRule struct {
	Precedence  int
	Name        string
	Description string
	Apply       func(e *models.Entry)
}

var classificationRules = []ClassificationRule{
	{
		Precedence:  1,
		Name:        "boolean-value",
		Description: "value is true or false (any case): type Bool, no unit",
		Apply: func(e *models.Entry) {
			switch strings.ToLower(e.RawValue) {
			case "true", "false":
				e.Type = models.EntryTypeBool
				e.Unit = ""
			}
		},
	},
	{
		Precedence:  2,
		Name:        "vis-name",
		Description: `name contains "vis" (any case): no unit`,
		Apply: func(e *models.Entry) {
			if containsFold(e.Name, "vis") {
				e.Unit = ""
			}
		},
	},
	{
		Precedence:  3,
		Name:        "vector-value",
		Description: "value starts with '[': type DoubleVector",
		Apply: func(e *models.Entry) {
			if strings.HasPrefix(e.RawValue, "[") {
				e.Type = models.EntryTypeDoubleVector
			}
		},
	},
	{
		Precedence:  4,
		Name:        "color-name",
		Description: `name contains "color" (any case): no unit`,
		Apply: func(e *models.Entry) {
			if containsFold(e.Name, "color") {
				e.Unit = ""
			}
		},
	},
}

// ClassificationRules returns the ordered rules used to type entries
func ClassificationRules() []ClassificationRule {
	rules := make([]ClassificationRule, len(classificationRules))
	copy(rules, classificationRules)
	return rules
}

// classify applies every classification rule to the entry in precedence order.
// The entry starts out as a Double carrying the parsed unit.
func classify(e *models.Entry) {
	e.Type = models.EntryTypeDouble
	for _, rule := range classificationRules {
		rule.Apply(e)
	}
}

// containsFold reports whether substr is within s, ignoring case
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
