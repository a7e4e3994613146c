package utils

import (
	"fmt"
	"regexp"

	"github.com/toyz/geomtyper/internal/models"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Line    int
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Line > 0:
		return fmt.Sprintf("line %d: %s %q %s", e.Line, e.Field, e.Value, e.Message)
	case e.Field != "":
		return fmt.Sprintf("%s %q %s", e.Field, e.Value, e.Message)
	default:
		return fmt.Sprintf("validation error: %s", e.Message)
	}
}

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain allows chaining multiple validators
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Validate runs all validators in the chain and stops at the first failure
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return ValidationError{Field: field, Value: value, Message: "cannot be empty"}
		}
		return nil
	}
}

// MatchesRegex validates that a string matches a regex pattern
func MatchesRegex(field, pattern, message string) Validator[string] {
	regex := regexp.MustCompile(pattern)
	return func(value string) error {
		if !regex.MatchString(value) {
			return ValidationError{Field: field, Value: value, Message: message}
		}
		return nil
	}
}

// Custom validates using a custom function
func Custom[T any](field string, message string, validatorFunc func(T) bool) Validator[T] {
	return func(value T) error {
		if !validatorFunc(value) {
			return ValidationError{Field: field, Value: value, Message: message}
		}
		return nil
	}
}

var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "asm": true, "auto": true,
	"bool": true, "break": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "constexpr": true, "continue": true,
	"decltype": true, "default": true, "delete": true, "do": true,
	"double": true, "else": true, "enum": true, "explicit": true,
	"export": true, "extern": true, "false": true, "float": true, "for": true,
	"friend": true, "goto": true, "if": true, "inline": true, "int": true,
	"long": true, "mutable": true, "namespace": true, "new": true,
	"noexcept": true, "not": true, "nullptr": true, "operator": true,
	"or": true, "private": true, "protected": true, "public": true,
	"register": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"template": true, "this": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typename": true, "union": true, "unsigned": true,
	"using": true, "virtual": true, "void": true, "volatile": true,
	"while": true, "xor": true,
}

// IsCppIdentifier validates that a string can name a C++ data member
func IsCppIdentifier(field string) Validator[string] {
	return NewValidatorChain(
		NotEmpty(field),
		MatchesRegex(field, `^[A-Za-z_][A-Za-z0-9_]*$`, "is not a valid C++ identifier"),
		Custom(field, "is a reserved C++ keyword", func(v string) bool { return !cppKeywords[v] }),
	).Validate
}

// ValidateEntries checks every entry name and reports repeated names.
// The returned problems are advisory; the entries still render.
func ValidateEntries(entries []models.Entry) []error {
	var problems []error
	nameValidator := IsCppIdentifier("name")
	firstSeen := make(map[string]int, len(entries))

	for _, e := range entries {
		if err := nameValidator(e.Name); err != nil {
			if ve, ok := err.(ValidationError); ok {
				ve.Line = e.Line
				err = ve
			}
			problems = append(problems, err)
		}

		if line, ok := firstSeen[e.Name]; ok {
			problems = append(problems, ValidationError{
				Field:   "name",
				Line:    e.Line,
				Value:   e.Name,
				Message: fmt.Sprintf("duplicates the entry on line %d", line),
			})
			continue
		}
		firstSeen[e.Name] = e.Line
	}
	return problems
}
