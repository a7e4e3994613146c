package models

import "fmt"

// EntryType is the C++ value kind inferred for a geometry parameter
type EntryType int

const (
	EntryTypeDouble EntryType = iota
	EntryTypeBool
	EntryTypeDoubleVector
)

// String returns the name of the entry type
func (t EntryType) String() string {
	switch t {
	case EntryTypeDouble:
		return "Double"
	case EntryTypeBool:
		return "Bool"
	case EntryTypeDoubleVector:
		return "DoubleVector"
	default:
		return fmt.Sprintf("EntryType(%d)", int(t))
	}
}

// IsScalar reports whether values of this type are printed and declared as a single value
func (t EntryType) IsScalar() bool {
	return t != EntryTypeDoubleVector
}

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeParse ErrorType = iota
	ErrorTypeConfiguration
	ErrorTypeGeneration
	ErrorTypeFileSystem
)

// String returns a human readable label for the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeParse:
		return "Parse Error"
	case ErrorTypeConfiguration:
		return "Configuration Error"
	case ErrorTypeGeneration:
		return "Code Generation Error"
	case ErrorTypeFileSystem:
		return "File System Error"
	default:
		return "Unknown Error"
	}
}

// ParseErrorKind classifies why a geometry line could not be parsed
type ParseErrorKind int

const (
	MissingSeparator ParseErrorKind = iota
	MissingName
	MissingValue
	InvalidEncoding
)

// String returns the string representation of the parse error kind
func (k ParseErrorKind) String() string {
	switch k {
	case MissingSeparator:
		return "MissingSeparator"
	case MissingName:
		return "MissingName"
	case MissingValue:
		return "MissingValue"
	case InvalidEncoding:
		return "InvalidEncoding"
	default:
		return "UnknownParseError"
	}
}
