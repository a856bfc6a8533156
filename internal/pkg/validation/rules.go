// Package validation provides reusable field validation rules for request
// payloads beyond what struct tag binding covers.
package validation

import "unicode/utf8"

// Validation limits for user supplied fields
var (
	CourseNameMinLength = 2
	CourseNameMaxLength = 255

	UsernameMinLength = 3
	UsernameMaxLength = 100

	MaxQuestionsPerCourse = 100
)

// StringValidation validates a string field
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length in runes
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length in runes
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation. Lengths are counted in runes so Arabic
// course names are not penalized for their UTF-8 byte width.
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	if !v.Required && v.Value == "" {
		return true
	}

	length := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	return true
}

// NumericValidation validates an integer field
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{
		Value: value,
	}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.Value < v.Min {
		return false
	}
	if v.Max > 0 && v.Value > v.Max {
		return false
	}
	return true
}

// ValidCourseName reports whether a course name is acceptable.
func ValidCourseName(name string) bool {
	return NewStringValidation(name).
		WithMinLength(CourseNameMinLength).
		WithMaxLength(CourseNameMaxLength).
		Validate()
}

// ValidQuestionCount reports whether a requested question count is
// acceptable.
func ValidQuestionCount(n int) bool {
	return NewNumericValidation(n).WithMin(1).WithMax(MaxQuestionsPerCourse).Validate()
}
