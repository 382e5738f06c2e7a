// Package validation provides input validation utilities
package validation

import (
	"strings"

	"devconnector/internal/models"
)

// Rule is one predicate with the message reported when it fails.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Field binds a request field to its ordered rules.
type Field[T any] struct {
	Name  string
	Value func(in T) string
	Rules []Rule
}

// Schema is a declarative list of field rules over a request type.
type Schema[T any] []Field[T]

// Result is the outcome of a validation pass. It is valid when Errors is empty.
type Result struct {
	Errors []models.FieldError
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns a validation AppError carrying every failed rule, or nil.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return models.NewValidationError(r.Errors[0].Msg, r.Errors...)
}

// Validate evaluates every rule of every field, in order, and collects one
// FieldError per failed rule.
func (s Schema[T]) Validate(in T) Result {
	var res Result
	for _, f := range s {
		v := f.Value(in)
		for _, r := range f.Rules {
			if !r.Check(v) {
				res.Errors = append(res.Errors, models.FieldError{
					Msg:      r.Message,
					Param:    f.Name,
					Location: "body",
				})
			}
		}
	}
	return res
}

// NotEmpty fails on empty or whitespace-only values.
func NotEmpty(message string) Rule {
	return Rule{
		Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
		Message: message,
	}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{
		Check:   func(v string) bool { return len([]rune(v)) >= n },
		Message: message,
	}
}

// MaxBytes fails when the value is longer than n bytes.
func MaxBytes(n int, message string) Rule {
	return Rule{
		Check:   func(v string) bool { return len(v) <= n },
		Message: message,
	}
}

// HasSkills fails when a comma separated list has no non-blank entry.
func HasSkills(message string) Rule {
	return Rule{
		Check:   func(v string) bool { return len(SplitSkills(v)) > 0 },
		Message: message,
	}
}

// IsEmail fails when the value is not a well-formed email address.
func IsEmail(message string) Rule {
	return Rule{
		Check:   func(v string) bool { return ValidateEmail(v) == nil },
		Message: message,
	}
}

// IsDate fails when a non-empty value is not a recognised date.
// Pair it with NotEmpty for required dates.
func IsDate(message string) Rule {
	return Rule{
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return true
			}
			_, err := ParseDate(v)
			return err == nil
		},
		Message: message,
	}
}
