package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

// NameLength is the exact number of characters of an ativo name (e.g. PETR4)
const NameLength = 5

// Validation messages shown to the user, one per rule
const (
	MsgNameEmpty     = "Nome do ativo não pode ser vazio."
	MsgNameLength    = "Nome deve ter exatamente 5 caracteres."
	MsgNameLetters   = "Os 4 primeiros caracteres do nome devem ser letras maiúsculas."
	MsgNameDigit     = "O último caractere do nome deve ser um número."
	MsgValuePositive = "Valor do ativo deve ser um número positivo."
	MsgDateInvalid   = "Data inválida."
)

// Candidate holds the raw form fields of an ativo that has not been
// validated yet. Value is kept as typed and parsed during validation.
type Candidate struct {
	Name  string
	Value string
	Date  string
}

// IsEmpty reports whether every field is blank (the reset form state)
func (c Candidate) IsEmpty() bool {
	return c.Name == "" && c.Value == "" && c.Date == ""
}

// Normalize applies the input normalization of the form: names are typed
// in uppercase.
func (c Candidate) Normalize() Candidate {
	c.Name = strings.ToUpper(c.Name)
	return c
}

// ParseValue parses the value field. Anything that is not a finite number
// is reported as not ok.
func (c Candidate) ParseValue() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ValidateCandidate runs the validation rules in order and returns the first
// failure, or nil when the candidate can be submitted.
func ValidateCandidate(c Candidate) error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Rule: RuleNameEmpty, Message: MsgNameEmpty}
	}

	if utf8.RuneCountInString(c.Name) != NameLength {
		return &ValidationError{Rule: RuleNameLength, Message: MsgNameLength}
	}

	name := []rune(c.Name)
	for _, r := range name[:4] {
		if r < 'A' || r > 'Z' {
			return &ValidationError{Rule: RuleNameLetters, Message: MsgNameLetters}
		}
	}

	if last := name[4]; last < '0' || last > '9' {
		return &ValidationError{Rule: RuleNameDigit, Message: MsgNameDigit}
	}

	if v, ok := c.ParseValue(); !ok || v <= 0 {
		return &ValidationError{Rule: RuleValuePositive, Message: MsgValuePositive}
	}

	if !IsValidDate(c.Date) {
		return &ValidationError{Rule: RuleDateInvalid, Message: MsgDateInvalid}
	}

	return nil
}

// Validate is the pass/fail form of ValidateCandidate
func Validate(c Candidate) bool {
	return ValidateCandidate(c) == nil
}

// IsValidDate reports whether s parses to a real calendar date
func IsValidDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	// dateparse reads bare digit runs as unix timestamps, which are not dates
	if strings.Trim(s, "0123456789") == "" {
		return false
	}
	_, err := dateparse.ParseAny(s)
	return err == nil
}

// ToAsset converts a validated candidate into the asset sent to the service.
// The name is uppercased; callers must validate first.
func (c Candidate) ToAsset() Asset {
	v, _ := c.ParseValue()
	return Asset{
		Name:  strings.ToUpper(c.Name),
		Value: v,
		Date:  c.Date,
	}
}
