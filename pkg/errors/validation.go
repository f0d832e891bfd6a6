package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxIDLength bounds heading, tile and polaroid identifiers.
const maxIDLength = 128

// ValidateID validates an identifier supplied by a config or scenario file.
// kind names the identifier in the error message (e.g. "heading id").
//
// Rules:
//   - Not empty
//   - At most 128 bytes
//   - No control characters or whitespace
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", kind, maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s %q contains whitespace or control characters", kind, id)
		}
	}
	return nil
}

// ValidateDimension checks that v is a finite, strictly positive length.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateCoordinate checks that v is a finite number. Negative values are
// allowed; the core clamps them.
func ValidateCoordinate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	return nil
}

// ValidateText validates heading text.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "heading text cannot be blank")
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "heading text contains control characters")
		}
	}
	return nil
}
