package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingColumnError(t *testing.T) {
	err := &MissingColumnError{
		FilePath: "transactions.csv",
		Column:   "TRANS_VALUE",
	}

	assert.Contains(t, err.Error(), "TRANS_VALUE")
	assert.Contains(t, err.Error(), "transactions.csv")
}

func TestParseError(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := &ParseError{
		FilePath: "broken.csv",
		Field:    "CSV body",
		Value:    "row 12",
		Err:      cause,
	}

	assert.Contains(t, err.Error(), "broken.csv")
	assert.Contains(t, err.Error(), "CSV body")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		FilePath: "profile.yaml",
		Reason:   "schema profile must declare a name",
	}

	assert.Contains(t, err.Error(), "profile.yaml")
	assert.Contains(t, err.Error(), "schema profile must declare a name")
}

func TestInvalidInputError(t *testing.T) {
	cause := fmt.Errorf("invalid syntax")
	err := &InvalidInputError{Input: "abc", Err: cause}

	assert.Contains(t, err.Error(), `"abc"`)
	assert.Equal(t, cause, errors.Unwrap(err))

	// errors.As should find the concrete type through wrapping
	wrapped := fmt.Errorf("prompt failed: %w", err)
	var invalid *InvalidInputError
	assert.True(t, errors.As(wrapped, &invalid))
	assert.Equal(t, "abc", invalid.Input)
}
