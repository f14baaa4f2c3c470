package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("board.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "board.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "board.yaml:12")
}

func TestParseErrorWithoutLineOmitsIt(t *testing.T) {
	t.Parallel()

	err := NewParseError("board.yaml", 0, fmt.Errorf("no such file"))
	require.Equal(t, "parse error: board.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("goals[0].items[2].tint", "unknown tint name", nil)
	require.Contains(t, err.Error(), "goals[0].items[2].tint")

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "unknown tint name", valErr.Message)
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "board is empty", nil)
	require.Equal(t, "validation error: board is empty", err.Error())
}

func TestUnknownItemErrorNamesType(t *testing.T) {
	t.Parallel()

	err := NewUnknownItemError(struct{ X int }{})

	var unknownErr *UnknownItemError
	require.ErrorAs(t, err, &unknownErr)
	require.Contains(t, err.Error(), "unknown item variant")
}
