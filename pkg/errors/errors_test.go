package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidParameterError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("boom")
	err := NewInvalidParameterError("n", "must be positive", cause)

	var invalidErr *InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, "n", invalidErr.Field)
	require.Contains(t, err.Error(), "invalid parameter: n: must be positive")
	require.ErrorIs(t, err, cause)
}

func TestInvalidExtrasError(t *testing.T) {
	t.Parallel()

	err := NewInvalidExtrasError("CONSTANT", 17, 16)

	var extrasErr *InvalidExtrasError
	require.ErrorAs(t, err, &extrasErr)
	require.Equal(t, "CONSTANT", extrasErr.Key)
	require.Equal(t, 17, extrasErr.Index)
	require.Equal(t, 16, extrasErr.Length)
	require.Contains(t, err.Error(), `"CONSTANT"`)
}

func TestDuplicateKeyError(t *testing.T) {
	t.Parallel()

	err := NewDuplicateKeyError("CURSOR")

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	require.Contains(t, err.Error(), `duplicate key: "CURSOR"`)
}

func TestTemplateParseErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("unterminated placeholder")
	err := NewTemplateParseError("alacritty", "unterminated placeholder at offset 12", cause)

	var parseErr *TemplateParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "alacritty", parseErr.Template)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), `template "alacritty"`)
}

func TestMissingExtraError(t *testing.T) {
	t.Parallel()

	err := NewMissingExtraError("rofi", "SELECTION")

	var missingErr *MissingExtraError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "rofi", missingErr.Template)
	require.Equal(t, "SELECTION", missingErr.Key)
	require.Contains(t, err.Error(), `requires extra "SELECTION"`)
}
