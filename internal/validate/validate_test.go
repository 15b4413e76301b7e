package validate

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCheckerCollects(t *testing.T) {
	check := NewChecker("widget", zerolog.Nop())

	require.True(t, check.RequireString("name", "gizmo"))
	require.False(t, check.RequireString("owner", "  "))
	require.False(t, RequireOneOf(check, "size", "huge", []string{"small", "large"}))
	require.True(t, RequireOneOf(check, "size", "small", []string{"small", "large"}))
	require.False(t, check.Check("count", -1, errors.New("must be positive")))
	require.True(t, check.Check("count", 1, nil))

	err := check.Err()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRequired)
	require.Contains(t, err.Error(), "widget validation failed:")
	require.Contains(t, err.Error(), " - owner: is required\n")
	require.Contains(t, err.Error(), " - size: must be one of [small large]\n")

	var verr *ValidationErrors
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors(), 3)

	var ferr *FieldError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, "owner", ferr.Path)
}

func TestCheckerNoErrors(t *testing.T) {
	check := NewChecker("", zerolog.Nop())
	check.OK("a", 1)
	require.NoError(t, check.Err())

	var v ValidationErrors
	v.Add(nil)
	require.False(t, v.HasErrors())
	v.Add(errors.New("boom"))
	require.Contains(t, v.Error(), "configuration validation failed")
}
