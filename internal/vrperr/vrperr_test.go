package vrperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputFormatsKindAndMessage(t *testing.T) {
	err := Input("unknown location %d", 5)
	require.EqualError(t, err, "input: unknown location 5")
}

func TestInternalWrapsCauseAndUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause, "solve failed")

	require.EqualError(t, err, "internal: solve failed: boom")
	require.ErrorIs(t, err, cause)
}

func TestKindStringValues(t *testing.T) {
	require.Equal(t, "input", KindInput.String())
	require.Equal(t, "internal", KindInternal.String())
	require.Equal(t, "unknown", Kind(99).String())
}
