package generation_test

import (
	"errors"
	"testing"

	"github.com/inspiro-ai/inspiro-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSucceeded(t *testing.T) {
	t.Parallel()

	r := generation.Succeeded("Waves fold into waves.")
	assert.True(t, r.OK())
	assert.NoError(t, r.Err())

	text, err := r.Unpack()
	require.NoError(t, err)
	assert.Equal(t, "Waves fold into waves.", text)
}

func TestSucceededWithBlankTextFails(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t"} {
		r := generation.Succeeded(text)
		assert.False(t, r.OK())

		text, err := r.Unpack()
		assert.Empty(t, text)
		assert.ErrorIs(t, err, generation.ErrGenerationFailed)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	}
}

func TestFailedWrapsReason(t *testing.T) {
	t.Parallel()

	r := generation.Failed(generation.ErrContentBlocked)
	err := r.Err()

	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, generation.ErrContentBlocked)
}

func TestFailedNilReason(t *testing.T) {
	t.Parallel()

	err := generation.Failed(nil).Err()
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestFailedDoesNotDoubleWrap(t *testing.T) {
	t.Parallel()

	reason := errors.Join(generation.ErrGenerationFailed, generation.ErrServiceUnavailable)
	err := generation.Failed(reason).Err()
	assert.Same(t, reason, err)
}
