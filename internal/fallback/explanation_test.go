package fallback_test

import (
	"testing"

	"github.com/inspiro-ai/inspiro-api/internal/fallback"
	"github.com/stretchr/testify/assert"
)

func TestExplanation_Glossary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A definite article used to specify a particular noun.", fallback.Explanation("The"))
	assert.Contains(t, fallback.Explanation("with"), "accompaniment")
}

func TestExplanation_Apology(t *testing.T) {
	t.Parallel()

	out := fallback.Explanation("luminous")
	assert.Contains(t, out, `"luminous"`)
	assert.Contains(t, out, "could not explain")
	assert.Equal(t, out, fallback.Explanation("luminous"))
}
