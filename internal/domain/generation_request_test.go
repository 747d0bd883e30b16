package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerationRequest_Defaults(t *testing.T) {
	t.Parallel()

	req, err := NewGenerationRequest(GenerationParams{Topic: "  the sea  "})
	require.NoError(t, err)

	assert.Equal(t, "the sea", req.Topic, "topic should be trimmed")
	assert.Equal(t, FormatPoem, req.Format)
	assert.Equal(t, ToneCreative, req.Tone)
	assert.Equal(t, StylePoetic, req.Style)
	assert.Equal(t, DefaultWordCount, req.WordCount)
	assert.Equal(t, LanguageEnglish, req.Language)
	assert.NoError(t, req.Validate())
}

func TestNewGenerationRequest_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    GenerationParams
		wantErr   error
		wantField string
	}{
		{
			name:      "blank topic",
			params:    GenerationParams{Topic: "   "},
			wantErr:   ErrEmptyTopic,
			wantField: "topic",
		},
		{
			name:      "word count below range",
			params:    GenerationParams{Topic: "rain", WordCount: 49},
			wantErr:   ErrWordCountOutOfRange,
			wantField: "word_count",
		},
		{
			name:      "word count above range",
			params:    GenerationParams{Topic: "rain", WordCount: 1001},
			wantErr:   ErrWordCountOutOfRange,
			wantField: "word_count",
		},
		{
			name:      "negative word count",
			params:    GenerationParams{Topic: "rain", WordCount: -50},
			wantErr:   ErrWordCountOutOfRange,
			wantField: "word_count",
		},
		{
			name:      "unknown format",
			params:    GenerationParams{Topic: "rain", Format: "haiku"},
			wantErr:   ErrInvalidOption,
			wantField: "format",
		},
		{
			name:      "unknown tone",
			params:    GenerationParams{Topic: "rain", Tone: "angry"},
			wantErr:   ErrInvalidOption,
			wantField: "tone",
		},
		{
			name:      "unknown style",
			params:    GenerationParams{Topic: "rain", Style: "limerick"},
			wantErr:   ErrInvalidOption,
			wantField: "style",
		},
		{
			name:      "unknown language",
			params:    GenerationParams{Topic: "rain", Language: "Klingon"},
			wantErr:   ErrInvalidOption,
			wantField: "language",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewGenerationRequest(tc.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation, "every validation error should wrap ErrValidation")

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}

func TestNewGenerationRequest_WordCountBoundaries(t *testing.T) {
	t.Parallel()

	for _, count := range []int{MinWordCount, MaxWordCount} {
		req, err := NewGenerationRequest(GenerationParams{Topic: "autumn", WordCount: count})
		require.NoError(t, err)
		assert.Equal(t, count, req.WordCount, "boundary value should be accepted unchanged")
	}
}

func TestNewGenerationRequest_CaseInsensitiveOptions(t *testing.T) {
	t.Parallel()

	req, err := NewGenerationRequest(GenerationParams{
		Topic:    "home",
		Format:   "ESSAY",
		Tone:     "Formal",
		Style:    "Research-Based",
		Language: "tagalog",
	})
	require.NoError(t, err)

	assert.Equal(t, FormatEssay, req.Format)
	assert.Equal(t, ToneFormal, req.Tone)
	assert.Equal(t, StyleResearchBased, req.Style)
	assert.Equal(t, LanguageTagalog, req.Language)
}

func TestGenerationRequest_ValidateRejectsZeroValue(t *testing.T) {
	t.Parallel()

	err := GenerationRequest{}.Validate()
	assert.ErrorIs(t, err, ErrEmptyTopic)
}

func TestOptionListsAreCopies(t *testing.T) {
	t.Parallel()

	l := Languages()
	l[0] = "Latin"
	assert.Equal(t, LanguageEnglish, Languages()[0])
	assert.Len(t, Formats(), 2)
	assert.Len(t, Tones(), 5)
	assert.Len(t, Styles(), 5)
}
