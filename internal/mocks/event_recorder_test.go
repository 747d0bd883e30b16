package mocks_test

import (
	"context"
	"testing"

	"github.com/inspiro-ai/inspiro-api/internal/events"
	"github.com/inspiro-ai/inspiro-api/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestEventRecorder(t *testing.T) {
	t.Parallel()

	r := &mocks.EventRecorder{}
	assert.Empty(t, r.Events())

	first := events.NewContentEvent(events.ContentGenerated, "")
	second := events.NewContentEvent(events.WordFallback, "")
	assert.NoError(t, r.HandleEvent(context.Background(), first))
	assert.NoError(t, r.HandleEvent(context.Background(), second))

	assert.Equal(t, []*events.ContentEvent{first, second}, r.Events())
	assert.Equal(t, []events.Type{events.ContentGenerated, events.WordFallback}, r.Types())
}
