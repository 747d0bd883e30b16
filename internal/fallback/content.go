package fallback

import (
	"fmt"
	"strings"

	"github.com/inspiro-ai/inspiro-api/internal/domain"
)

// Render synthesizes a placeholder poem or essay for req. Poems are laid out
// as stanzas and essays as paragraphs, both separated by blank lines. The
// output always contains req.Topic verbatim.
func Render(req domain.GenerationRequest) string {
	if req.Format == domain.FormatEssay {
		return renderEssay(req)
	}
	return renderPoem(req)
}

func renderPoem(req domain.GenerationRequest) string {
	header := fmt.Sprintf("Here is a %s poem about %s in %s style:", req.Tone, req.Topic, req.Style)

	stanzas := [][]string{
		{
			"The wonders of " + req.Topic,
			"Captivate my soul and mind,",
			"In depths of thought I find,",
			"Beauty that's one of a kind.",
		},
		{
			"Through valleys deep and mountains high,",
			"The journey of " + req.Topic + " takes flight,",
			"Illuminating darkest night,",
			"With wisdom's gentle, guiding light.",
		},
	}

	blocks := []string{header}
	for _, s := range stanzas {
		blocks = append(blocks, strings.Join(s, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func renderEssay(req domain.GenerationRequest) string {
	paragraphs := []string{
		fmt.Sprintf(
			"This essay explores the fascinating topic of %s. Written in a %s tone with a %s approach, "+
				"it delves into various aspects and considerations.",
			req.Topic, req.Tone, req.Style),
		fmt.Sprintf(
			"Firstly, %s represents a significant area of study in contemporary discourse. "+
				"Scholars and researchers have long debated its implications and applications across different fields.",
			req.Topic),
		fmt.Sprintf(
			"Moreover, when examining %s through a %s lens, we discover nuanced perspectives that challenge "+
				"conventional thinking. This approach allows us to appreciate the complexity and multifaceted "+
				"nature of the subject.",
			req.Topic, req.Style),
	}
	return strings.Join(paragraphs, "\n\n")
}
