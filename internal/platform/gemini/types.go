package gemini

// generatePromptData is the data passed to the generation prompt template.
type generatePromptData struct {
	Topic     string
	Format    string
	Tone      string
	Style     string
	WordCount int
	Language  string
}

// explainPromptData is the data passed to the explanation prompt template.
type explainPromptData struct {
	Word            string
	Language        string
	SurroundingText string
}
