package gemini

// Request models
type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

// Response models
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
	// Some experimental endpoints put text at top level
	Text string `json:"text"`
}

type Candidate struct {
	Content      *Content `json:"content"`
	Message      *Content `json:"message"`
	FinishReason string   `json:"finishReason,omitempty"`
}
