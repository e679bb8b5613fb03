package dto

type AdvisorRequest struct {
	Question string `json:"question,omitempty"`
}

type AdvisorResponse struct {
	Advice string `json:"advice"`
}

// VertexGenerateRequest is a single-turn generation request for the Gemini
// adapter.
type VertexGenerateRequest struct {
	Model           string
	System          string
	UserMessage     string
	Temperature     *float32
	MaxOutputTokens *int32
}

type VertexGenerateResponse struct {
	Text string
	Raw  any
}
