package gemini

// GenerateContentRequest is the generateContent request body.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// Content is one turn of a conversation.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is one piece of a Content. Text is a pointer so a part without a text
// field can be told apart from one with an empty string.
type Part struct {
	Text *string `json:"text,omitempty"`
}

// NewGenerateContentRequest wraps prompt in exactly one content block holding
// exactly one text part.
func NewGenerateContentRequest(prompt string) *GenerateContentRequest {
	return &GenerateContentRequest{
		Contents: []Content{{
			Parts: []Part{{Text: &prompt}},
		}},
	}
}

// GenerateContentResponse is the subset of the generateContent response the
// caller reads. Every level is optional.
type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates,omitempty"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

// Candidate is one generated alternative.
type Candidate struct {
	Content      *CandidateContent `json:"content,omitempty"`
	FinishReason string            `json:"finishReason,omitempty"`
}

// CandidateContent mirrors Content but tolerates a missing parts list.
type CandidateContent struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts,omitempty"`
}

// UsageMetadata reports token counts for the exchange.
type UsageMetadata struct {
	PromptTokenCount     int64 `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount int64 `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount      int64 `json:"totalTokenCount,omitempty"`
}

// Texts walks candidates[0].content.parts[*].text and returns every text
// value present, in order. Missing levels yield no texts rather than an error.
func (r *GenerateContentResponse) Texts() []string {
	if r == nil || len(r.Candidates) == 0 {
		return nil
	}

	content := r.Candidates[0].Content
	if content == nil {
		return nil
	}

	var texts []string
	for _, part := range content.Parts {
		if part.Text != nil {
			texts = append(texts, *part.Text)
		}
	}

	return texts
}
