package llm

import "google.golang.org/genai"

// Part is one piece of a request: either text or an inline binary attachment.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// IsInline reports whether the part carries binary data instead of text.
func (p Part) IsInline() bool {
	return p.Data != nil
}

// TextPart returns a text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// InlinePart returns an attachment part with a declared media type.
func InlinePart(data []byte, mimeType string) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// Request is a provider-neutral content payload for one model call.
type Request struct {
	Purpose Purpose
	Parts   []Part
}

// Text concatenates the text parts, skipping attachments.
func (r *Request) Text() string {
	var out string
	for _, p := range r.Parts {
		if !p.IsInline() {
			out += p.Text
		}
	}
	return out
}

// Contents converts the request into Gemini contents. A request with a single
// text part is sent as plain text; anything else becomes one multi-part user turn.
func (r *Request) Contents() []*genai.Content {
	if len(r.Parts) == 1 && !r.Parts[0].IsInline() {
		return genai.Text(r.Parts[0].Text)
	}

	parts := make([]*genai.Part, 0, len(r.Parts))
	for _, p := range r.Parts {
		if p.IsInline() {
			parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
		} else {
			parts = append(parts, genai.NewPartFromText(p.Text))
		}
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
