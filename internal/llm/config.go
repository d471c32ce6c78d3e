// Package llm wraps the Gemini API behind a small client interface and holds the
// helpers that read grounded, semi-structured model responses.
package llm

// Purpose identifies which request flow a model call serves.
type Purpose string

const (
	// PurposeJobSearch retrieves job listings as a fenced JSON block.
	PurposeJobSearch Purpose = "job_search"
	// PurposeInsights retrieves a free-form market analysis in Markdown.
	PurposeInsights Purpose = "insights"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// DefaultModel is the Gemini model used by both flows.
const DefaultModel = "gemini-2.5-flash"

// Profile is the model and sampling setup for one purpose.
type Profile struct {
	Model       string
	Temperature float32
	// Grounding enables the Google Search tool so responses carry web citations.
	Grounding bool
}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Profiles map[Purpose]Profile
}

// DefaultConfig returns the default Gemini configuration.
// Job search runs colder than insights so repeated searches stay comparable.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Profiles: map[Purpose]Profile{
			PurposeJobSearch: {Model: DefaultModel, Temperature: 0.1, Grounding: true},
			PurposeInsights:  {Model: DefaultModel, Temperature: 0.3, Grounding: true},
		},
	}
}

// GetProfile returns the profile for purpose, falling back to the job search profile.
func (c *Config) GetProfile(purpose Purpose) (Profile, bool) {
	if p, ok := c.Profiles[purpose]; ok && p.Model != "" {
		return p, true
	}
	if p, ok := c.Profiles[PurposeJobSearch]; ok && p.Model != "" {
		return p, true
	}
	return Profile{}, false
}

// WithModel returns a copy of c with every profile switched to model.
func (c *Config) WithModel(model string) *Config {
	out := &Config{
		Provider: c.Provider,
		Profiles: make(map[Purpose]Profile, len(c.Profiles)),
	}
	for k, p := range c.Profiles {
		p.Model = model
		out.Profiles[k] = p
	}
	return out
}
