package search

import (
	"strings"

	"github.com/jonathan/healthjobfinder/internal/llm"
	"github.com/jonathan/healthjobfinder/internal/prompts"
	"github.com/jonathan/healthjobfinder/internal/types"
)

const promptFile = "search.json"

// BuildJobSearchRequest builds the job search payload. Without a resume it is a
// single text block; with one it is instructions, resume intro, the resume itself
// and the output format, in that order. Both variants end with the JSON format
// instruction. The only side effect is reading the resume.
func BuildJobSearchRequest(filters types.FilterState, resume *Resume) (*llm.Request, error) {
	base := prompts.MustRender(promptFile, "job-search", map[string]string{
		"Keywords":           filters.Keywords,
		"Roles":              joinOr(filters.SortedRoles(), "Any healthcare role"),
		"Countries":          joinOr(filters.SortedCountries(), "Any"),
		"VisaQuery":          visaQuery(filters.VisaSponsorshipRequired),
		"InternationalQuery": internationalQuery(filters.InternationalApplicantsOnly),
	})
	format := llm.BuildJSONInstruction(llm.JobListingsSchema())

	req := &llm.Request{Purpose: llm.PurposeJobSearch}
	if resume == nil {
		req.Parts = []llm.Part{llm.TextPart(base + "\n" + format)}
		return req, nil
	}

	data, mimeType, err := resume.Read()
	if err != nil {
		return nil, err
	}
	req.Parts = []llm.Part{
		llm.TextPart(base),
		llm.TextPart(prompts.MustGet(promptFile, "job-search-resume")),
		llm.InlinePart(data, mimeType),
		llm.TextPart(format),
	}
	return req, nil
}

// BuildInsightsRequest builds the market insights prompt. The answer is free
// Markdown, so no JSON format instruction is appended.
func BuildInsightsRequest(filters types.FilterState) *llm.Request {
	visaContext := "for international applicants"
	if filters.VisaSponsorshipRequired {
		visaContext = "with focus on visa sponsorship and relocation trends"
	}
	internationalContext := "across different applicant backgrounds"
	if filters.InternationalApplicantsOnly {
		internationalContext = "highlighting opportunities for international professionals"
	}

	text := prompts.MustRender(promptFile, "market-insights", map[string]string{
		"Keywords":             filters.Keywords,
		"Roles":                joinOr(filters.SortedRoles(), "All healthcare roles"),
		"Countries":            joinOr(filters.SortedCountries(), "Global markets"),
		"VisaContext":          visaContext,
		"InternationalContext": internationalContext,
	})

	return &llm.Request{
		Purpose: llm.PurposeInsights,
		Parts:   []llm.Part{llm.TextPart(text)},
	}
}

func visaQuery(required bool) string {
	if required {
		return "with visa sponsorship OR relocation assistance"
	}
	return "open to international applicants"
}

func internationalQuery(only bool) string {
	if only {
		return "international applicants welcome"
	}
	return "for both local and international candidates"
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
