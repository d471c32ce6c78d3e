// Package llm - schema.go renders the output-format instruction appended to prompts
// that expect a fenced JSON answer.
package llm

import (
	"fmt"
	"strings"
)

// OutputSchema describes a JSON object holding one array of records.
type OutputSchema struct {
	Collection string        // Top-level key holding the record array
	Fields     []SchemaField // Fields of each record
	Rules      []string      // Extra constraints listed after the structure
}

// SchemaField defines a single field in each output record.
type SchemaField struct {
	Name string // JSON field name
	Type string // Type hint shown to the model, e.g. "string", "string[]"
	Hint string // Optional format hint, e.g. "YYYY-MM-DD format"
}

// BuildJSONInstruction renders the instruction asking for a ```json block with
// the schema's structure. The output depends only on the schema.
func BuildJSONInstruction(schema OutputSchema) string {
	var sb strings.Builder

	sb.WriteString("Return the results as a JSON object inside a markdown block with the following structure:\n")
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  %q: [\n    {\n", schema.Collection)
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		fmt.Fprintf(&sb, "      %q: %s", field.Name, typeHint)
		if field.Hint != "" {
			fmt.Fprintf(&sb, " (%s)", field.Hint)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    }\n  ]\n}\n")

	if len(schema.Rules) > 0 {
		sb.WriteString("\nCRITICAL:\n")
		for _, rule := range schema.Rules {
			fmt.Fprintf(&sb, "- %s\n", rule)
		}
	}

	return sb.String()
}

// JobListingsSchema is the record shape requested from the job search prompt.
func JobListingsSchema() OutputSchema {
	return OutputSchema{
		Collection: "jobs",
		Fields: []SchemaField{
			{Name: "title", Type: "string"},
			{Name: "company", Type: "string"},
			{Name: "location", Type: "string"},
			{Name: "description", Type: "string", Hint: "2-3 sentences"},
			{Name: "applyLink", Type: "string"},
			{Name: "requiredDocuments", Type: "string[]"},
			{Name: "visaSponsorshipAvailable", Type: "boolean"},
			{Name: "internationalApplicantsWelcome", Type: "boolean"},
			{Name: "postedDate", Type: "string", Hint: "YYYY-MM-DD format"},
			{Name: "daysAgo", Type: "number"},
			{Name: "source", Type: "string", Hint: `e.g., "LinkedIn", "Indeed", "Facebook"`},
			{Name: "verificationStatus", Type: "string", Hint: `"verified" | "likely" | "unverified"`},
		},
		Rules: []string{
			"Ensure ALL jobs are from the last 30 days ONLY",
			"Ensure ALL jobs support international applicants or have visa sponsorship",
			"daysAgo must be <= 30",
			"If no jobs match these strict criteria, return an empty array",
			"Do NOT include jobs that don't meet these requirements",
		},
	}
}
