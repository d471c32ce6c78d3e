package llm

import (
	"net/url"

	"github.com/jonathan/healthjobfinder/internal/types"
	"google.golang.org/genai"
)

// ExtractSources lists the web citations of the first candidate in citation order.
// Chunks without a URI are skipped. Duplicates are kept as returned by the API.
func ExtractSources(resp *genai.GenerateContentResponse) []types.GroundingSource {
	sources := []types.GroundingSource{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return sources
	}

	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return sources
	}

	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = hostname(chunk.Web.URI)
		}
		sources = append(sources, types.GroundingSource{Title: title, URI: chunk.Web.URI})
	}
	return sources
}

// hostname falls back to the raw URI when it has no parseable host.
func hostname(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Hostname() == "" {
		return uri
	}
	return u.Hostname()
}
