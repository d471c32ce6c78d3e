package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/healthjobfinder/internal/config"
	"github.com/jonathan/healthjobfinder/internal/llm"
	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeClient struct {
	text string
	last *llm.Request
}

func (f *fakeClient) Generate(_ context.Context, req *llm.Request) (*genai.GenerateContentResponse, error) {
	f.last = req
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: genai.NewContentFromText(f.text, genai.RoleModel),
		GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{Title: "NHS Jobs", URI: "https://www.jobs.nhs.uk/x"}},
		}},
	}}}, nil
}

func (f *fakeClient) GetModel(llm.Purpose) string { return "fake" }
func (f *fakeClient) Close() error                { return nil }

// setupEnv isolates config from the developer's environment.
func setupEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filters.json")
	for k, v := range map[string]string{
		"GEMINI_API_KEY":   "",
		"API_KEY":          "",
		"HJF_MODEL":        "",
		"HJF_FILTER_STORE": "file",
		"HJF_FILTER_FILE":  path,
		"HJF_LOG_LEVEL":    "error",
		"HJF_LOG_FORMAT":   "json",
		"HJF_RATE_LIMIT":   "",
		"PORT":             "",
	} {
		t.Setenv(k, v)
	}
	return path
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func appWithClient(c llm.Client) *app {
	a := newApp()
	a.newClient = func(context.Context, config.Config) (llm.Client, error) { return c, nil }
	return a
}

func jobsAnswer() string {
	today := time.Now().UTC().Format("2006-01-02")
	return "```json\n{\"jobs\":[{\"title\":\"Staff Nurse\",\"company\":\"NHS Trust\",\"location\":\"Leeds, UK\"," +
		"\"postedDate\":\"" + today + "\",\"source\":\"NHS Jobs\",\"visaSponsorshipAvailable\":true}]}\n```"
}

func TestFiltersCommands(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, newApp(), "filters", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "FILTERS (defaults)")

	out, err = execute(t, newApp(), "filters", "save", "-k", "ICU nurse", "--role", "Nurse", "--country", "Canada,UK", "--visa", "--date-posted", "month")
	require.NoError(t, err)
	assert.Contains(t, out, "SAVED FILTERS")

	out, err = execute(t, newApp(), "filters", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Keywords:        ICU nurse")
	assert.Contains(t, out, "Countries:       Canada, UK")
	assert.Contains(t, out, "Date posted:     month")

	out, err = execute(t, newApp(), "filters", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	out, err = execute(t, newApp(), "filters", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "FILTERS (defaults)")
}

func TestFiltersSave_Invalid(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, newApp(), "filters", "save", "--date-posted", "year")
	assert.Error(t, err)
}

func TestSearch_JSON(t *testing.T) {
	setupEnv(t)
	client := &fakeClient{text: jobsAnswer()}

	out, err := execute(t, appWithClient(client), "search", "-k", "staff nurse", "--country", "UK", "--date-posted", "week", "--json")
	require.NoError(t, err)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Staff Nurse", result.Jobs[0].Title)
	assert.Equal(t, 0, result.Jobs[0].DaysAgo)
	assert.Equal(t, []types.GroundingSource{{Title: "NHS Jobs", URI: "https://www.jobs.nhs.uk/x"}}, result.Sources)
	assert.False(t, result.Loading)
	assert.Nil(t, result.Error)

	assert.Equal(t, llm.PurposeJobSearch, client.last.Purpose)
	assert.Contains(t, client.last.Text(), "Countries/Regions: UK")
}

func TestSearch_Printed(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, appWithClient(&fakeClient{text: jobsAnswer()}), "search", "-k", "nurse")
	require.NoError(t, err)
	assert.Contains(t, out, "JOB LISTINGS (1)")
	assert.Contains(t, out, "Posted today")
	assert.Contains(t, out, "SOURCES")
}

func TestSearch_UseSavedOverlay(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, newApp(), "filters", "save", "-k", "midwife", "--country", "Australia", "--international")
	require.NoError(t, err)

	client := &fakeClient{text: jobsAnswer()}
	_, err = execute(t, appWithClient(client), "search", "--use-saved", "-k", "neonatal midwife", "--json")
	require.NoError(t, err)

	prompt := client.last.Text()
	assert.Contains(t, prompt, `"neonatal midwife"`)
	assert.Contains(t, prompt, "Countries/Regions: Australia")
	assert.Contains(t, prompt, "International Applicants: international applicants welcome")
}

func TestSearch_ModelFailure(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, appWithClient(&fakeClient{text: "Sorry, I could not find anything."}), "search", "-k", "nurse")
	require.Error(t, err)
	assert.Contains(t, out, "UNEXPECTED RESPONSE")
	assert.Contains(t, err.Error(), "Unexpected Response")
}

func TestSearch_ResumeMissing(t *testing.T) {
	setupEnv(t)
	client := &fakeClient{text: jobsAnswer()}

	_, err := execute(t, appWithClient(client), "search", "--resume", filepath.Join(t.TempDir(), "none.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected Response")
	assert.Nil(t, client.last, "model must not be called without the resume")
}

func TestSearch_RequiresAPIKey(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, newApp(), "search", "-k", "nurse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestInsights(t *testing.T) {
	setupEnv(t)
	client := &fakeClient{text: "## UK\nSteady demand for nurses."}

	out, err := execute(t, appWithClient(client), "insights", "--role", "Nurse")
	require.NoError(t, err)
	assert.Contains(t, out, "MARKET INSIGHTS")
	assert.Contains(t, out, "Steady demand for nurses.")
	assert.Equal(t, llm.PurposeInsights, client.last.Purpose)
}
