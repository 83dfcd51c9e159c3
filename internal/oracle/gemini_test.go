package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeGenerator запоминает последний запрос и отдает заранее заданный ответ
type fakeGenerator struct {
	resp   *genai.GenerateContentResponse
	err    error
	model  string
	config *genai.GenerateContentConfig
	calls  int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestGemini(gen *fakeGenerator) *Gemini {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return &Gemini{
		models: gen,
		names: ModelNames{
			Summary:  "summary-model",
			Draft:    "draft-model",
			Chat:     "chat-model",
			Classify: "classify-model",
		},
		logger: logger,
	}
}

func TestSummarize_ParsesStructuredResponse(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(`{"score": 64, "summary": "Moderate activity", "recommendations": ["Use lit paths"], "reasoningSteps": ["Weighed theft reports"]}`)}
	oracle := newTestGemini(gen)

	status, err := oracle.Summarize(context.Background(), "context")

	require.NoError(t, err)
	assert.Equal(t, &models.SafetyStatus{
		Score:           64,
		Summary:         "Moderate activity",
		Recommendations: []string{"Use lit paths"},
		ReasoningSteps:  []string{"Weighed theft reports"},
	}, status)
	assert.Equal(t, "summary-model", gen.model)
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
	require.NotNil(t, gen.config.ThinkingConfig)
	assert.Equal(t, int32(2000), *gen.config.ThinkingConfig.ThinkingBudget)
}

func TestSummarize_MalformedFallsBackToBaseline(t *testing.T) {
	oracle := newTestGemini(&fakeGenerator{resp: textResponse(`I think campus is safe`)})

	status, err := oracle.Summarize(context.Background(), "context")

	require.NoError(t, err)
	assert.Equal(t, BaselineStatus(), status)
}

func TestSummarize_RateLimitIsRetryable(t *testing.T) {
	oracle := newTestGemini(&fakeGenerator{err: genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "Quota exceeded"}})

	_, err := oracle.Summarize(context.Background(), "context")

	require.Error(t, err)
	assert.ErrorIs(t, err, retry.ErrRateLimited)
	assert.True(t, retry.IsRateLimit(err))
}

func TestSummarize_TerminalErrorIsNotRetryable(t *testing.T) {
	oracle := newTestGemini(&fakeGenerator{err: genai.APIError{Code: 403, Status: "PERMISSION_DENIED", Message: "API key invalid"}})

	_, err := oracle.Summarize(context.Background(), "context")

	require.Error(t, err)
	assert.False(t, errors.Is(err, retry.ErrRateLimited))
}

func TestDraft_DefaultsAndConfig(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("  UH SOS: Library - Fire. IMMEDIATE HELP REQ. \n")}
	oracle := newTestGemini(gen)

	text, err := oracle.Draft(context.Background(), "prompt", "")

	require.NoError(t, err)
	assert.Equal(t, "UH SOS: Library - Fire. IMMEDIATE HELP REQ.", text)
	assert.Equal(t, "draft-model", gen.model)
	assert.Equal(t, int32(80), gen.config.MaxOutputTokens)
	require.NotNil(t, gen.config.Temperature)
	assert.InDelta(t, 0.1, float64(*gen.config.Temperature), 1e-6)
	require.NotNil(t, gen.config.SystemInstruction)
	require.Len(t, gen.config.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are an emergency response coordinator assistant.", gen.config.SystemInstruction.Parts[0].Text)
}

func TestDraft_EmptyTextUsesDefault(t *testing.T) {
	oracle := newTestGemini(&fakeGenerator{resp: textResponse("")})

	text, err := oracle.Draft(context.Background(), "prompt", "Custom")

	require.NoError(t, err)
	assert.Equal(t, "UH SOS: Urgent assistance requested at my current location.", text)
}

func TestChat_CollectsGroundingLinks(t *testing.T) {
	resp := textResponse("The library is 200m north.")
	resp.Candidates[0].GroundingMetadata = &genai.GroundingMetadata{
		GroundingChunks: []*genai.GroundingChunk{
			{Maps: &genai.GroundingChunkMaps{Title: "MD Anderson Library", URI: "https://maps.google.com/?cid=1"}},
			{Web: &genai.GroundingChunkWeb{Title: "UH Police", URI: "https://uh.edu/police"}},
			{Web: &genai.GroundingChunkWeb{Title: "No link"}},
		},
	}
	gen := &fakeGenerator{resp: resp}
	oracle := newTestGemini(gen)
	location := models.Location{Lat: 29.7199, Lng: -95.3422}

	reply, err := oracle.Chat(context.Background(), "where is the library?", "system", location)

	require.NoError(t, err)
	assert.Equal(t, "The library is 200m north.", reply.Text)
	assert.Equal(t, []models.GroundingLink{
		{Title: "MD Anderson Library", URI: "https://maps.google.com/?cid=1"},
		{Title: "UH Police", URI: "https://uh.edu/police"},
	}, reply.Links)
	require.Len(t, gen.config.Tools, 1)
	assert.NotNil(t, gen.config.Tools[0].GoogleMaps)
	assert.Equal(t, 29.7199, *gen.config.ToolConfig.RetrievalConfig.LatLng.Latitude)
	assert.Equal(t, -95.3422, *gen.config.ToolConfig.RetrievalConfig.LatLng.Longitude)
}

func TestChat_EmptyTextUsesDefault(t *testing.T) {
	oracle := newTestGemini(&fakeGenerator{resp: &genai.GenerateContentResponse{}})

	reply, err := oracle.Chat(context.Background(), "hello", "system", models.Location{})

	require.NoError(t, err)
	assert.Equal(t, "Reasoning link active. Processing spatial request.", reply.Text)
	assert.Empty(t, reply.Links)
}

func TestClassify(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(`{"severity":"high","analysis":"Active intrusion risk"}`)}
	oracle := newTestGemini(gen)

	assessment, err := oracle.Classify(context.Background(), "Door forced open")

	require.NoError(t, err)
	assert.Equal(t, models.SeverityHigh, assessment.Severity)
	assert.Equal(t, "Active intrusion risk", assessment.Analysis)
	assert.Equal(t, "classify-model", gen.model)
}

func TestClassify_UnknownSeverityDefaults(t *testing.T) {
	oracle := newTestGemini(&fakeGenerator{resp: textResponse(`{"severity":"SEVERE","analysis":"?"}`)})

	assessment, err := oracle.Classify(context.Background(), "something")

	require.NoError(t, err)
	assert.Equal(t, DefaultAssessment(), assessment)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		rateLimit bool
	}{
		{name: "code 429", err: genai.APIError{Code: 429}, rateLimit: true},
		{name: "resource exhausted", err: genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}, rateLimit: true},
		{name: "pointer api error", err: &genai.APIError{Code: 429}, rateLimit: true},
		{name: "wrapped api error", err: fmt.Errorf("transport: %w", genai.APIError{Code: 429}), rateLimit: true},
		{name: "server error", err: genai.APIError{Code: 500, Status: "INTERNAL"}, rateLimit: false},
		{name: "plain error", err: errors.New("dial tcp: connection refused"), rateLimit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError("summarize", tt.err)

			assert.Equal(t, tt.rateLimit, errors.Is(err, retry.ErrRateLimited))
			assert.ErrorContains(t, err, "oracle: summarize failed")
		})
	}
}
