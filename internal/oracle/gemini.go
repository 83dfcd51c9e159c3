// Package oracle - адаптер генеративной модели Gemini для анализа безопасности,
// черновиков SOS, чата и классификации инцидентов.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/shenikar/campus_safety/internal/service"
	"github.com/shenikar/campus_safety/pkg/metrics"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	defaultDraftDirective = "You are an emergency response coordinator assistant."
	defaultDraftText      = "UH SOS: Urgent assistance requested at my current location."
	defaultChatText       = "Reasoning link active. Processing spatial request."

	draftMaxTokens   = 80
	draftTemperature = 0.1
	summaryThinking  = 2000
)

var _ service.Oracle = (*Gemini)(nil)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ModelNames - модели для каждой операции
type ModelNames struct {
	Summary  string
	Draft    string
	Chat     string
	Classify string
}

type Gemini struct {
	models contentGenerator
	names  ModelNames
	logger *logrus.Logger
}

func NewGemini(ctx context.Context, apiKey string, names ModelNames, logger *logrus.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("oracle: Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("oracle: failed to create GenAI client: %w", err)
	}

	return &Gemini{
		models: client.Models,
		names:  names,
		logger: logger,
	}, nil
}

// Summarize возвращает оценку безопасности. Неразборчивый ответ заменяется базовым статусом.
func (g *Gemini) Summarize(ctx context.Context, prompt string) (*models.SafetyStatus, error) {
	resp, err := g.generate(ctx, "summarize", g.names.Summary, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig:   &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](summaryThinking)},
		ResponseMIMEType: "application/json",
		ResponseSchema:   safetyStatusSchema,
	})
	if err != nil {
		return nil, err
	}

	status, err := ParseSafetyStatus(resp.Text())
	if err != nil {
		g.malformed("summarize", err)
		return BaselineStatus(), nil
	}
	return status, nil
}

// Draft возвращает текст SOS как есть; ограничение длины остается за вызывающим
func (g *Gemini) Draft(ctx context.Context, prompt, directive string) (string, error) {
	if directive == "" {
		directive = defaultDraftDirective
	}

	resp, err := g.generate(ctx, "draft", g.names.Draft, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(directive, genai.RoleUser),
		MaxOutputTokens:   draftMaxTokens,
		Temperature:       genai.Ptr[float32](draftTemperature),
	})
	if err != nil {
		return "", err
	}

	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text, nil
	}
	return defaultDraftText, nil
}

// Chat отвечает с привязкой к Google Maps вокруг положения пользователя
func (g *Gemini) Chat(ctx context.Context, message, systemInstruction string, location models.Location) (*models.ChatReply, error) {
	resp, err := g.generate(ctx, "chat", g.names.Chat, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Tools:             []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(location.Lat),
					Longitude: genai.Ptr(location.Lng),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		text = defaultChatText
	}
	return &models.ChatReply{Text: text, Links: groundingLinks(resp)}, nil
}

// Classify определяет серьезность описания. Неразборчивый ответ дает LOW.
func (g *Gemini) Classify(ctx context.Context, description string) (*models.IncidentAssessment, error) {
	prompt := fmt.Sprintf("Analyze this campus incident: %q. Classify its severity and provide a brief safety implication.", description)
	resp, err := g.generate(ctx, "classify", g.names.Classify, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   assessmentSchema,
	})
	if err != nil {
		return nil, err
	}

	assessment, err := ParseAssessment(resp.Text())
	if err != nil {
		g.malformed("classify", err)
		return DefaultAssessment(), nil
	}
	return assessment, nil
}

func (g *Gemini) generate(ctx context.Context, operation, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	log := g.logger.WithFields(logrus.Fields{
		"oracle":    "gemini",
		"operation": operation,
		"model":     model,
	})

	resp, err := g.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		wrapped := classifyError(operation, err)
		if retry.IsRateLimit(wrapped) {
			metrics.RecordOracleCall(operation, "rate_limited")
			log.WithError(err).Warn("Oracle call rate limited")
		} else {
			metrics.RecordOracleCall(operation, "error")
			log.WithError(err).Error("Oracle call failed")
		}
		return nil, wrapped
	}
	if resp == nil {
		metrics.RecordOracleCall(operation, "error")
		return nil, fmt.Errorf("oracle: %s returned no response", operation)
	}

	metrics.RecordOracleCall(operation, "ok")
	log.Debug("Oracle call succeeded")
	return resp, nil
}

func (g *Gemini) malformed(operation string, err error) {
	metrics.RecordOracleCall(operation, "malformed")
	g.logger.WithFields(logrus.Fields{
		"oracle":    "gemini",
		"operation": operation,
	}).WithError(err).Warn("Oracle response malformed, using safe default")
}

// classifyError помечает ответы 429 и RESOURCE_EXHAUSTED как ограничение частоты
func classifyError(operation string, err error) error {
	wrapped := fmt.Errorf("oracle: %s failed: %w", operation, err)
	if isQuotaError(err) {
		return &retry.RateLimitError{Err: wrapped}
	}
	return wrapped
}

func isQuotaError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}

func groundingLinks(resp *genai.GenerateContentResponse) []models.GroundingLink {
	links := []models.GroundingLink{}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].GroundingMetadata == nil {
		return links
	}

	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil {
			continue
		}
		switch {
		case chunk.Maps != nil && chunk.Maps.URI != "":
			links = append(links, models.GroundingLink{Title: chunk.Maps.Title, URI: chunk.Maps.URI})
		case chunk.Web != nil && chunk.Web.URI != "":
			links = append(links, models.GroundingLink{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}
	return links
}
