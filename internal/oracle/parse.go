package oracle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/campus_safety/internal/models"
	"google.golang.org/genai"
)

// ErrMalformedResponse - ответ оракула не разбирается в ожидаемую форму
var ErrMalformedResponse = errors.New("oracle: malformed response")

var safetyStatusSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":           {Type: genai.TypeNumber},
		"summary":         {Type: genai.TypeString},
		"recommendations": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"reasoningSteps":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"score", "summary", "recommendations", "reasoningSteps"},
}

var assessmentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"severity": {
			Type: genai.TypeString,
			Enum: []string{
				string(models.SeverityLow),
				string(models.SeverityMedium),
				string(models.SeverityHigh),
				string(models.SeverityCritical),
			},
		},
		"analysis": {Type: genai.TypeString},
	},
	Required: []string{"severity", "analysis"},
}

// BaselineStatus - статус по умолчанию при неразборчивом ответе
func BaselineStatus() *models.SafetyStatus {
	return &models.SafetyStatus{
		Score:           90,
		Summary:         "Baseline safety established.",
		Recommendations: []string{"Maintain vigilance"},
		ReasoningSteps:  []string{"Analyzed local feed", "Checked building statuses"},
	}
}

func DefaultAssessment() *models.IncidentAssessment {
	return &models.IncidentAssessment{
		Severity: models.SeverityLow,
		Analysis: "Analyzing situation...",
	}
}

// ParseSafetyStatus требует score и summary; score приводится к диапазону 0-100
func ParseSafetyStatus(text string) (*models.SafetyStatus, error) {
	var raw struct {
		Score           *float64 `json:"score"`
		Summary         *string  `json:"summary"`
		Recommendations []string `json:"recommendations"`
		ReasoningSteps  []string `json:"reasoningSteps"`
	}
	if err := decode(text, &raw); err != nil {
		return nil, err
	}
	if raw.Score == nil || raw.Summary == nil {
		return nil, fmt.Errorf("%w: score and summary are required", ErrMalformedResponse)
	}

	status := &models.SafetyStatus{
		Score:           min(max(*raw.Score, 0), 100),
		Summary:         *raw.Summary,
		Recommendations: raw.Recommendations,
		ReasoningSteps:  raw.ReasoningSteps,
	}
	if status.Recommendations == nil {
		status.Recommendations = []string{}
	}
	if status.ReasoningSteps == nil {
		status.ReasoningSteps = []string{}
	}
	return status, nil
}

// ParseAssessment принимает только известные уровни серьезности
func ParseAssessment(text string) (*models.IncidentAssessment, error) {
	var raw struct {
		Severity string `json:"severity"`
		Analysis string `json:"analysis"`
	}
	if err := decode(text, &raw); err != nil {
		return nil, err
	}

	severity := models.Severity(strings.ToUpper(strings.TrimSpace(raw.Severity)))
	if !severity.Valid() {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrMalformedResponse, raw.Severity)
	}
	return &models.IncidentAssessment{Severity: severity, Analysis: raw.Analysis}, nil
}

func decode(text string, v any) error {
	text = stripFence(strings.TrimSpace(text))
	if text == "" {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// stripFence снимает обертку ```json ... ```, которую модель иногда добавляет
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
