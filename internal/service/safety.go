package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/sirupsen/logrus"
)

// SafetyPipeline строит SafetyStatus по окну инцидентов и положению пользователя
type SafetyPipeline interface {
	Summarize(ctx context.Context, incidents []models.Incident, location models.Location) (*models.SafetyStatus, error)
}

type safetyPipeline struct {
	oracle Oracle
	policy retry.Policy
	logger *logrus.Logger
}

func NewSafetyPipeline(oracle Oracle, policy retry.Policy, logger *logrus.Logger) SafetyPipeline {
	return &safetyPipeline{
		oracle: oracle,
		policy: policy.WithOperation("summarize"),
		logger: logger,
	}
}

// Summarize отбрасывает проверенные ресурсы и обращается к оракулу через retry.
// Ошибка после исчерпания повторов возвращается вызывающему.
func (p *safetyPipeline) Summarize(ctx context.Context, incidents []models.Incident, location models.Location) (*models.SafetyStatus, error) {
	log := p.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "Summarize",
	})

	prompt := SummaryPrompt(incidents, location)
	status, err := retry.Do(ctx, p.policy, func(ctx context.Context) (*models.SafetyStatus, error) {
		return p.oracle.Summarize(ctx, prompt)
	})
	if err != nil {
		log.WithError(err).Error("Safety summary failed")
		return nil, fmt.Errorf("service: could not summarize safety status: %w", err)
	}

	log.WithField("score", status.Score).Info("Safety summary produced")
	return status, nil
}

// SummaryPrompt собирает контекст оракула; инциденты с isVerifiedResource в него не попадают
func SummaryPrompt(incidents []models.Incident, location models.Location) string {
	lines := make([]string, 0, len(incidents))
	for _, incident := range incidents {
		if incident.IsVerifiedResource {
			continue
		}
		lines = append(lines, contextLine(incident, "at"))
	}

	var b strings.Builder
	b.WriteString("CURRENT TACTICAL DATABASE CONTEXT:\n")
	b.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "\n\nUSER LOCATION: [%s]\n\n", location)
	b.WriteString("TASK: Provide a real-time safety score (0-100), a concise summary, 3 actionable recommendations, and 4 internal reasoning steps for this tactical profile.")
	return b.String()
}

// contextLine: "[SEV] status type <sep> locationName: description"
func contextLine(incident models.Incident, sep string) string {
	status := incident.Status
	if status == "" {
		status = models.StatusPending
	}
	return fmt.Sprintf("[%s] %s %s %s %s: %s",
		incident.Severity, status, incident.Type, sep, incident.LocationName, incident.Description)
}
