package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/sirupsen/logrus"
)

const (
	// MaxSOSLength - предел длины SMS
	MaxSOSLength = 160

	unknownThreat = "Unknown Tactical Threat"
)

// DraftRequest - входные данные черновика SOS
type DraftRequest struct {
	Incidents        []models.Incident
	Location         models.Location
	Landmarks        []models.Landmark
	ExtraDetails     string
	Directive        string
	SelectedBuilding string
}

// DraftFlow готовит SOS сообщение не длиннее 160 символов
type DraftFlow interface {
	Draft(ctx context.Context, req DraftRequest) string
}

type draftFlow struct {
	oracle Oracle
	policy retry.Policy
	logger *logrus.Logger
}

func NewDraftFlow(oracle Oracle, policy retry.Policy, logger *logrus.Logger) DraftFlow {
	return &draftFlow{
		oracle: oracle,
		policy: policy.WithOperation("draft"),
		logger: logger,
	}
}

// Draft никогда не возвращает пустую строку: при отказе оракула используется локальный шаблон
func (f *draftFlow) Draft(ctx context.Context, req DraftRequest) string {
	log := f.logger.WithFields(logrus.Fields{
		"service":  "draft",
		"method":   "Draft",
		"building": req.SelectedBuilding,
	})

	prompt := DraftPrompt(req)
	draft, err := retry.Do(ctx, f.policy, func(ctx context.Context) (string, error) {
		return f.oracle.Draft(ctx, prompt, req.Directive)
	})
	if err == nil {
		if draft = truncate(strings.TrimSpace(draft), MaxSOSLength); draft != "" {
			return draft
		}
		err = ErrEmptyDraft
	}

	log.WithError(err).Warn("Oracle draft unavailable, using local template")
	return FallbackDraft(req.SelectedBuilding, req.Location, req.ExtraDetails)
}

// PrimaryThreat - самый серьезный инцидент; при равенстве побеждает первый по порядку
func PrimaryThreat(incidents []models.Incident) (models.Incident, bool) {
	if len(incidents) == 0 {
		return models.Incident{}, false
	}
	primary := incidents[0]
	for _, incident := range incidents[1:] {
		if incident.Severity.Rank() < primary.Severity.Rank() {
			primary = incident
		}
	}
	return primary, true
}

func DraftPrompt(req DraftRequest) string {
	threat := unknownThreat
	if primary, ok := PrimaryThreat(req.Incidents); ok {
		threat = fmt.Sprintf("%s at %s", primary.Type, primary.LocationName)
	}

	landmarks := []byte("[]")
	if len(req.Landmarks) > 0 {
		if data, err := json.Marshal(req.Landmarks); err == nil {
			landmarks = data
		}
	}

	var b strings.Builder
	b.WriteString("Draft a tactical SOS SMS for UH Police.\n\n")
	fmt.Fprintf(&b, "CURRENT USER COORDS: %s\n", req.Location)
	fmt.Fprintf(&b, "MOST CRITICAL THREAT IN DB: %s\n", threat)
	fmt.Fprintf(&b, "CAMPUS LANDMARKS: %s\n", landmarks)
	if req.SelectedBuilding != "" {
		fmt.Fprintf(&b, "USER-SELECTED BUILDING: %s\n", req.SelectedBuilding)
	}
	if req.ExtraDetails != "" {
		fmt.Fprintf(&b, "EXTRA OPERATOR DETAILS: %s\n", req.ExtraDetails)
	}
	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("1. Priority: If USER-SELECTED BUILDING is provided, use it.\n")
	b.WriteString("2. Otherwise, identify building from CAMPUS LANDMARKS closest to USER COORDS.\n")
	b.WriteString(`3. Format: "UH SOS: [Building] - [Threat]. [Details]. Coords: [User Coords]. IMMEDIATE HELP REQ."` + "\n")
	fmt.Fprintf(&b, "4. Max %d chars. Cold, tactical tone.", MaxSOSLength)
	return b.String()
}

// FallbackDraft - детерминированный шаблон. Детали укорачиваются, чтобы сообщение влезло в 160 символов.
func FallbackDraft(building string, location models.Location, details string) string {
	target := building
	if target == "" {
		target = fmt.Sprintf("[%s]", location)
	}
	head := fmt.Sprintf("UH SOS: EMERGENCY at %s.", target)
	const tail = " NEED IMMEDIATE ASSISTANCE."

	details = strings.TrimSpace(details)
	if details == "" {
		return truncate(head+tail, MaxSOSLength)
	}

	room := MaxSOSLength - runeLen(head) - runeLen(tail) - len(" .")
	if room <= 0 {
		return truncate(head+tail, MaxSOSLength)
	}
	return head + " " + truncate(details, room) + "." + tail
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}

func runeLen(s string) int {
	return len([]rune(s))
}
