package service

import (
	"context"
	"errors"

	"github.com/shenikar/campus_safety/internal/models"
)

var (
	ErrInvalidStatus    = errors.New("invalid incident status")
	ErrInvalidSeverity  = errors.New("invalid incident severity")
	ErrInvalidSpecialty = errors.New("invalid agent specialty")
	ErrEmptyDraft       = errors.New("sos message is empty")
	ErrAgentNotFound    = errors.New("agent not found")
)

// IncidentStore определяет контракт хранилища инцидентов и журнала SOS
type IncidentStore interface {
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	SetIncidentStatus(ctx context.Context, id string, status models.IncidentStatus) error
	DeleteIncident(ctx context.Context, id string) error
	AddIncident(ctx context.Context, incident models.Incident) error
	ListEmergencyLogs(ctx context.Context) ([]models.EmergencyLog, error)
	AddEmergencyLog(ctx context.Context, log models.EmergencyLog) error
}

// Oracle определяет контракт внешней генеративной модели
type Oracle interface {
	Summarize(ctx context.Context, prompt string) (*models.SafetyStatus, error)
	Draft(ctx context.Context, prompt, directive string) (string, error)
	Chat(ctx context.Context, message, systemInstruction string, location models.Location) (*models.ChatReply, error)
	Classify(ctx context.Context, description string) (*models.IncidentAssessment, error)
}
