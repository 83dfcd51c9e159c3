package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/sirupsen/logrus"
)

// ListFilter - необязательные условия выборки инцидентов. Нулевые значения ничего не фильтруют.
type ListFilter struct {
	Status models.IncidentStatus
	Hours  int
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	ListIncidents(ctx context.Context, filter ListFilter) ([]models.Incident, error)
	ReportIncident(ctx context.Context, incident *models.Incident) error
	SetIncidentStatus(ctx context.Context, id string, status models.IncidentStatus) error
	DeleteIncident(ctx context.Context, id string) error
	ListEmergencyLogs(ctx context.Context) ([]models.EmergencyLog, error)
}

type incidentService struct {
	store  IncidentStore
	oracle Oracle
	policy retry.Policy
	logger *logrus.Logger
	now    func() time.Time
}

func NewIncidentService(store IncidentStore, oracle Oracle, policy retry.Policy, logger *logrus.Logger) IncidentService {
	return &incidentService{
		store:  store,
		oracle: oracle,
		policy: policy.WithOperation("classify"),
		logger: logger,
		now:    time.Now,
	}
}

// ListIncidents возвращает инциденты в порядке хранилища с учетом фильтра
func (s *incidentService) ListIncidents(ctx context.Context, filter ListFilter) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"status":  filter.Status,
		"hours":   filter.Hours,
	})

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidStatus, filter.Status)
	}

	incidents, err := s.store.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from store")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if filter.Hours > 0 {
		incidents = WindowIncidents(incidents, s.now(), filter.Hours)
	}
	if filter.Status != "" {
		filtered := make([]models.Incident, 0, len(incidents))
		for _, incident := range incidents {
			if incident.Status == filter.Status {
				filtered = append(filtered, incident)
			}
		}
		incidents = filtered
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// ReportIncident принимает внешний отчет: классифицирует описание и сохраняет со статусом pending.
// Ошибка классификации не мешает сохранению: остается заданная или LOW серьезность.
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to report a new incident")

	// CRITICAL выставляет только классификатор или передача SOS
	if incident.Severity != "" && (!incident.Severity.Valid() || incident.Severity == models.SeverityCritical) {
		return fmt.Errorf("service: %w: %q", ErrInvalidSeverity, incident.Severity)
	}

	assessment, err := retry.Do(ctx, s.policy, func(ctx context.Context) (*models.IncidentAssessment, error) {
		return s.oracle.Classify(ctx, incident.Description)
	})
	switch {
	case err != nil:
		log.WithError(err).Warn("Incident classification failed, keeping reported severity")
		if incident.Severity == "" {
			incident.Severity = models.SeverityLow
		}
	default:
		if incident.Severity == "" {
			incident.Severity = assessment.Severity
		}
		if incident.Analysis == "" {
			incident.Analysis = assessment.Analysis
		}
	}

	incident.ID = uuid.NewString()
	incident.Status = models.StatusPending
	if incident.Timestamp.IsZero() {
		incident.Timestamp = s.now().UTC()
	}
	if incident.LocationName == "" {
		incident.LocationName = nearestLandmark(incident.Location, models.CampusLocations)
	}

	if err := s.store.AddIncident(ctx, *incident); err != nil {
		log.WithError(err).Error("Failed to add incident to store")
		return fmt.Errorf("service: could not report incident: %w", err)
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"severity":    incident.Severity,
	}).Info("Incident reported successfully")
	return nil
}

// SetIncidentStatus меняет статус. Любой статус может следовать за любым.
func (s *incidentService) SetIncidentStatus(ctx context.Context, id string, status models.IncidentStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SetIncidentStatus",
		"incident_id": id,
		"status":      status,
	})

	if !status.Valid() {
		return fmt.Errorf("service: %w: %q", ErrInvalidStatus, status)
	}

	if err := s.store.SetIncidentStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to update incident status in store")
		return fmt.Errorf("service: could not set incident status: %w", err)
	}

	log.Info("Incident status updated")
	return nil
}

// DeleteIncident удаляет инцидент; отсутствие записи не считается ошибкой
func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})

	if err := s.store.DeleteIncident(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in store")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	log.Info("Incident deleted")
	return nil
}

func (s *incidentService) ListEmergencyLogs(ctx context.Context) ([]models.EmergencyLog, error) {
	logs, err := s.store.ListEmergencyLogs(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "ListEmergencyLogs",
		}).WithError(err).Error("Failed to list emergency logs from store")
		return nil, fmt.Errorf("service: could not list emergency logs: %w", err)
	}
	return logs, nil
}

// WindowIncidents оставляет инциденты строго новее now - hours. hours <= 0 означает 24 часа.
func WindowIncidents(incidents []models.Incident, now time.Time, hours int) []models.Incident {
	if hours <= 0 {
		hours = 24
	}
	cutoff := now.Add(-time.Duration(hours) * time.Hour)

	windowed := make([]models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident.Timestamp.After(cutoff) {
			windowed = append(windowed, incident)
		}
	}
	return windowed
}

// nearestLandmark - имя ближайшего ориентира по плоскому расстоянию в градусах
func nearestLandmark(location models.Location, landmarks []models.Landmark) string {
	best, bestDist := "", 0.0
	for i, landmark := range landmarks {
		dLat := landmark.Location.Lat - location.Lat
		dLng := landmark.Location.Lng - location.Lng
		dist := dLat*dLat + dLng*dLng
		if i == 0 || dist < bestDist {
			best, bestDist = landmark.Name, dist
		}
	}
	return best
}
