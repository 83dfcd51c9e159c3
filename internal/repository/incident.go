package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/service"
	"github.com/shenikar/campus_safety/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const (
	IncidentsKey     = "incidents"
	EmergencyLogsKey = "emergency_logs"

	seedWindow = 24 * time.Hour
)

var _ service.IncidentStore = (*IncidentStore)(nil)

// IncidentStore - единственный писатель сохраненного состояния: инцидентов и журнала SOS.
// Каждая операция читает коллекцию целиком, преобразует и записывает целиком.
type IncidentStore struct {
	blobs     BlobStore
	logger    *logrus.Logger
	latency   time.Duration
	landmarks []models.Landmark
	now       func() time.Time
	random    func() float64

	// сериализует циклы read-modify-write внутри процесса
	mu sync.Mutex
}

type StoreOption func(*IncidentStore)

// WithLatency задает искусственную задержку каждой операции
func WithLatency(d time.Duration) StoreOption {
	return func(s *IncidentStore) { s.latency = d }
}

func WithClock(now func() time.Time) StoreOption {
	return func(s *IncidentStore) { s.now = now }
}

// WithRandom задает источник равномерных чисел в [0, 1) для меток времени засева
func WithRandom(random func() float64) StoreOption {
	return func(s *IncidentStore) { s.random = random }
}

func WithLandmarks(landmarks []models.Landmark) StoreOption {
	return func(s *IncidentStore) { s.landmarks = landmarks }
}

func NewIncidentStore(blobs BlobStore, logger *logrus.Logger, opts ...StoreOption) *IncidentStore {
	s := &IncidentStore{
		blobs:     blobs,
		logger:    logger,
		landmarks: models.CampusLocations,
		now:       time.Now,
		random:    rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListIncidents возвращает инциденты, последние изменения первыми.
// При отсутствии или повреждении сохраненных данных засевает хранилище ориентирами кампуса.
func (s *IncidentStore) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.RecordStoreOperation("list_incidents")

	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return s.loadIncidents(ctx)
}

// AddIncident вставляет инцидент в начало коллекции; пустой статус становится pending.
// Запись с уже существующим id заменяется и перемещается в начало.
func (s *IncidentStore) AddIncident(ctx context.Context, incident models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.RecordStoreOperation("add_incident")

	if err := s.delay(ctx); err != nil {
		return err
	}
	current, err := s.loadIncidents(ctx)
	if err != nil {
		return err
	}

	prepared := s.prepareIncident(incident)
	updated := prependIncident(current, prepared)

	blob, err := encode(IncidentsKey, updated)
	if err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, blob); err != nil {
		return fmt.Errorf("repository: could not save incidents: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"repository":  "incident",
		"method":      "AddIncident",
		"incident_id": prepared.ID,
		"severity":    prepared.Severity,
	}).Debug("Incident added")
	return nil
}

// SetIncidentStatus меняет статус инцидента. Неизвестный id - тихая no-op.
// Порядок переходов не проверяется.
func (s *IncidentStore) SetIncidentStatus(ctx context.Context, id string, status models.IncidentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.RecordStoreOperation("set_incident_status")

	if err := s.delay(ctx); err != nil {
		return err
	}
	current, err := s.loadIncidents(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range current {
		if current[i].ID == id {
			current[i].Status = status
			found = true
		}
	}
	if !found {
		return nil
	}

	blob, err := encode(IncidentsKey, current)
	if err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, blob); err != nil {
		return fmt.Errorf("repository: could not save incidents: %w", err)
	}
	return nil
}

// DeleteIncident удаляет инцидент. Неизвестный id - тихая no-op.
func (s *IncidentStore) DeleteIncident(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.RecordStoreOperation("delete_incident")

	if err := s.delay(ctx); err != nil {
		return err
	}
	current, err := s.loadIncidents(ctx)
	if err != nil {
		return err
	}

	updated := make([]models.Incident, 0, len(current))
	for _, incident := range current {
		if incident.ID != id {
			updated = append(updated, incident)
		}
	}
	if len(updated) == len(current) {
		return nil
	}

	blob, err := encode(IncidentsKey, updated)
	if err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, blob); err != nil {
		return fmt.Errorf("repository: could not save incidents: %w", err)
	}
	return nil
}

// ListEmergencyLogs возвращает журнал SOS, последние первыми.
// Отсутствующие или поврежденные данные дают пустой результат.
func (s *IncidentStore) ListEmergencyLogs(ctx context.Context) ([]models.EmergencyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.RecordStoreOperation("list_emergency_logs")

	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return s.loadLogs(ctx)
}

// AddEmergencyLog сохраняет запись SOS и порожденный ею CRITICAL инцидент
// одной атомарной записью обеих коллекций. Повторная запись с тем же id - no-op.
func (s *IncidentStore) AddEmergencyLog(ctx context.Context, log models.EmergencyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.RecordStoreOperation("add_emergency_log")

	if err := s.delay(ctx); err != nil {
		return err
	}
	logs, err := s.loadLogs(ctx)
	if err != nil {
		return err
	}
	for _, existing := range logs {
		if existing.ID == log.ID {
			return nil
		}
	}

	incidents, err := s.loadIncidents(ctx)
	if err != nil {
		return err
	}

	logs = append([]models.EmergencyLog{log}, logs...)
	incidents = prependIncident(incidents, models.SOSIncident(log))

	logsBlob, err := encode(EmergencyLogsKey, logs)
	if err != nil {
		return err
	}
	incidentsBlob, err := encode(IncidentsKey, incidents)
	if err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, logsBlob, incidentsBlob); err != nil {
		return fmt.Errorf("repository: could not save emergency log: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"repository": "incident",
		"method":     "AddEmergencyLog",
		"log_id":     log.ID,
	}).Info("Emergency log persisted and promoted to critical incident")
	return nil
}

func (s *IncidentStore) loadIncidents(ctx context.Context) ([]models.Incident, error) {
	raw, ok, err := s.blobs.Get(ctx, IncidentsKey)
	if err != nil {
		return nil, fmt.Errorf("repository: could not read incidents: %w", err)
	}

	if ok {
		var incidents []models.Incident
		if err := json.Unmarshal(raw, &incidents); err == nil && incidents != nil {
			for i := range incidents {
				if incidents[i].Status == "" {
					incidents[i].Status = models.StatusPending
				}
			}
			return incidents, nil
		}
		s.logger.WithField("key", IncidentsKey).Warn("Stored incidents are malformed, reseeding")
	}

	seed := s.seed()
	blob, err := encode(IncidentsKey, seed)
	if err != nil {
		return nil, err
	}
	if err := s.blobs.Put(ctx, blob); err != nil {
		return nil, fmt.Errorf("repository: could not save seed incidents: %w", err)
	}
	s.logger.WithField("count", len(seed)).Info("Incident store seeded with campus landmarks")
	return seed, nil
}

func (s *IncidentStore) loadLogs(ctx context.Context) ([]models.EmergencyLog, error) {
	raw, ok, err := s.blobs.Get(ctx, EmergencyLogsKey)
	if err != nil {
		return nil, fmt.Errorf("repository: could not read emergency logs: %w", err)
	}
	if !ok {
		return []models.EmergencyLog{}, nil
	}

	var logs []models.EmergencyLog
	if err := json.Unmarshal(raw, &logs); err != nil || logs == nil {
		s.logger.WithField("key", EmergencyLogsKey).Warn("Stored emergency logs are malformed, treating as empty")
		return []models.EmergencyLog{}, nil
	}
	return logs, nil
}

// seed - по одному LOW/confirmed инциденту на ориентир, метка времени равномерно в последних 24 часах
func (s *IncidentStore) seed() []models.Incident {
	now := s.now()
	seed := make([]models.Incident, 0, len(s.landmarks))
	for i, landmark := range s.landmarks {
		offset := time.Duration(s.random() * float64(seedWindow))
		seed = append(seed, models.Incident{
			ID:           fmt.Sprintf("seed-%d", i),
			Type:         "Surveillance Scan",
			Description:  fmt.Sprintf("Baseline established at %s.", landmark.Name),
			Timestamp:    now.Add(-offset).UTC(),
			Location:     landmark.Location,
			LocationName: landmark.Name,
			Severity:     models.SeverityLow,
			Analysis:     "Initial system scan complete.",
			Status:       models.StatusConfirmed,
		})
	}
	return seed
}

func (s *IncidentStore) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *IncidentStore) prepareIncident(incident models.Incident) models.Incident {
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	if incident.Status == "" {
		incident.Status = models.StatusPending
	}
	if incident.Timestamp.IsZero() {
		incident.Timestamp = s.now()
	}
	incident.Timestamp = incident.Timestamp.UTC()
	return incident
}

func prependIncident(current []models.Incident, incident models.Incident) []models.Incident {
	updated := make([]models.Incident, 0, len(current)+1)
	updated = append(updated, incident)
	for _, existing := range current {
		if existing.ID != incident.ID {
			updated = append(updated, existing)
		}
	}
	return updated
}

func encode(key string, value any) (Blob, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return Blob{}, fmt.Errorf("repository: could not marshal %s: %w", key, err)
	}
	return Blob{Key: key, Value: data}, nil
}
