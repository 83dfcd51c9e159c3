package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/webhook"
	"github.com/shenikar/campus_safety/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const detectedProximity = "Detected Proximity"

// DraftInput - запрос оператора на черновик SOS
type DraftInput struct {
	Location         models.Location
	ExtraDetails     string
	SelectedBuilding string
	Hours            int
}

// TransmitRequest - принятый оператором черновик
type TransmitRequest struct {
	Message         string
	Location        models.Location
	Building        string
	OperatorDetails string
}

// EmergencyService закрывает цикл SOS: черновик, затем запись в журнал и оповещение
type EmergencyService interface {
	Draft(ctx context.Context, input DraftInput) string
	Transmit(ctx context.Context, req TransmitRequest) (*models.EmergencyLog, error)
}

type emergencyService struct {
	store       IncidentStore
	flow        DraftFlow
	publisher   webhook.Publisher
	directive   string
	filterHours int
	logger      *logrus.Logger
	now         func() time.Time
}

func NewEmergencyService(store IncidentStore, flow DraftFlow, publisher webhook.Publisher, directive string, filterHours int, logger *logrus.Logger) EmergencyService {
	return &emergencyService{
		store:       store,
		flow:        flow,
		publisher:   publisher,
		directive:   directive,
		filterHours: filterHours,
		logger:      logger,
		now:         time.Now,
	}
}

// Draft берет инциденты текущего окна; недоступное хранилище не мешает черновику
func (s *emergencyService) Draft(ctx context.Context, input DraftInput) string {
	hours := input.Hours
	if hours <= 0 {
		hours = s.filterHours
	}

	incidents, err := s.store.ListIncidents(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "emergency",
			"method":  "Draft",
		}).WithError(err).Warn("Drafting without incident context")
		incidents = nil
	}

	return s.flow.Draft(ctx, DraftRequest{
		Incidents:        WindowIncidents(incidents, s.now(), hours),
		Location:         input.Location,
		Landmarks:        models.CampusLocations,
		ExtraDetails:     input.ExtraDetails,
		Directive:        s.directive,
		SelectedBuilding: input.SelectedBuilding,
	})
}

// Transmit сохраняет запись SOS, порождая CRITICAL инцидент, и публикует событие.
// Ошибка публикации только логируется.
func (s *emergencyService) Transmit(ctx context.Context, req TransmitRequest) (*models.EmergencyLog, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("service: %w", ErrEmptyDraft)
	}

	building := req.Building
	if building == "" {
		building = detectedProximity
	}
	entry := models.EmergencyLog{
		ID:              "log-" + uuid.NewString(),
		Timestamp:       s.now().UTC(),
		Message:         message,
		Location:        req.Location,
		Building:        building,
		OperatorDetails: req.OperatorDetails,
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "emergency",
		"method":   "Transmit",
		"log_id":   entry.ID,
		"building": building,
	})

	if err := s.store.AddEmergencyLog(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to log SOS transmission")
		return nil, fmt.Errorf("service: could not transmit sos: %w", err)
	}
	metrics.RecordSOSTransmission()
	log.Info("SOS transmitted and logged")

	if err := s.publisher.Publish(ctx, webhook.NewSOSEvent(entry)); err != nil {
		log.WithError(err).Warn("Failed to publish SOS event")
	}
	return &entry, nil
}
