package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/shenikar/campus_safety/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestPolicy - политика повторов без реального ожидания; паузы записываются в delays
func newTestPolicy(delays *[]time.Duration) retry.Policy {
	return retry.Policy{
		Retries:      retry.DefaultRetries,
		InitialDelay: retry.DefaultInitialDelay,
		Logger:       newTestLogger(),
		Sleep: func(_ context.Context, d time.Duration) error {
			if delays != nil {
				*delays = append(*delays, d)
			}
			return nil
		},
	}
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentStore, *mocks.MockOracle) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	oracleMock := mocks.NewMockOracle(ctrl)

	svc := NewIncidentService(storeMock, oracleMock, newTestPolicy(nil), newTestLogger()).(*incidentService)
	svc.now = func() time.Time { return testNow }
	return svc, storeMock, oracleMock
}

func incidentAt(id string, age time.Duration, status models.IncidentStatus) models.Incident {
	return models.Incident{
		ID:           id,
		Type:         "Suspicious Activity",
		Description:  "Person checking car doors",
		Timestamp:    testNow.Add(-age),
		LocationName: "Student Center South",
		Severity:     models.SeverityMedium,
		Status:       status,
	}
}

func TestListIncidents_NoFilter(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	stored := []models.Incident{
		incidentAt("new", time.Hour, models.StatusPending),
		incidentAt("old", 72*time.Hour, models.StatusResolved),
	}

	// Ожидания
	storeMock.EXPECT().ListIncidents(ctx).Return(stored, nil).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx, ListFilter{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, incidents)
}

func TestListIncidents_StatusAndWindow(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	stored := []models.Incident{
		incidentAt("a", time.Hour, models.StatusPending),
		incidentAt("b", 2*time.Hour, models.StatusConfirmed),
		incidentAt("c", 30*time.Hour, models.StatusPending),
	}
	storeMock.EXPECT().ListIncidents(ctx).Return(stored, nil)

	incidents, err := service.ListIncidents(ctx, ListFilter{Status: models.StatusPending, Hours: 24})

	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "a", incidents[0].ID)
}

func TestListIncidents_InvalidStatus(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	_, err := service.ListIncidents(context.Background(), ListFilter{Status: "archived"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListIncidents_StoreError(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	storeMock.EXPECT().ListIncidents(ctx).Return(nil, errors.New("redis down"))

	_, err := service.ListIncidents(ctx, ListFilter{})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not list incidents")
}

func TestReportIncident_UsesClassification(t *testing.T) {
	service, storeMock, oracleMock := newTestIncidentService(t)
	ctx := context.Background()
	input := &models.Incident{
		Type:        "Facility Breach",
		Description: "Side door to the library forced open",
		Location:    models.Location{Lat: 29.7199, Lng: -95.3448},
	}

	oracleMock.EXPECT().
		Classify(gomock.Any(), input.Description).
		Return(&models.IncidentAssessment{Severity: models.SeverityHigh, Analysis: "Possible intrusion"}, nil)
	var saved models.Incident
	storeMock.EXPECT().
		AddIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident models.Incident) error {
			saved = incident
			return nil
		})

	err := service.ReportIncident(ctx, input)

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, models.SeverityHigh, saved.Severity)
	assert.Equal(t, "Possible intrusion", saved.Analysis)
	assert.Equal(t, models.StatusPending, saved.Status)
	assert.Equal(t, "MD Anderson Library", saved.LocationName)
	assert.True(t, saved.Timestamp.Equal(testNow))
	assert.Equal(t, saved.ID, input.ID)
}

func TestReportIncident_ClassificationFailureKeepsLow(t *testing.T) {
	service, storeMock, oracleMock := newTestIncidentService(t)
	ctx := context.Background()
	input := &models.Incident{Type: "Theft Reported", Description: "Laptop stolen", LocationName: "Fertitta Center"}

	oracleMock.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(nil, errors.New("permission denied"))
	storeMock.EXPECT().AddIncident(ctx, gomock.Any()).Return(nil)

	err := service.ReportIncident(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, models.SeverityLow, input.Severity)
	assert.Equal(t, "Fertitta Center", input.LocationName)
}

func TestReportIncident_KeepsReportedSeverity(t *testing.T) {
	service, storeMock, oracleMock := newTestIncidentService(t)
	ctx := context.Background()
	input := &models.Incident{Type: "Medical Assistance", Description: "Student fainted", Severity: models.SeverityHigh}

	oracleMock.EXPECT().
		Classify(gomock.Any(), gomock.Any()).
		Return(&models.IncidentAssessment{Severity: models.SeverityLow, Analysis: "Minor"}, nil)
	storeMock.EXPECT().AddIncident(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.ReportIncident(ctx, input))
	assert.Equal(t, models.SeverityHigh, input.Severity)
	assert.Equal(t, "Minor", input.Analysis)
}

func TestReportIncident_RetriesRateLimitedClassification(t *testing.T) {
	service, storeMock, oracleMock := newTestIncidentService(t)
	var delays []time.Duration
	service.policy = newTestPolicy(&delays)
	ctx := context.Background()
	input := &models.Incident{Type: "Blue Light Trigger", Description: "Emergency phone pressed"}

	gomock.InOrder(
		oracleMock.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(nil, &retry.RateLimitError{Err: errors.New("429")}),
		oracleMock.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(&models.IncidentAssessment{Severity: models.SeverityHigh}, nil),
	)
	storeMock.EXPECT().AddIncident(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.ReportIncident(ctx, input))
	assert.Equal(t, models.SeverityHigh, input.Severity)
	assert.Equal(t, []time.Duration{time.Second}, delays)
}

func TestReportIncident_InvalidSeverity(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	err := service.ReportIncident(context.Background(), &models.Incident{Severity: "EXTREME"})

	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestReportIncident_ReportedCriticalRejected(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	err := service.ReportIncident(context.Background(), &models.Incident{Description: "Fire", Severity: models.SeverityCritical})

	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestReportIncident_ClassifierMayAssignCritical(t *testing.T) {
	service, storeMock, oracleMock := newTestIncidentService(t)
	ctx := context.Background()
	input := &models.Incident{Type: "Facility Breach", Description: "Armed intruder in the lobby"}

	oracleMock.EXPECT().
		Classify(gomock.Any(), "Armed intruder in the lobby").
		Return(&models.IncidentAssessment{Severity: models.SeverityCritical, Analysis: "Lockdown"}, nil)
	storeMock.EXPECT().AddIncident(ctx, gomock.Any()).Return(nil)

	require.NoError(t, service.ReportIncident(ctx, input))
	assert.Equal(t, models.SeverityCritical, input.Severity)
}

func TestReportIncident_StoreError(t *testing.T) {
	service, storeMock, oracleMock := newTestIncidentService(t)
	ctx := context.Background()

	oracleMock.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(&models.IncidentAssessment{Severity: models.SeverityLow}, nil)
	storeMock.EXPECT().AddIncident(ctx, gomock.Any()).Return(fmt.Errorf("write failed"))

	err := service.ReportIncident(ctx, &models.Incident{Description: "noise"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not report incident")
}

func TestSetIncidentStatus_AnyTransitionAllowed(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	storeMock.EXPECT().SetIncidentStatus(ctx, "x", models.StatusPending).Return(nil)

	assert.NoError(t, service.SetIncidentStatus(ctx, "x", models.StatusPending))
}

func TestSetIncidentStatus_InvalidStatus(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	err := service.SetIncidentStatus(context.Background(), "x", "closed")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeleteIncident(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	storeMock.EXPECT().DeleteIncident(ctx, "gone").Return(nil)

	assert.NoError(t, service.DeleteIncident(ctx, "gone"))
}

func TestListEmergencyLogs(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	logs := []models.EmergencyLog{{ID: "log-1", Message: "help"}}

	storeMock.EXPECT().ListEmergencyLogs(ctx).Return(logs, nil)

	got, err := service.ListEmergencyLogs(ctx)

	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestWindowIncidents(t *testing.T) {
	incidents := []models.Incident{
		incidentAt("fresh", time.Minute, ""),
		incidentAt("edge", 24*time.Hour, ""),
		incidentAt("stale", 25*time.Hour, ""),
	}

	windowed := WindowIncidents(incidents, testNow, 0)

	require.Len(t, windowed, 1)
	assert.Equal(t, "fresh", windowed[0].ID)
	assert.Len(t, WindowIncidents(incidents, testNow, 48), 3)
}
