package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboard(t *testing.T) (*dashboard, *mocks.MockIncidentStore, *mocks.MockSafetyPipeline) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	pipelineMock := mocks.NewMockSafetyPipeline(ctrl)
	d := newDashboard(storeMock, pipelineMock, newTestLogger(),
		func() time.Time { return testNow },
		func() float64 { return 0.99 },
	)
	return d, storeMock, pipelineMock
}

func TestDashboard_InitialState(t *testing.T) {
	d, _, _ := newTestDashboard(t)

	agents := d.Agents()

	require.Len(t, agents, 1)
	assert.Equal(t, "Central Watch", agents[0].Name)
	assert.Equal(t, models.SpecialtyIncidents, agents[0].Specialty)
	assert.Equal(t, models.AgentActive, agents[0].Status)
	assert.Nil(t, d.Status())
}

func TestDashboard_RefreshWindowsAndUpdatesAgents(t *testing.T) {
	d, storeMock, pipelineMock := newTestDashboard(t)
	ctx := context.Background()
	recent := incidentAt("recent", time.Hour, models.StatusPending)
	stale := incidentAt("stale", 10*time.Hour, models.StatusPending)
	status := &models.SafetyStatus{Score: 42, Summary: "Elevated", ReasoningSteps: []string{"first", "last"}}

	storeMock.EXPECT().ListIncidents(ctx).Return([]models.Incident{recent, stale}, nil)
	pipelineMock.EXPECT().Summarize(ctx, []models.Incident{recent}, userLocation).Return(status, nil)

	got, err := d.Refresh(ctx, userLocation, 6)

	require.NoError(t, err)
	assert.Equal(t, status, got)
	assert.Equal(t, status, d.Status())
	for _, agent := range d.Agents() {
		assert.Equal(t, models.AgentAlert, agent.Status)
		assert.Equal(t, "last", agent.LastInsight)
	}
}

func TestDashboard_ScoreThreshold(t *testing.T) {
	d, storeMock, pipelineMock := newTestDashboard(t)
	ctx := context.Background()

	storeMock.EXPECT().ListIncidents(ctx).Return(nil, nil)
	pipelineMock.EXPECT().Summarize(ctx, gomock.Any(), gomock.Any()).Return(&models.SafetyStatus{Score: 60}, nil)

	_, err := d.Refresh(ctx, userLocation, 24)

	require.NoError(t, err)
	assert.Equal(t, models.AgentActive, d.Agents()[0].Status)
	assert.Equal(t, "Scanning UH sectors. Baseline established.", d.Agents()[0].LastInsight)
}

func TestDashboard_RefreshFailureKeepsPreviousStatus(t *testing.T) {
	d, storeMock, pipelineMock := newTestDashboard(t)
	ctx := context.Background()
	previous := &models.SafetyStatus{Score: 88, Summary: "Calm", ReasoningSteps: []string{"ok"}}

	storeMock.EXPECT().ListIncidents(ctx).Return(nil, nil).Times(2)
	gomock.InOrder(
		pipelineMock.EXPECT().Summarize(ctx, gomock.Any(), gomock.Any()).Return(previous, nil),
		pipelineMock.EXPECT().Summarize(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("oracle unavailable")),
	)

	_, err := d.Refresh(ctx, userLocation, 24)
	require.NoError(t, err)

	got, err := d.Refresh(ctx, userLocation, 24)

	require.Error(t, err)
	assert.Equal(t, previous, got)
	assert.Equal(t, previous, d.Status())
	assert.Equal(t, models.AgentActive, d.Agents()[0].Status)
}

func TestDashboard_DeployAndTerminate(t *testing.T) {
	d, _, _ := newTestDashboard(t)

	agent, err := d.DeployAgent("Perimeter", "Watch parking lots", models.SpecialtyLocations)
	require.NoError(t, err)
	assert.Equal(t, models.AgentScanning, agent.Status)
	assert.Equal(t, "fa-location-dot", agent.Icon)
	assert.True(t, agent.DeployTime.Equal(testNow))
	assert.Len(t, d.Agents(), 2)

	require.NoError(t, d.TerminateAgent(agent.ID))
	assert.Len(t, d.Agents(), 1)
	assert.ErrorIs(t, d.TerminateAgent(agent.ID), ErrAgentNotFound)
}

func TestDashboard_DeployInvalidSpecialty(t *testing.T) {
	d, _, _ := newTestDashboard(t)

	_, err := d.DeployAgent("Ghost", "none", "WEATHER")

	assert.ErrorIs(t, err, ErrInvalidSpecialty)
}
