package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/shenikar/campus_safety/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var userLocation = models.Location{Lat: 29.7199, Lng: -95.3422}

func TestSummaryPrompt_SkipsVerifiedResources(t *testing.T) {
	incidents := []models.Incident{
		{Type: "Verbal Altercation", LocationName: "TDECU Stadium", Description: "Shouting match", Severity: models.SeverityMedium, Status: models.StatusConfirmed},
		{Type: "Police Station", LocationName: "UHPD", Description: "Verified resource", Severity: models.SeverityLow, IsVerifiedResource: true},
		{Type: "Theft Reported", LocationName: "Fertitta Center", Description: "Wallet missing", Severity: models.SeverityLow},
	}

	prompt := SummaryPrompt(incidents, userLocation)

	assert.Contains(t, prompt, "[MEDIUM] confirmed Verbal Altercation at TDECU Stadium: Shouting match")
	assert.Contains(t, prompt, "[LOW] pending Theft Reported at Fertitta Center: Wallet missing")
	assert.NotContains(t, prompt, "UHPD")
	assert.Contains(t, prompt, "USER LOCATION: [29.7199, -95.3422]")
	assert.True(t, strings.HasPrefix(prompt, "CURRENT TACTICAL DATABASE CONTEXT:\n"))
}

func TestSafetyPipeline_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracleMock := mocks.NewMockOracle(ctrl)
	pipeline := NewSafetyPipeline(oracleMock, newTestPolicy(nil), newTestLogger())
	expected := &models.SafetyStatus{Score: 72, Summary: "Stable", Recommendations: []string{"Stay lit"}, ReasoningSteps: []string{"Checked feed"}}

	oracleMock.EXPECT().
		Summarize(gomock.Any(), SummaryPrompt(nil, userLocation)).
		Return(expected, nil)

	status, err := pipeline.Summarize(context.Background(), nil, userLocation)

	require.NoError(t, err)
	assert.Equal(t, expected, status)
}

func TestSafetyPipeline_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracleMock := mocks.NewMockOracle(ctrl)
	var delays []time.Duration
	pipeline := NewSafetyPipeline(oracleMock, newTestPolicy(&delays), newTestLogger())

	gomock.InOrder(
		oracleMock.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(nil, &retry.RateLimitError{Err: errors.New("RESOURCE_EXHAUSTED")}),
		oracleMock.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(nil, errors.New("Error 429: quota exceeded")),
		oracleMock.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(&models.SafetyStatus{Score: 55}, nil),
	)

	status, err := pipeline.Summarize(context.Background(), nil, userLocation)

	require.NoError(t, err)
	assert.Equal(t, 55.0, status.Score)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestSafetyPipeline_FailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracleMock := mocks.NewMockOracle(ctrl)
	pipeline := NewSafetyPipeline(oracleMock, newTestPolicy(nil), newTestLogger())
	terminal := errors.New("invalid api key")

	oracleMock.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(nil, terminal).Times(1)

	status, err := pipeline.Summarize(context.Background(), nil, userLocation)

	assert.Nil(t, status)
	assert.ErrorIs(t, err, terminal)
}
