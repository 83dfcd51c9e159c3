package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatInstruction_TopFiveIncidents(t *testing.T) {
	incidents := make([]models.Incident, 0, 7)
	for i := 0; i < 7; i++ {
		incidents = append(incidents, models.Incident{
			Type:         fmt.Sprintf("Type-%d", i),
			LocationName: "TDECU Stadium",
			Description:  "desc",
			Severity:     models.SeverityLow,
			Status:       models.StatusConfirmed,
		})
	}

	instruction := ChatInstruction("", incidents, userLocation)

	assert.True(t, strings.HasPrefix(instruction, "You are a campus safety reasoning core."))
	assert.Contains(t, instruction, "[LOW] confirmed Type-0 @ TDECU Stadium: desc")
	assert.Contains(t, instruction, "Type-4")
	assert.NotContains(t, instruction, "Type-5")
	assert.Contains(t, instruction, "Current User Location: 29.7199, -95.3422")
}

func TestChatInstruction_NoIncidents(t *testing.T) {
	instruction := ChatInstruction("Custom directive.", nil, userLocation)

	assert.True(t, strings.HasPrefix(instruction, "Custom directive."))
	assert.Contains(t, instruction, "No recent incidents.")
}

func TestChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	oracleMock := mocks.NewMockOracle(ctrl)
	service := NewChatService(storeMock, oracleMock, newTestPolicy(nil), testDirective, newTestLogger())
	ctx := context.Background()
	reply := &models.ChatReply{
		Text:  "Nearest blue light is by the library.",
		Links: []models.GroundingLink{{Title: "MD Anderson Library", URI: "https://maps.google.com/?cid=1"}},
	}

	storeMock.EXPECT().ListIncidents(ctx).Return(nil, nil)
	oracleMock.EXPECT().
		Chat(gomock.Any(), "Where is the nearest blue light?", ChatInstruction(testDirective, nil, userLocation), userLocation).
		Return(reply, nil)

	got, err := service.Chat(ctx, ChatRequest{Message: "Where is the nearest blue light?", Location: userLocation})

	require.NoError(t, err)
	assert.Equal(t, reply, got)
}

func TestChat_OracleFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	oracleMock := mocks.NewMockOracle(ctrl)
	service := NewChatService(storeMock, oracleMock, newTestPolicy(nil), "", newTestLogger())
	ctx := context.Background()

	storeMock.EXPECT().ListIncidents(ctx).Return(nil, errors.New("redis down"))
	oracleMock.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("unauthenticated"))

	_, err := service.Chat(ctx, ChatRequest{Message: "status?"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not chat with agent")
}
