package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/retry"
	"github.com/sirupsen/logrus"
)

const (
	defaultChatDirective = "You are a campus safety reasoning core."
	chatContextSize      = 5
)

type ChatRequest struct {
	Message  string
	Location models.Location
}

type ChatService interface {
	Chat(ctx context.Context, req ChatRequest) (*models.ChatReply, error)
}

type chatService struct {
	store     IncidentStore
	oracle    Oracle
	policy    retry.Policy
	directive string
	logger    *logrus.Logger
}

func NewChatService(store IncidentStore, oracle Oracle, policy retry.Policy, directive string, logger *logrus.Logger) ChatService {
	return &chatService{
		store:     store,
		oracle:    oracle,
		policy:    policy.WithOperation("chat"),
		directive: directive,
		logger:    logger,
	}
}

func (s *chatService) Chat(ctx context.Context, req ChatRequest) (*models.ChatReply, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "chat",
		"method":  "Chat",
	})

	incidents, err := s.store.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Warn("Chatting without incident context")
		incidents = nil
	}

	instruction := ChatInstruction(s.directive, incidents, req.Location)
	reply, err := retry.Do(ctx, s.policy, func(ctx context.Context) (*models.ChatReply, error) {
		return s.oracle.Chat(ctx, req.Message, instruction, req.Location)
	})
	if err != nil {
		log.WithError(err).Error("Agent chat failed")
		return nil, fmt.Errorf("service: could not chat with agent: %w", err)
	}

	log.WithField("links", len(reply.Links)).Debug("Agent replied")
	return reply, nil
}

// ChatInstruction - системная инструкция с пятью последними инцидентами
func ChatInstruction(directive string, incidents []models.Incident, location models.Location) string {
	if directive == "" {
		directive = defaultChatDirective
	}

	tactical := "No recent incidents."
	if len(incidents) > 0 {
		recent := incidents[:min(len(incidents), chatContextSize)]
		lines := make([]string, 0, len(recent))
		for _, incident := range recent {
			lines = append(lines, contextLine(incident, "@"))
		}
		tactical = strings.Join(lines, "\n")
	}

	var b strings.Builder
	b.WriteString(directive)
	b.WriteString("\n\nTACTICAL DATABASE CONTEXT:\n")
	b.WriteString(tactical)
	fmt.Fprintf(&b, "\n\nCurrent User Location: %s\n\n", location)
	b.WriteString("INSTRUCTIONS:\n")
	b.WriteString("- Use the TACTICAL DATABASE CONTEXT to answer queries about safety.\n")
	b.WriteString("- If a user asks about risk, reference recent incidents.\n")
	b.WriteString("- Use Google Maps for spatial grounding.")
	return b.String()
}
