package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_safety/internal/models"
	"github.com/sirupsen/logrus"
)

const awaitingInsight = "Awaiting initial data sweep..."

var specialtyIcons = map[models.AgentSpecialty]string{
	models.SpecialtyIncidents:      "fa-shield-halved",
	models.SpecialtyLocations:      "fa-location-dot",
	models.SpecialtyCommunications: "fa-tower-broadcast",
}

// Dashboard хранит состав агентов и последний SafetyStatus
type Dashboard interface {
	Refresh(ctx context.Context, location models.Location, hours int) (*models.SafetyStatus, error)
	Status() *models.SafetyStatus
	Agents() []models.Agent
	DeployAgent(name, objective string, specialty models.AgentSpecialty) (models.Agent, error)
	TerminateAgent(id string) error
}

type dashboard struct {
	store    IncidentStore
	pipeline SafetyPipeline
	logger   *logrus.Logger
	now      func() time.Time
	random   func() float64

	mu     sync.RWMutex
	agents []models.Agent
	status *models.SafetyStatus
}

func NewDashboard(store IncidentStore, pipeline SafetyPipeline, logger *logrus.Logger) Dashboard {
	return newDashboard(store, pipeline, logger, time.Now, rand.Float64)
}

func newDashboard(store IncidentStore, pipeline SafetyPipeline, logger *logrus.Logger, now func() time.Time, random func() float64) *dashboard {
	return &dashboard{
		store:    store,
		pipeline: pipeline,
		logger:   logger,
		now:      now,
		random:   random,
		agents: []models.Agent{{
			ID:          "agent-1",
			Name:        "Central Watch",
			Objective:   "Oversee UH campus safety stability.",
			Specialty:   models.SpecialtyIncidents,
			Icon:        specialtyIcons[models.SpecialtyIncidents],
			Status:      models.AgentActive,
			LastInsight: "Scanning UH sectors. Baseline established.",
			DeployTime:  now().UTC(),
		}},
	}
}

// Refresh пересчитывает статус по окну последних hours часов.
// При ошибке предыдущий статус сохраняется и возвращается вместе с ошибкой.
func (d *dashboard) Refresh(ctx context.Context, location models.Location, hours int) (*models.SafetyStatus, error) {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Refresh",
		"hours":   hours,
	})

	incidents, err := d.store.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from store")
		return d.Status(), fmt.Errorf("service: could not refresh dashboard: %w", err)
	}

	windowed := WindowIncidents(incidents, d.now(), hours)
	status, err := d.pipeline.Summarize(ctx, windowed, location)
	if err != nil {
		log.WithError(err).Warn("Keeping previous safety status")
		return d.Status(), err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
	agentStatus := models.AgentStatusForScore(status.Score)
	for i := range d.agents {
		d.agents[i].Status = agentStatus
		if n := len(status.ReasoningSteps); n > 0 {
			d.agents[i].LastInsight = status.ReasoningSteps[int(d.random()*float64(n))%n]
		}
	}

	log.WithFields(logrus.Fields{
		"score":        status.Score,
		"agent_status": agentStatus,
		"window_size":  len(windowed),
	}).Info("Dashboard refreshed")
	return copyStatus(status), nil
}

func (d *dashboard) Status() *models.SafetyStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copyStatus(d.status)
}

func (d *dashboard) Agents() []models.Agent {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.agents)
}

// DeployAgent добавляет агента в состоянии scanning до следующего Refresh
func (d *dashboard) DeployAgent(name, objective string, specialty models.AgentSpecialty) (models.Agent, error) {
	if !specialty.Valid() {
		return models.Agent{}, fmt.Errorf("service: %w: %q", ErrInvalidSpecialty, specialty)
	}

	agent := models.Agent{
		ID:          "agent-" + uuid.NewString(),
		Name:        name,
		Objective:   objective,
		Specialty:   specialty,
		Icon:        specialtyIcons[specialty],
		Status:      models.AgentScanning,
		LastInsight: awaitingInsight,
		DeployTime:  d.now().UTC(),
	}

	d.mu.Lock()
	d.agents = append(d.agents, agent)
	d.mu.Unlock()

	d.logger.WithFields(logrus.Fields{
		"service":   "dashboard",
		"method":    "DeployAgent",
		"agent_id":  agent.ID,
		"specialty": specialty,
	}).Info("Agent deployed")
	return agent, nil
}

func (d *dashboard) TerminateAgent(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, agent := range d.agents {
		if agent.ID == id {
			d.agents = append(d.agents[:i:i], d.agents[i+1:]...)
			d.logger.WithFields(logrus.Fields{
				"service":  "dashboard",
				"method":   "TerminateAgent",
				"agent_id": id,
			}).Info("Agent terminated")
			return nil
		}
	}
	return fmt.Errorf("service: %w: %s", ErrAgentNotFound, id)
}

func copyStatus(status *models.SafetyStatus) *models.SafetyStatus {
	if status == nil {
		return nil
	}
	cp := *status
	cp.Recommendations = slices.Clone(status.Recommendations)
	cp.ReasoningSteps = slices.Clone(status.ReasoningSteps)
	return &cp
}
