package models

import "time"

// SafetyStatus - результат анализа безопасности от оракула
type SafetyStatus struct {
	Score           float64  `json:"score"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	ReasoningSteps  []string `json:"reasoningSteps"`
}

// AlertThreshold - оценка ниже порога переводит агентов в состояние alert
const AlertThreshold = 60

type AgentStatus string

const (
	AgentActive   AgentStatus = "active"
	AgentScanning AgentStatus = "scanning"
	AgentAlert    AgentStatus = "alert"
)

// AgentStatusForScore: alert при score < 60, иначе active
func AgentStatusForScore(score float64) AgentStatus {
	if score < AlertThreshold {
		return AgentAlert
	}
	return AgentActive
}

type AgentSpecialty string

const (
	SpecialtyIncidents      AgentSpecialty = "INCIDENTS"
	SpecialtyLocations      AgentSpecialty = "LOCATIONS"
	SpecialtyCommunications AgentSpecialty = "COMMUNICATIONS"
)

func (s AgentSpecialty) Valid() bool {
	switch s {
	case SpecialtyIncidents, SpecialtyLocations, SpecialtyCommunications:
		return true
	}
	return false
}

type Agent struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Objective   string         `json:"objective"`
	Specialty   AgentSpecialty `json:"specialty"`
	Icon        string         `json:"icon"`
	Status      AgentStatus    `json:"status"`
	LastInsight string         `json:"lastInsight"`
	DeployTime  time.Time      `json:"deployTime"`
}

// IncidentAssessment - классификация описания инцидента оракулом
type IncidentAssessment struct {
	Severity Severity `json:"severity"`
	Analysis string   `json:"analysis"`
}

type GroundingLink struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type ChatReply struct {
	Text  string          `json:"text"`
	Links []GroundingLink `json:"links"`
}
