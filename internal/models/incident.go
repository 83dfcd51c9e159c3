package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Severity - уровень опасности инцидента
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Rank возвращает позицию в порядке ранжирования угроз: CRITICAL(0) < HIGH(1) < MEDIUM(2) < LOW(3).
// Неизвестные значения ранжируются после LOW.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

func (s Severity) Valid() bool {
	return s.Rank() < 4
}

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	StatusPending   IncidentStatus = "pending"
	StatusConfirmed IncidentStatus = "confirmed"
	StatusResolved  IncidentStatus = "resolved"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusResolved:
		return true
	}
	return false
}

// Location - пара (широта, долгота). В JSON хранится как [lat, lng].
type Location struct {
	Lat float64
	Lng float64
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{l.Lat, l.Lng})
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("location must be a [lat, lng] pair: %w", err)
	}
	l.Lat, l.Lng = pair[0], pair[1]
	return nil
}

// String форматирует координаты как "lat, lng"
func (l Location) String() string {
	return fmt.Sprintf("%s, %s", formatCoord(l.Lat), formatCoord(l.Lng))
}

type Incident struct {
	ID                 string         `json:"id"`
	Type               string         `json:"type"`
	Description        string         `json:"description"`
	Timestamp          time.Time      `json:"timestamp"`
	Location           Location       `json:"location"`
	LocationName       string         `json:"locationName"`
	Severity           Severity       `json:"severity"`
	Analysis           string         `json:"analysis,omitempty"`
	IsVerifiedResource bool           `json:"isVerifiedResource,omitempty"`
	URI                string         `json:"uri,omitempty"`
	Status             IncidentStatus `json:"status,omitempty"`
}

// EmergencyLog - неизменяемая запись об отправленном SOS
type EmergencyLog struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Message         string    `json:"message"`
	Location        Location  `json:"location"`
	Building        string    `json:"building,omitempty"`
	OperatorDetails string    `json:"operatorDetails,omitempty"`
}

const (
	SOSIncidentType     = "SOS TRANSMISSION"
	SOSIncidentPrefix   = "sos-"
	sosUnknownBuilding  = "Unknown Building"
	sosIncidentAnalysis = "User-initiated emergency broadcast. Tactical response required."
)

// SOSIncident строит CRITICAL инцидент, порождаемый записью SOS.
// Идентификатор детерминированно выводится из идентификатора записи.
func SOSIncident(log EmergencyLog) Incident {
	name := log.Building
	if name == "" {
		name = sosUnknownBuilding
	}
	return Incident{
		ID:           SOSIncidentPrefix + log.ID,
		Type:         SOSIncidentType,
		Description:  log.Message,
		Timestamp:    log.Timestamp,
		Location:     log.Location,
		LocationName: name,
		Severity:     SeverityCritical,
		Analysis:     sosIncidentAnalysis,
		Status:       StatusPending,
	}
}
