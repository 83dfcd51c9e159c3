package v1

import "time"

// ReportIncidentRequest DTO для внешнего отчета об инциденте
// @Description DTO для внешнего отчета об инциденте
type ReportIncidentRequest struct {
	Type               string  `json:"type" validate:"required,min=2,max=100"`
	Description        string  `json:"description" validate:"required,min=3,max=1000"`
	Latitude           float64 `json:"latitude" validate:"required,latitude"`
	Longitude          float64 `json:"longitude" validate:"required,longitude"`
	LocationName       string  `json:"location_name,omitempty" validate:"max=255"`
	Severity           string  `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	IsVerifiedResource bool    `json:"is_verified_resource,omitempty"`
	URI                string  `json:"uri,omitempty" validate:"omitempty,url"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed resolved"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	Timestamp          time.Time `json:"timestamp"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	LocationName       string    `json:"location_name"`
	Severity           string    `json:"severity"`
	Analysis           string    `json:"analysis,omitempty"`
	IsVerifiedResource bool      `json:"is_verified_resource"`
	URI                string    `json:"uri,omitempty"`
	Status             string    `json:"status"`
}

// EmergencyLogResponse DTO записи журнала SOS
// @Description DTO записи журнала SOS
type EmergencyLogResponse struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Message         string    `json:"message"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Building        string    `json:"building,omitempty"`
	OperatorDetails string    `json:"operator_details,omitempty"`
}

// DraftSOSRequest DTO для черновика SOS
// @Description DTO для черновика SOS
type DraftSOSRequest struct {
	Latitude         float64 `json:"latitude" validate:"required,latitude"`
	Longitude        float64 `json:"longitude" validate:"required,longitude"`
	ExtraDetails     string  `json:"extra_details,omitempty" validate:"max=500"`
	SelectedBuilding string  `json:"selected_building,omitempty" validate:"max=255"`
	Hours            int     `json:"hours,omitempty" validate:"omitempty,min=1,max=168"`
}

// DraftSOSResponse DTO с текстом черновика
// @Description DTO с текстом черновика
type DraftSOSResponse struct {
	Message string `json:"message"`
	Length  int    `json:"length"`
}

// TransmitSOSRequest DTO для передачи принятого черновика
// @Description DTO для передачи принятого черновика
type TransmitSOSRequest struct {
	Message         string  `json:"message" validate:"required,max=500"`
	Latitude        float64 `json:"latitude" validate:"required,latitude"`
	Longitude       float64 `json:"longitude" validate:"required,longitude"`
	Building        string  `json:"building,omitempty" validate:"max=255"`
	OperatorDetails string  `json:"operator_details,omitempty" validate:"max=500"`
}

// SafetyRefreshRequest DTO для пересчета статуса. Нулевые координаты - центр кампуса.
// @Description DTO для пересчета статуса
type SafetyRefreshRequest struct {
	Latitude  float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Hours     int     `json:"hours,omitempty" validate:"omitempty,min=1,max=168"`
}

// SafetyStatusResponse DTO статуса безопасности
// @Description DTO статуса безопасности
type SafetyStatusResponse struct {
	Score           float64  `json:"score"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	ReasoningSteps  []string `json:"reasoning_steps"`
}

// SafetyRefreshFailure DTO ответа при недоступном анализе
// @Description DTO ответа при недоступном анализе
type SafetyRefreshFailure struct {
	Error    string                `json:"error"`
	Previous *SafetyStatusResponse `json:"previous"`
}

// DeployAgentRequest DTO для развертывания агента
// @Description DTO для развертывания агента
type DeployAgentRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=64"`
	Objective string `json:"objective" validate:"required,max=255"`
	Specialty string `json:"specialty" validate:"required,oneof=INCIDENTS LOCATIONS COMMUNICATIONS"`
}

// AgentResponse DTO агента
// @Description DTO агента
type AgentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Objective   string    `json:"objective"`
	Specialty   string    `json:"specialty"`
	Icon        string    `json:"icon"`
	Status      string    `json:"status"`
	LastInsight string    `json:"last_insight"`
	DeployTime  time.Time `json:"deploy_time"`
}

// ChatRequest DTO сообщения агенту
// @Description DTO сообщения агенту
type ChatRequest struct {
	Message   string  `json:"message" validate:"required,max=2000"`
	Latitude  float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type GroundingLinkResponse struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatResponse DTO ответа агента
// @Description DTO ответа агента
type ChatResponse struct {
	Text  string                  `json:"text"`
	Links []GroundingLinkResponse `json:"links"`
}

type LandmarkResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LandmarksResponse DTO справочника кампуса
// @Description DTO справочника кампуса
type LandmarksResponse struct {
	Center        LandmarkResponse   `json:"center"`
	Landmarks     []LandmarkResponse `json:"landmarks"`
	IncidentTypes []string           `json:"incident_types"`
}
