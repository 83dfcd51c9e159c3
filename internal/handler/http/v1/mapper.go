package v1

import (
	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/service"
)

// DTOToIncidentModel преобразует DTO отчета в доменную модель
func DTOToIncidentModel(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		Type:               dto.Type,
		Description:        dto.Description,
		Location:           models.Location{Lat: dto.Latitude, Lng: dto.Longitude},
		LocationName:       dto.LocationName,
		Severity:           models.Severity(dto.Severity),
		IsVerifiedResource: dto.IsVerifiedResource,
		URI:                dto.URI,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:                 model.ID,
		Type:               model.Type,
		Description:        model.Description,
		Timestamp:          model.Timestamp,
		Latitude:           model.Location.Lat,
		Longitude:          model.Location.Lng,
		LocationName:       model.LocationName,
		Severity:           string(model.Severity),
		Analysis:           model.Analysis,
		IsVerifiedResource: model.IsVerifiedResource,
		URI:                model.URI,
		Status:             string(model.Status),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

func ModelToEmergencyLogResponse(log models.EmergencyLog) EmergencyLogResponse {
	return EmergencyLogResponse{
		ID:              log.ID,
		Timestamp:       log.Timestamp,
		Message:         log.Message,
		Latitude:        log.Location.Lat,
		Longitude:       log.Location.Lng,
		Building:        log.Building,
		OperatorDetails: log.OperatorDetails,
	}
}

func ModelsToEmergencyLogResponses(logs []models.EmergencyLog) []EmergencyLogResponse {
	responses := make([]EmergencyLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = ModelToEmergencyLogResponse(log)
	}
	return responses
}

func DTOToDraftInput(dto DraftSOSRequest) service.DraftInput {
	return service.DraftInput{
		Location:         models.Location{Lat: dto.Latitude, Lng: dto.Longitude},
		ExtraDetails:     dto.ExtraDetails,
		SelectedBuilding: dto.SelectedBuilding,
		Hours:            dto.Hours,
	}
}

func DTOToTransmitRequest(dto TransmitSOSRequest) service.TransmitRequest {
	return service.TransmitRequest{
		Message:         dto.Message,
		Location:        models.Location{Lat: dto.Latitude, Lng: dto.Longitude},
		Building:        dto.Building,
		OperatorDetails: dto.OperatorDetails,
	}
}

// ModelToSafetyStatusResponse возвращает nil для отсутствующего статуса
func ModelToSafetyStatusResponse(status *models.SafetyStatus) *SafetyStatusResponse {
	if status == nil {
		return nil
	}
	return &SafetyStatusResponse{
		Score:           status.Score,
		Summary:         status.Summary,
		Recommendations: status.Recommendations,
		ReasoningSteps:  status.ReasoningSteps,
	}
}

func ModelToAgentResponse(agent models.Agent) AgentResponse {
	return AgentResponse{
		ID:          agent.ID,
		Name:        agent.Name,
		Objective:   agent.Objective,
		Specialty:   string(agent.Specialty),
		Icon:        agent.Icon,
		Status:      string(agent.Status),
		LastInsight: agent.LastInsight,
		DeployTime:  agent.DeployTime,
	}
}

func ModelsToAgentResponses(agents []models.Agent) []AgentResponse {
	responses := make([]AgentResponse, len(agents))
	for i, agent := range agents {
		responses[i] = ModelToAgentResponse(agent)
	}
	return responses
}

func ModelToChatResponse(reply *models.ChatReply) ChatResponse {
	links := make([]GroundingLinkResponse, len(reply.Links))
	for i, link := range reply.Links {
		links[i] = GroundingLinkResponse{Title: link.Title, URI: link.URI}
	}
	return ChatResponse{Text: reply.Text, Links: links}
}

func landmarksResponse() LandmarksResponse {
	landmarks := make([]LandmarkResponse, len(models.CampusLocations))
	for i, landmark := range models.CampusLocations {
		landmarks[i] = LandmarkResponse{Name: landmark.Name, Latitude: landmark.Location.Lat, Longitude: landmark.Location.Lng}
	}
	return LandmarksResponse{
		Center: LandmarkResponse{
			Name:      "University of Houston",
			Latitude:  models.CampusCenter.Lat,
			Longitude: models.CampusCenter.Lng,
		},
		Landmarks:     landmarks,
		IncidentTypes: models.IncidentTypes,
	}
}

// locationOrCenter подставляет центр кампуса вместо нулевых координат
func locationOrCenter(lat, lng float64) models.Location {
	if lat == 0 && lng == 0 {
		return models.CampusCenter
	}
	return models.Location{Lat: lat, Lng: lng}
}
