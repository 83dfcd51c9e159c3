package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/campus_safety/internal/config"
	"github.com/shenikar/campus_safety/internal/models"
	"github.com/shenikar/campus_safety/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService  service.IncidentService
	dashboard        service.Dashboard
	emergencyService service.EmergencyService
	chatService      service.ChatService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	dashboard service.Dashboard,
	emergencyService service.EmergencyService,
	chatService service.ChatService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		dashboard:        dashboard,
		emergencyService: emergencyService,
		chatService:      chatService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bind разбирает и валидирует тело запроса, при ошибке сам отвечает 400
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// errorStatus сопоставляет ошибки сервиса с HTTP-кодами
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidSeverity),
		errors.Is(err, service.ErrInvalidSpecialty),
		errors.Is(err, service.ErrEmptyDraft):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAgentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	code := errorStatus(err)
	if code == http.StatusInternalServerError {
		log.WithError(err).Error(msg)
		c.JSON(code, gin.H{"error": "internal server error"})
		return
	}
	log.WithError(err).Warn(msg)
	c.JSON(code, gin.H{"error": err.Error()})
}

func (h *Handler) hoursOrDefault(hours int) int {
	if hours > 0 {
		return hours
	}
	return h.cfg.FilterHours
}

// @Summary Report a new incident
// @Description Report an incident. Severity and analysis are assigned by the classifier when omitted.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body ReportIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.ReportIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to report incident in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(*model))
}

// @Summary Get a list of incidents
// @Description Get incidents, most recent first, optionally filtered by status and time window.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param status query string false "Incident status" Enums(pending, confirmed, resolved)
// @Param hours query int false "Only incidents newer than this many hours"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter := service.ListFilter{Status: models.IncidentStatus(c.Query("status"))}
	if raw := c.Query("hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours"})
			return
		}
		filter.Hours = hours
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err, "Failed to list incidents from service")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Update incident status
// @Description Move an incident to pending, confirmed or resolved. Unknown ids are ignored.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) setIncidentStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "setIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.incidentService.SetIncidentStatus(c.Request.Context(), id, models.IncidentStatus(input.Status)); err != nil {
		h.respondError(c, log, err, "Failed to update incident status in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete an incident
// @Description Remove an incident by its ID. Unknown ids are ignored.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "Failed to delete incident in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the SOS transmission log
// @Description Get transmitted SOS messages, most recent first.
// @Tags Emergency
// @Produce json
// @Success 200 {array} EmergencyLogResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency-logs [get]
func (h *Handler) listEmergencyLogs(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencyLogs")

	logs, err := h.incidentService.ListEmergencyLogs(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "Failed to list emergency logs from service")
		return
	}
	c.JSON(http.StatusOK, ModelsToEmergencyLogResponses(logs))
}

// @Summary Draft an SOS message
// @Description Compose an SOS draft of at most 160 characters. A local template is used when drafting fails.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param draft body DraftSOSRequest true "Draft request"
// @Success 200 {object} DraftSOSResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /sos/draft [post]
func (h *Handler) draftSOS(c *gin.Context) {
	var input DraftSOSRequest
	log := h.logger.WithField("method", "draftSOS")

	if !h.bind(c, log, &input) {
		return
	}

	draft := h.emergencyService.Draft(c.Request.Context(), DTOToDraftInput(input))
	c.JSON(http.StatusOK, DraftSOSResponse{Message: draft, Length: len([]rune(draft))})
}

// @Summary Transmit an SOS message
// @Description Record the accepted draft in the emergency log and as a CRITICAL incident.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param sos body TransmitSOSRequest true "Accepted SOS"
// @Success 201 {object} EmergencyLogResponse
// @Failure 400 {object} map[string]string "Invalid request body or empty message"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/transmit [post]
func (h *Handler) transmitSOS(c *gin.Context) {
	var input TransmitSOSRequest
	log := h.logger.WithField("method", "transmitSOS")

	if !h.bind(c, log, &input) {
		return
	}

	entry, err := h.emergencyService.Transmit(c.Request.Context(), DTOToTransmitRequest(input))
	if err != nil {
		h.respondError(c, log, err, "Failed to transmit SOS")
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyLogResponse(*entry))
}

// @Summary Refresh the safety status
// @Description Recompute the campus safety score from recent incidents. On failure the previous status is returned with 502.
// @Tags Safety
// @Accept json
// @Produce json
// @Param refresh body SafetyRefreshRequest false "Observer location and window"
// @Success 200 {object} SafetyStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 502 {object} SafetyRefreshFailure "Safety analysis unavailable"
// @Router /safety/refresh [post]
func (h *Handler) refreshSafety(c *gin.Context) {
	var input SafetyRefreshRequest
	log := h.logger.WithField("method", "refreshSafety")

	// Пустое тело допустимо
	if c.Request.ContentLength != 0 && !h.bind(c, log, &input) {
		return
	}

	location := locationOrCenter(input.Latitude, input.Longitude)
	status, err := h.dashboard.Refresh(c.Request.Context(), location, h.hoursOrDefault(input.Hours))
	if err != nil {
		log.WithError(err).Warn("Safety refresh failed")
		c.JSON(http.StatusBadGateway, SafetyRefreshFailure{
			Error:    "safety analysis unavailable",
			Previous: ModelToSafetyStatusResponse(status),
		})
		return
	}
	c.JSON(http.StatusOK, ModelToSafetyStatusResponse(status))
}

// @Summary Get the current safety status
// @Tags Safety
// @Produce json
// @Success 200 {object} SafetyStatusResponse
// @Failure 404 {object} map[string]string "No status computed yet"
// @Router /safety/status [get]
func (h *Handler) safetyStatus(c *gin.Context) {
	status := h.dashboard.Status()
	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "safety status not computed yet"})
		return
	}
	c.JSON(http.StatusOK, ModelToSafetyStatusResponse(status))
}

// @Summary List agents
// @Tags Agents
// @Produce json
// @Success 200 {array} AgentResponse
// @Router /agents [get]
func (h *Handler) listAgents(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToAgentResponses(h.dashboard.Agents()))
}

// @Summary Deploy an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param agent body DeployAgentRequest true "Agent"
// @Success 201 {object} AgentResponse
// @Failure 400 {object} map[string]string "Invalid request body or specialty"
// @Router /agents [post]
func (h *Handler) deployAgent(c *gin.Context) {
	var input DeployAgentRequest
	log := h.logger.WithField("method", "deployAgent")

	if !h.bind(c, log, &input) {
		return
	}

	agent, err := h.dashboard.DeployAgent(input.Name, input.Objective, models.AgentSpecialty(input.Specialty))
	if err != nil {
		h.respondError(c, log, err, "Failed to deploy agent")
		return
	}
	c.JSON(http.StatusCreated, ModelToAgentResponse(agent))
}

// @Summary Terminate an agent
// @Tags Agents
// @Param id path string true "Agent ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Agent not found"
// @Router /agents/{id} [delete]
func (h *Handler) terminateAgent(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "terminateAgent").WithField("id", id)

	if err := h.dashboard.TerminateAgent(id); err != nil {
		h.respondError(c, log, err, "Failed to terminate agent")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Chat with the safety agent
// @Description Ask a free-form question. The reply is grounded on recent incidents and nearby places.
// @Tags Agents
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 502 {object} map[string]string "Agent unavailable"
// @Router /agent/chat [post]
func (h *Handler) chat(c *gin.Context) {
	var input ChatRequest
	log := h.logger.WithField("method", "chat")

	if !h.bind(c, log, &input) {
		return
	}

	reply, err := h.chatService.Chat(c.Request.Context(), service.ChatRequest{
		Message:  input.Message,
		Location: locationOrCenter(input.Latitude, input.Longitude),
	})
	if err != nil {
		log.WithError(err).Warn("Chat failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "agent unavailable"})
		return
	}
	c.JSON(http.StatusOK, ModelToChatResponse(reply))
}

// @Summary Get campus landmarks
// @Description Fixed landmarks, campus center and suggested incident types.
// @Tags Campus
// @Produce json
// @Success 200 {object} LandmarksResponse
// @Router /landmarks [get]
func (h *Handler) landmarks(c *gin.Context) {
	c.JSON(http.StatusOK, landmarksResponse())
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
