package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_directory/internal/config"
	"github.com/shenikar/incident_directory/internal/service"
	"github.com/shenikar/incident_directory/internal/translate"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService  service.IncidentService
	translateService *translate.Service
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(incidentService service.IncidentService, translateService *translate.Service, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  incidentService,
		translateService: translateService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary List all incidents
// @Description Get all incidents, most recent first, with nested persons, places and photos. Anonymous read access.
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {object} IncidentsEnvelope
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentsEnvelope(incidents))
}

// @Summary Create a new incident
// @Description Create a new incident record. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model, input.PersonIDs); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Create a new person
// @Description Create a person record. Name fields are dropped unless name_known is set. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param person body CreatePersonRequest true "Person creation request"
// @Success 201 {object} PersonResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/persons [post]
func (h *Handler) createPerson(c *gin.Context) {
	var input CreatePersonRequest
	log := h.logger.WithField("method", "createPerson")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToPersonModel(input)
	if err := h.incidentService.CreatePerson(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create person in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToPersonResponse(model))
}

// @Summary Create a new organization
// @Description Create an organization record. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param organization body CreateOrganizationRequest true "Organization creation request"
// @Success 201 {object} OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/organizations [post]
func (h *Handler) createOrganization(c *gin.Context) {
	var input CreateOrganizationRequest
	log := h.logger.WithField("method", "createOrganization")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToOrganizationModel(input)
	if err := h.incidentService.CreateOrganization(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create organization in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToOrganizationResponse(model))
}

// @Summary Create a new place
// @Description Create a place record. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param place body CreatePlaceRequest true "Place creation request"
// @Success 201 {object} PlaceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/places [post]
func (h *Handler) createPlace(c *gin.Context) {
	var input CreatePlaceRequest
	log := h.logger.WithField("method", "createPlace")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToPlaceModel(input)
	if err := h.incidentService.CreatePlace(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create place in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToPlaceResponse(model))
}

// @Summary Create a new address
// @Description Create an address record. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param address body CreateAddressRequest true "Address creation request"
// @Success 201 {object} AddressResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/addresses [post]
func (h *Handler) createAddress(c *gin.Context) {
	var input CreateAddressRequest
	log := h.logger.WithField("method", "createAddress")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAddressModel(input)
	if err := h.incidentService.CreateAddress(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create address in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAddressResponse(model))
}

// @Summary Translate a field
// @Description Translate field text to all configured languages, or to one language when target is set. A failure of any language aborts the whole batch. Requires API key.
// @Tags Translate
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body TranslateRequest true "Translate request"
// @Success 200 {object} TranslationsResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Translation failed"
// @Router /admin/translate [post]
func (h *Handler) translateField(c *gin.Context) {
	var input TranslateRequest
	log := h.logger.WithField("method", "translateField")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source := input.Source
	if source == "" {
		source = h.cfg.DefaultLanguage
	}

	if input.Target != "" {
		translated, err := h.translateService.TranslateFieldTo(c.Request.Context(), input.Field, input.Text, source, input.Target)
		if err != nil {
			log.WithError(err).Error("Failed to translate field")
			c.JSON(http.StatusBadGateway, gin.H{"error": "translation failed"})
			return
		}
		c.JSON(http.StatusOK, TranslationsResponse{
			Field:        input.Field,
			Translations: map[string]string{input.Target: translated},
		})
		return
	}

	translations, err := h.translateService.TranslateField(c.Request.Context(), input.Field, input.Text, source)
	if err != nil {
		log.WithError(err).Error("Failed to translate field to all languages")
		c.JSON(http.StatusBadGateway, gin.H{"error": "translation failed"})
		return
	}
	c.JSON(http.StatusOK, TranslationsResponse{Field: input.Field, Translations: translations})
}

// @Summary Get stored translations for a field
// @Description Get stored translations of a field. With lang and current query params, returns the value to prefill: the stored translation only when current is empty. Requires API key.
// @Tags Translate
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param field path string true "Field name"
// @Param lang query string false "Language code"
// @Param current query string false "Current field value"
// @Success 200 {object} TranslationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/translations/{field} [get]
func (h *Handler) getTranslations(c *gin.Context) {
	field := c.Param("field")
	log := h.logger.WithField("method", "getTranslations").WithField("field", field)

	if lang := c.Query("lang"); lang != "" {
		value, err := h.translateService.ApplyStored(c.Request.Context(), field, lang, c.Query("current"))
		if err != nil {
			log.WithError(err).Error("Failed to apply stored translation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, StoredValueResponse{Field: field, Lang: lang, Value: value})
		return
	}

	translations, err := h.translateService.Stored(c.Request.Context(), field)
	if err != nil {
		log.WithError(err).Error("Failed to get stored translations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, TranslationsResponse{Field: field, Translations: translations})
}

// @Summary Clear stored translations for a field
// @Description Delete all stored translations of a field. Requires API key.
// @Tags Translate
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param field path string true "Field name"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/translations/{field} [delete]
func (h *Handler) clearTranslations(c *gin.Context) {
	field := c.Param("field")
	log := h.logger.WithField("method", "clearTranslations").WithField("field", field)

	if err := h.translateService.Clear(c.Request.Context(), field); err != nil {
		log.WithError(err).Error("Failed to clear stored translations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
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
