package v1

import (
	"errors"
	"net/http"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/config"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const defaultPageSize = 20

type Handler struct {
	datasetService service.DatasetService
	reportService  service.ReportService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(
	datasetService service.DatasetService,
	reportService service.ReportService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		datasetService: datasetService,
		reportService:  reportService,
		logger:         logger,
		validate:       newValidator(),
		cfg:            cfg,
	}
}

// newValidator регистрирует проверки словарей значений
func newValidator() *validator.Validate {
	v := validator.New()
	vocab := map[string]func(string) bool{
		"carrier":   models.IsValidCarrier,
		"risk_type": models.IsValidRiskType,
		"modal":     models.IsValidModal,
		"region":    models.IsValidRegion,
	}
	for tag, valid := range vocab {
		valid := valid
		// Ошибка возможна только при пустом теге
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}
	return v
}

// bindFilter читает и проверяет фильтр из строки запроса
func (h *Handler) bindFilter(c *gin.Context, q *FilterQuery, target any) (report.Filter, bool) {
	log := h.logger.WithField("path", c.FullPath())
	if err := c.ShouldBindQuery(target); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return report.Filter{}, false
	}
	q.normalize()

	if err := h.validate.Struct(target); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return report.Filter{}, false
	}

	filter, err := QueryToFilter(*q)
	if err != nil {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return report.Filter{}, false
	}
	return filter, true
}

// respondServiceError переводит ошибки сервисов в HTTP-статусы
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrDatasetNotFound):
		log.WithError(err).Warn("Dataset not generated yet")
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not generated yet"})
	case errors.Is(err, service.ErrGenerationInProgress):
		log.WithError(err).Warn("Generation already running")
		c.JSON(http.StatusConflict, gin.H{"error": "generation already in progress"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// getSummary отдаёт показатели панели для фильтра
// @Summary Get dashboard summary
// @Description Get aggregated dashboard metrics for the filtered incidents. Requires API key.
// @Tags Report
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Start date (YYYY-MM-DD), applied together with to"
// @Param to query string false "End date (YYYY-MM-DD), applied together with from"
// @Param carriers query []string false "Carriers, repeated or comma-separated" collectionFormat(multi)
// @Param risk_types query []string false "Risk types, repeated or comma-separated" collectionFormat(multi)
// @Param modals query []string false "Transport modals, repeated or comma-separated" collectionFormat(multi)
// @Param regions query []string false "Regions, repeated or comma-separated" collectionFormat(multi)
// @Success 200 {object} report.Summary
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dataset not generated yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /report/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getSummary")

	var q FilterQuery
	filter, ok := h.bindFilter(c, &q, &q)
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listIncidents отдаёт страницу отфильтрованных инцидентов
// @Summary Get a list of incidents
// @Description Get a paginated list of filtered incidents ordered by date. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Start date (YYYY-MM-DD), applied together with to"
// @Param to query string false "End date (YYYY-MM-DD), applied together with from"
// @Param carriers query []string false "Carriers, repeated or comma-separated" collectionFormat(multi)
// @Param risk_types query []string false "Risk types, repeated or comma-separated" collectionFormat(multi)
// @Param modals query []string false "Transport modals, repeated or comma-separated" collectionFormat(multi)
// @Param regions query []string false "Regions, repeated or comma-separated" collectionFormat(multi)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} ListIncidentsResponse
// @Failure 400 {object} map[string]string "Invalid filter or paging"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dataset not generated yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	var q ListIncidentsQuery
	filter, ok := h.bindFilter(c, &q.FilterQuery, &q)
	if !ok {
		return
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}

	incidents, total, err := h.reportService.ListIncidents(c.Request.Context(), filter, q.Page, q.PageSize)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ListIncidentsResponse{
		Items:    ModelsToIncidentResponses(incidents),
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
	})
}

// generateDataset запускает генерацию нового набора
// @Summary Generate a new dataset
// @Description Run the generator and replace the current dataset. The body is optional. Requires API key.
// @Tags Datasets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body GenerateRequest false "Generation options"
// @Success 201 {object} GenerationRunResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Generation already in progress"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /datasets/generate [post]
func (h *Handler) generateDataset(c *gin.Context) {
	log := h.logger.WithField("method", "generateDataset")

	var input GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	run, err := h.datasetService.Generate(c.Request.Context(), service.GenerateOptions{Seed: input.Seed})
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToRunResponse(run))
}

// getLatestRun отдаёт сведения о текущем наборе
// @Summary Get the latest generation run
// @Description Get metadata of the dataset currently served. Requires API key.
// @Tags Datasets
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} GenerationRunResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dataset not generated yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /datasets/latest [get]
func (h *Handler) getLatestRun(c *gin.Context) {
	log := h.logger.WithField("method", "getLatestRun")

	run, err := h.datasetService.LatestRun(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRunResponse(run))
}

// @Summary Health check
// @Description Check the service is up.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
