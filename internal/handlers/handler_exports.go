package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/dto"
	"github.com/SscSPs/contracts_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RowCountHeader carries the number of data rows of a downloaded export.
const RowCountHeader = "X-Export-Row-Count"

// exportHandler serves report downloads, Google Sheets publishing and the export history.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{
		exportService: es,
	}
}

// registerExportRoutes registers the export routes. Report generation is rate limited
// when l is not nil.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade, l *limiter.Limiter) {
	h := newExportHandler(exportService)

	exports := rg.Group("/exports")
	exports.GET("/history", h.listExportHistory)

	generate := exports.Group("")
	if l != nil {
		generate.Use(middleware.RateLimit(l))
	}
	{
		generate.GET("/:kind", h.exportReport)
		generate.POST("/:kind/google-sheets", h.publishReport)
	}
}

// exportReport godoc
// @Summary Download a report
// @Description Builds the report of the given kind with the table filters applied and returns it as an xlsx or csv attachment
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  text/csv
// @Param   kind path string true "Report kind" Enums(income, planning, actual, balance)
// @Param   format query string false "File format" Enums(xlsx, csv) default(xlsx)
// @Param   contract query string false "Contract number contains"
// @Param   name query string false "Name contains (expense reports)"
// @Param   client query string false "Counterparty contains"
// @Param   type query string false "Programme type (expense reports)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid kind, format or filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Export not allowed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Contracts API error"
// @Security BearerAuth
// @Router /exports/{kind} [get]
func (h *exportHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind, err := domain.ParseExportKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind export query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	format, err := domain.ParseExportFormat(query.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.exportService.Export(c.Request.Context(), user, domain.ExportRequest{
		Kind:   kind,
		Format: format,
		Filter: query.TableFilter,
	})
	if err != nil {
		respondError(c, err, "Failed to export report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	c.Header(RowCountHeader, strconv.Itoa(result.RowCount))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// publishReport godoc
// @Summary Publish a report to Google Sheets
// @Description Builds the report of the given kind and writes it to a new Google spreadsheet
// @Tags exports
// @Produce  json
// @Param   kind path string true "Report kind" Enums(income, planning, actual, balance)
// @Param   contract query string false "Contract number contains"
// @Param   name query string false "Name contains (expense reports)"
// @Param   client query string false "Counterparty contains"
// @Param   type query string false "Programme type (expense reports)"
// @Success 201 {object} dto.PublishResponse
// @Failure 400 {object} map[string]string "Invalid kind or filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Export not allowed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 501 {object} map[string]string "Publishing not configured"
// @Failure 502 {object} map[string]string "Upstream error"
// @Security BearerAuth
// @Router /exports/{kind}/google-sheets [post]
func (h *exportHandler) publishReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind, err := domain.ParseExportKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var filter domain.TableFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		logger.Warn("Failed to bind publish filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	user, ok := requireUser(c)
	if !ok {
		return
	}

	published, err := h.exportService.Publish(c.Request.Context(), user, kind, filter)
	if err != nil {
		respondError(c, err, "Failed to publish report")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPublishResponse(published))
}

// listExportHistory godoc
// @Summary List past exports
// @Description Lists the caller's exports, newest first, with token-based pagination
// @Tags exports
// @Produce  json
// @Param   limit query int false "Number of items to return (default 20, max 100)"
// @Param   nextToken query string false "Token for fetching the next page"
// @Success 200 {object} dto.ListExportHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 501 {object} map[string]string "Export history not configured"
// @Failure 500 {object} map[string]string "Failed to list exports"
// @Security BearerAuth
// @Router /exports/history [get]
func (h *exportHandler) listExportHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExportHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListExportHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	user, ok := requireUser(c)
	if !ok {
		return
	}

	page, err := h.exportService.History(c.Request.Context(), user, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list exports")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExportHistoryResponse(page))
}
