package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tableHandler serves the live contract tables.
type tableHandler struct {
	tableService portssvc.TableSvcFacade
}

func newTableHandler(ts portssvc.TableSvcFacade) *tableHandler {
	return &tableHandler{
		tableService: ts,
	}
}

func registerTableRoutes(rg *gin.RouterGroup, tableService portssvc.TableSvcFacade) {
	h := newTableHandler(tableService)

	tables := rg.Group("/tables")
	{
		// balance is served by the same route
		tables.GET("/:kind", h.getTable)
	}
}

// getTable godoc
// @Summary Get a contracts table
// @Description Returns the income, planning or actual table with per-row capabilities and formatted totals, or the balance view for kind=balance
// @Tags tables
// @Produce  json
// @Param   kind path string true "Table kind" Enums(income, planning, actual, balance)
// @Param   contract query string false "Contract number contains"
// @Param   name query string false "Name contains (expense tables)"
// @Param   client query string false "Counterparty contains"
// @Param   type query string false "Programme type (expense tables)"
// @Success 200 {object} domain.TableView
// @Success 200 {object} domain.BalanceView "for kind=balance"
// @Failure 400 {object} map[string]string "Invalid kind or filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Contracts API error"
// @Security BearerAuth
// @Router /tables/{kind} [get]
func (h *tableHandler) getTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind, err := domain.ParseExportKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := requireUser(c)
	if !ok {
		return
	}

	if kind == domain.ExportBalance {
		view, err := h.tableService.Balance(c.Request.Context(), user)
		if err != nil {
			respondError(c, err, "Failed to build balance")
			return
		}
		c.JSON(http.StatusOK, view)
		return
	}

	var filter domain.TableFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		logger.Warn("Failed to bind table filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	view, err := h.tableService.Table(c.Request.Context(), user, kind, filter)
	if err != nil {
		respondError(c, err, "Failed to build table")
		return
	}
	c.JSON(http.StatusOK, view)
}
