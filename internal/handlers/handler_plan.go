package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// planHandler serves the financing plan of expense contracts.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{
		planService: ps,
	}
}

func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	contracts := rg.Group("/expense-contracts/:contractID")
	{
		contracts.GET("/financing-plan", h.getFinancingPlan)
	}
}

// getFinancingPlan godoc
// @Summary Get the financing plan of an expense contract
// @Description Returns every month from the contract start through three years past its end with the planned amounts, and the rollup of the current and two following months
// @Tags plans
// @Produce  json
// @Param   contractID path int true "Expense contract ID"
// @Success 200 {object} domain.FinancingPlan
// @Failure 400 {object} map[string]string "Invalid contract ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contract not found"
// @Failure 502 {object} map[string]string "Contracts API error"
// @Security BearerAuth
// @Router /expense-contracts/{contractID}/financing-plan [get]
func (h *planHandler) getFinancingPlan(c *gin.Context) {
	contractID, err := strconv.ParseInt(c.Param("contractID"), 10, 64)
	if err != nil || contractID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contract ID must be a positive integer"})
		return
	}

	user, ok := requireUser(c)
	if !ok {
		return
	}

	plan, err := h.planService.FinancingPlan(c.Request.Context(), user, contractID)
	if err != nil {
		respondError(c, err, "Failed to build financing plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}
