package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/dto"
	"github.com/SscSPs/contracts_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests about the caller and their capabilities.
type userHandler struct {
	permissionService portssvc.PermissionSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(ps portssvc.PermissionSvcFacade) *userHandler {
	return &userHandler{
		permissionService: ps,
	}
}

// registerUserRoutes registers the routes describing the caller.
func registerUserRoutes(rg *gin.RouterGroup, permissionService portssvc.PermissionSvcFacade) {
	h := newUserHandler(permissionService)

	rg.GET("/me", h.getMe)
	rg.POST("/permissions/contracts", h.resolveContractPermissions)
}

// getMe godoc
// @Summary Get the current user
// @Description Returns the authenticated user with the capabilities that do not depend on a contract
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	method := middleware.GetAuthMethodFromContext(c)
	caps := h.permissionService.ResolvePermissions(user, nil)
	c.JSON(http.StatusOK, dto.ToUserResponse(user, caps, method))
}

// resolveContractPermissions godoc
// @Summary Resolve capabilities for contracts
// @Description Returns, in request order, what the current user may do with each listed contract
// @Tags users
// @Accept  json
// @Produce  json
// @Param   request body dto.ContractPermissionsRequest true "Contracts to resolve"
// @Success 200 {object} dto.ContractPermissionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /permissions/contracts [post]
func (h *userHandler) resolveContractPermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ContractPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for contract permissions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, ok := requireUser(c)
	if !ok {
		return
	}

	sets := h.permissionService.ResolveMany(user, req.Contracts)
	logger.Debug("Contract permissions resolved", slog.Int("count", len(sets)))
	c.JSON(http.StatusOK, dto.ToContractPermissionsResponse(req.Contracts, sets))
}
