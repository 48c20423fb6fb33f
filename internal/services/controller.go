package services

import (
	"errors"
	"net/http"

	"utsav/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrServiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotServiceOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidServiceData):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func vendorIDFromContext(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false
	}

	vendorID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return uuid.Nil, false
	}

	return vendorID, true
}

func (c *Controller) CreateService(ctx *gin.Context) {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	svc, err := c.service.CreateService(ctx.Request.Context(), vendorID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", serviceErrorStatus(err), "Failed to create service", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Service created successfully", svc, nil)
}

func (c *Controller) GetService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	svc, err := c.service.GetService(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", serviceErrorStatus(err), "Failed to get service", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Service retrieved successfully", svc, nil)
}

func (c *Controller) ListServices(ctx *gin.Context) {
	var filters ServiceFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListServices(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list services", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Services retrieved successfully", result, nil)
}

func (c *Controller) GetMyServices(ctx *gin.Context) {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return
	}

	svcs, err := c.service.GetVendorServices(ctx.Request.Context(), vendorID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get services", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Services retrieved successfully", svcs, nil)
}

func (c *Controller) UpdateService(ctx *gin.Context) {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	var req UpdateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	svc, err := c.service.UpdateService(ctx.Request.Context(), vendorID, id, req)
	if err != nil {
		response.RespondJSON(ctx, "error", serviceErrorStatus(err), "Failed to update service", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Service updated successfully", svc, nil)
}

func (c *Controller) DeleteService(ctx *gin.Context) {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteService(ctx.Request.Context(), vendorID, id); err != nil {
		response.RespondJSON(ctx, "error", serviceErrorStatus(err), "Failed to delete service", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Service deleted successfully", nil, nil)
}

func (c *Controller) VerifyService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	var req VerifyServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.service.VerifyService(ctx.Request.Context(), id, req.Verified); err != nil {
		response.RespondJSON(ctx, "error", serviceErrorStatus(err), "Failed to update verification", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Service verification updated", nil, nil)
}
