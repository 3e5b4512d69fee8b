package handlers

import (
	"errors"
	"net/http"

	request "paygo_market/internal/adapter/http/dto/request"
	response "paygo_market/internal/adapter/http/dto/response"
	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase"
	"paygo_market/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
)

// ServiceHandler handles HTTP requests for the vendor service catalog.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	rate, err := payload.ResolveRate()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.Create(c.Request.Context(), entities.Service{
		VendorID: payload.VendorID,
		Name:     payload.Name,
		Category: payload.Category,
		Rate:     rate,
		Unit:     entities.BillingUnit(payload.Unit),
		Token:    payload.Token,
	})
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(svc))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVendorID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceName),
		errors.Is(err, usecase.ErrInvalidServiceToken),
		errors.Is(err, usecase.ErrInvalidRate),
		errors.Is(err, usecase.ErrInvalidUnit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCreateNotAllowed):
		return pkg.NewDomainErrorSimple("CREATE_NOT_ALLOWED", "Vendor is not allowed to register services", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
