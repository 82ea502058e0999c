package handler

import (
	"errors"
	"net/http"

	"sisauth/internal/model"
	"sisauth/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressHandler serves addresses, both nested under users and top level
type AddressHandler struct {
	service service.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(s service.AddressService) *AddressHandler {
	return &AddressHandler{service: s}
}

func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.service.List(c.Request.Context())
	if err != nil {
		internalError(c, err, "failed to list addresses")
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) ListForUser(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	addresses, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to list user addresses")
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) CreateForUser(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	var req model.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, http.StatusUnprocessableEntity, err)
		return
	}

	address, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err, "failed to create address")
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "address")
	if !ok {
		return
	}

	address, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to get address")
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "address")
	if !ok {
		return
	}

	var req model.UpdateAddressRequest
	if err := bindPartial(c, &req); err != nil {
		validationFailed(c, http.StatusUnprocessableEntity, err)
		return
	}

	address, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "failed to update address")
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "address")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "failed to delete address")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AddressHandler) writeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrAddressNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	internalError(c, err, msg)
}

// RegisterAddressRoutes registers address routes. The nested user routes
// share the /users/:id prefix with UserHandler.
func (h *AddressHandler) RegisterAddressRoutes(rg *gin.RouterGroup, authMW, staffMW gin.HandlerFunc) {
	rg.GET("/users/:id/addresses", authMW, staffMW, h.ListForUser)
	rg.POST("/users/:id/addresses", authMW, staffMW, h.CreateForUser)

	addresses := rg.Group("/addresses", authMW, staffMW)
	{
		addresses.GET("", h.List)
		addresses.GET("/:id", h.Get)
		addresses.PUT("/:id", h.Update)
		addresses.DELETE("/:id", h.Delete)
	}
}
