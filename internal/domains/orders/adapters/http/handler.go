package http

import (
	"errors"
	nethttp "net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amrutdhara/orders-api/internal/domains/orders/adapters/http/mapper"
	"github.com/amrutdhara/orders-api/internal/domains/orders/application"
	"github.com/amrutdhara/orders-api/internal/domains/orders/ports"
	sharederrors "github.com/amrutdhara/orders-api/internal/shared/errors"
)

// OwnerIDKey is the gin context key under which the auth middleware stores
// the authenticated user's id.
const OwnerIDKey = "auth.userID"

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Handler serves the order endpoints.
type Handler struct {
	service ports.Service
	// bottleTypes is the externally configured container-size catalog.
	bottleTypes []string
	responder   *sharederrors.Responder
}

func NewHandler(service ports.Service, bottleTypes []string) *Handler {
	return &Handler{
		service:     service,
		bottleTypes: bottleTypes,
		responder:   sharederrors.DefaultResponder,
	}
}

// Register mounts the order routes on an authenticated router group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.POST("/orders", h.createOrder)
	group.GET("/orders", h.listOrders)
	group.GET("/orders/:id", h.getOrder)
}

func (h *Handler) createOrder(c *gin.Context) {
	ownerID := c.GetString(OwnerIDKey)
	var req mapper.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err.Error())
		return
	}
	if fieldErrors := h.validateRequest(req); len(fieldErrors) > 0 {
		h.responder.ValidationFailed(c, fieldErrors)
		return
	}
	order, err := h.service.CreateOrder(c.Request.Context(), ownerID, mapper.ToDomainOrder(req))
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			h.responder.BadRequest(c, err.Error())
			return
		}
		h.responder.InternalError(c, err.Error())
		return
	}
	c.JSON(nethttp.StatusCreated, mapper.FromDomainOrder(order))
}

func (h *Handler) listOrders(c *gin.Context) {
	ownerID := c.GetString(OwnerIDKey)
	orders, err := h.service.ListOrders(c.Request.Context(), ownerID)
	if err != nil {
		h.responder.InternalError(c, err.Error())
		return
	}
	c.JSON(nethttp.StatusOK, mapper.FromDomainOrders(orders))
}

func (h *Handler) getOrder(c *gin.Context) {
	ownerID := c.GetString(OwnerIDKey)
	id := c.Param("id")
	order, err := h.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.responder.NotFound(c, "order", id)
			return
		}
		h.responder.InternalError(c, err.Error())
		return
	}
	// Another owner's order is indistinguishable from a missing one.
	if order.OwnerID != ownerID {
		h.responder.NotFound(c, "order", id)
		return
	}
	c.JSON(nethttp.StatusOK, mapper.FromDomainOrder(order))
}

// validateRequest applies the transport-boundary rules the domain leaves to
// the UI: catalog membership, mobile number shape, calendar date format.
func (h *Handler) validateRequest(req mapper.OrderRequest) map[string]string {
	fieldErrors := map[string]string{}
	if !mobilePattern.MatchString(req.MobileNumber) {
		fieldErrors["mobile_number"] = "must be a 10-digit number"
	}
	if req.Quantity <= 0 {
		fieldErrors["quantity"] = "must be greater than zero"
	}
	if _, err := time.Parse("2006-01-02", req.DeliveryDate); err != nil {
		fieldErrors["delivery_date"] = "must be a calendar date in YYYY-MM-DD format"
	}
	if len(h.bottleTypes) > 0 && !contains(h.bottleTypes, req.BottleType) {
		fieldErrors["bottle_type"] = "must be one of the offered container sizes"
	}
	return fieldErrors
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
