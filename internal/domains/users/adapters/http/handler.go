package http

import (
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amrutdhara/orders-api/internal/domains/users/adapters/http/mapper"
	"github.com/amrutdhara/orders-api/internal/domains/users/ports"
	sharederrors "github.com/amrutdhara/orders-api/internal/shared/errors"
)

// ContextUserIDKey is the gin context key under which RequireAuth stores the
// authenticated user's id.
const ContextUserIDKey = "auth.userID"

// Handler serves the auth endpoints.
type Handler struct {
	service   ports.Service
	responder *sharederrors.Responder
}

func NewHandler(service ports.Service) *Handler {
	return &Handler{service: service, responder: sharederrors.DefaultResponder}
}

// Register mounts the auth routes.
func (h *Handler) Register(router gin.IRouter) {
	router.POST("/auth/login", h.login)
	router.POST("/auth/logout", h.logout)
	router.GET("/auth/me", h.me)
}

func (h *Handler) login(c *gin.Context) {
	var req mapper.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err.Error())
		return
	}
	session, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			h.responder.Respond(c, sharederrors.ErrUnauthorized.WithDetail("invalid email or password"))
			return
		}
		h.responder.InternalError(c, err.Error())
		return
	}
	c.JSON(nethttp.StatusOK, mapper.FromSession(session))
}

func (h *Handler) logout(c *gin.Context) {
	token := bearerToken(c)
	if err := h.service.SignOut(c.Request.Context(), token); err != nil {
		h.responder.InternalError(c, err.Error())
		return
	}
	c.Status(nethttp.StatusNoContent)
}

func (h *Handler) me(c *gin.Context) {
	token := bearerToken(c)
	user, err := h.service.CurrentUser(c.Request.Context(), token)
	if err != nil {
		h.responder.Respond(c, sharederrors.ErrUnauthorized)
		return
	}
	c.JSON(nethttp.StatusOK, mapper.FromDomainUser(user))
}

// RequireAuth resolves the bearer token to an account and stores the user id
// in the request context. Requests without a live session get a 401 problem.
func RequireAuth(service ports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		user, err := service.CurrentUser(c.Request.Context(), token)
		if err != nil {
			sharederrors.Respond(c, sharederrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
