package auth

import (
	"errors"
	"log"
	"net/http"

	"microblog/internal/middleware"
	"microblog/internal/pkg/response"
	"microblog/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for accounts and sessions
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the auth surface. The gate is the access-token
// middleware; only profile update and delete sit behind it.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh_token", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/:id", h.GetAccount)
		authGroup.PUT("/:id", gate, h.UpdateAccount)
		authGroup.DELETE("/:id", gate, h.DeleteAccount)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, http.StatusBadRequest, fields)
		return
	}

	account, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusBadRequest, "Username already exists")
		default:
			log.Printf("signup: %v", err)
			response.Error(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    account,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, http.StatusBadRequest, fields)
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "Incorrect username or password, please try again")
			return
		}
		log.Printf("login: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	response.JSON(c, http.StatusOK, pair)
}

func (h *Handler) Refresh(c *gin.Context) {
	raw, ok := middleware.TokenFromHeader(c)
	if !ok {
		response.Error(c, http.StatusForbidden, "Invalid refresh token")
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		h.refreshError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, pair)
}

func (h *Handler) Logout(c *gin.Context) {
	raw, ok := middleware.TokenFromHeader(c)
	if !ok {
		response.Error(c, http.StatusForbidden, "Invalid refresh token")
		return
	}

	if err := h.service.Logout(c.Request.Context(), raw); err != nil {
		h.refreshError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Logout successful")
}

// refreshError maps failures on the refresh-token paths. Both the
// bad-token and the revoked-session cases answer 403 with the same
// body; the client learns nothing about which rule fired.
func (h *Handler) refreshError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrSessionRevoked):
		response.Error(c, http.StatusForbidden, "Invalid refresh token")
	default:
		log.Printf("refresh token: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}

func (h *Handler) GetAccount(c *gin.Context) {
	account, err := h.service.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.accountError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"user": account})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	if !h.ownsAccount(c) {
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, http.StatusBadRequest, fields)
		return
	}

	account, err := h.service.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.accountError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "User updated",
		"user":    account,
	})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if !h.ownsAccount(c) {
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		h.accountError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted")
}

// ownsAccount rejects callers whose token resolves to a different
// account than the :id they are trying to modify.
func (h *Handler) ownsAccount(c *gin.Context) bool {
	accountID := c.GetString(middleware.ContextAccountID)
	if accountID == "" {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		c.Abort()
		return false
	}
	if accountID != c.Param("id") {
		response.Error(c, http.StatusForbidden, "You can only modify your own account")
		c.Abort()
		return false
	}
	return true
}

func (h *Handler) accountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidID):
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		log.Printf("account: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}
