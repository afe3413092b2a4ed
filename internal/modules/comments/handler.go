package comments

import (
	"errors"
	"log"
	"net/http"

	"microblog/internal/pkg/response"
	"microblog/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc) {
	commentGroup := r.Group("/comment")
	{
		commentGroup.GET("", h.List)
		commentGroup.GET("/:id", h.Get)
		commentGroup.POST("", gate, h.Create)
		commentGroup.PUT("/:id", gate, h.Update)
		commentGroup.DELETE("/:id", gate, h.Delete)
	}
}

// List serves /comment and /comment?post=<id>.
func (h *Handler) List(c *gin.Context) {
	commentList, err := h.service.List(c.Request.Context(), c.Query("post"))
	if err != nil {
		h.commentError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"comments": commentList})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, http.StatusBadRequest, fields)
		return
	}

	comment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPostID) {
			response.Error(c, http.StatusBadRequest, "Invalid post id")
			return
		}
		log.Printf("create comment: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	response.JSON(c, http.StatusCreated, comment)
}

func (h *Handler) Get(c *gin.Context) {
	comment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.commentError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"comment": comment})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.commentError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Comment updated",
		"comment": comment,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	comment, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.commentError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Comment deleted",
		"comment": comment,
	})
}

func (h *Handler) commentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "Comment not found")
	case errors.Is(err, ErrInvalidPostID):
		response.Error(c, http.StatusBadRequest, "Invalid post id")
	case errors.Is(err, ErrInvalidID):
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		log.Printf("comment: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}
