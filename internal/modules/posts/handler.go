package posts

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

// RegisterRoutes mounts the post surface. Reads are public, writes sit
// behind the access-token gate.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc) {
	postGroup := r.Group("/post")
	{
		postGroup.GET("", h.List)
		postGroup.GET("/:id", h.Get)
		postGroup.POST("", gate, h.Create)
		postGroup.PUT("/:id", gate, h.Update)
		postGroup.DELETE("/:id", gate, h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	postList, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("list posts: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"posts": postList})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, http.StatusBadRequest, fields)
		return
	}

	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		log.Printf("create post: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	response.JSON(c, http.StatusCreated, post)
}

func (h *Handler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Post updated",
		"post":    post,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	post, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Post deleted",
		"post":    post,
	})
}

func (h *Handler) postError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, ErrInvalidID):
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		log.Printf("post: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}
