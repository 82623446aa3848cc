package blogs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/Rohininagaraju/BlogApp/internal/auth"
)

type blogDTO struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List returns a page of blogs, newest first. A page past the end of the
// data returns an empty content list with the true totals.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	offset := (page - 1) * size

	list, total, err := h.store.List(offset, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	content := make([]Response, 0, len(list))
	for i := range list {
		content = append(content, toResponse(&list[i]))
	}

	c.JSON(http.StatusOK, ListResponse{
		Content:       content,
		TotalElements: total,
		TotalPages:    (total + int64(size) - 1) / int64(size),
		Size:          size,
		Number:        page,
	})
}

// Get looks up a blog by numeric id, falling back to slug for
// non-numeric identifiers.
func (h *Handler) Get(c *gin.Context) {
	identifier := c.Param("id")

	var b *Blog
	var err error
	if id, parseErr := strconv.Atoi(identifier); parseErr == nil {
		b, err = h.store.ByID(uint(id))
	} else {
		b, err = h.store.BySlug(identifier)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, toResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	u := auth.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var dto blogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the author is always the authenticated user, never the request body
	b := Blog{
		Title:    dto.Title,
		Slug:     slug.Make(dto.Title),
		Content:  dto.Content,
		AuthorID: u.ID,
	}
	if err := h.store.Create(&b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusCreated, toResponse(&b))
}

func (h *Handler) Update(c *gin.Context) {
	u := auth.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	b, err := h.store.ByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	if b.AuthorID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	var dto blogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ownership check and write are separate statements; a concurrent
	// transfer of the record between them is not guarded against
	b.Title = dto.Title
	b.Slug = slug.Make(dto.Title)
	b.Content = dto.Content
	if err := h.store.Update(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, toResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	u := auth.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	b, err := h.store.ByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	if b.AuthorID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	if err := h.store.Delete(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
