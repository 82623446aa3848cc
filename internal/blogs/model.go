package blogs

import (
	"time"

	"github.com/Rohininagaraju/BlogApp/internal/users"
)

type Blog struct {
	ID        uint       `gorm:"primaryKey"`
	Title     string     `gorm:"not null"`
	Slug      string     `gorm:"index"`
	Content   string     `gorm:"type:text;not null"`
	AuthorID  uint       `gorm:"not null"`
	Author    users.User `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Response struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Content   string         `json:"content"`
	Author    users.Response `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ListResponse mirrors the page envelope the web client consumes.
type ListResponse struct {
	Content       []Response `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int64      `json:"totalPages"`
	Size          int        `json:"size"`
	Number        int        `json:"number"`
}

func toResponse(b *Blog) Response {
	return Response{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		Author:    users.ToResponse(&b.Author),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
