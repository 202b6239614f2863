package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Avatar       string    `json:"avatar" db:"avatar"`
	Bio          string    `json:"bio" db:"bio"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Claims — проверенное содержимое сессионного токена
type Claims struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// Author копируется в пост при записи, профиль пользователя
// задним числом посты не меняет
type Author struct {
	Name   string `json:"name" db:"author_name"`
	Avatar string `json:"avatar" db:"author_avatar"`
	Bio    string `json:"bio" db:"author_bio"`
}

type Post struct {
	PostID       string         `json:"postId" db:"post_id"`
	Slug         string         `json:"slug" db:"slug"`
	Title        string         `json:"title" db:"title"`
	Excerpt      string         `json:"excerpt" db:"excerpt"`
	Content      string         `json:"content" db:"content"`
	Category     string         `json:"category" db:"category"`
	Tags         pq.StringArray `json:"tags" db:"tags"`
	CoverImage   string         `json:"coverImage" db:"cover_image"`
	ReadTime     int            `json:"readTime" db:"read_time"`
	AuthorName   string         `json:"authorName" db:"author_name"`
	AuthorAvatar string         `json:"authorAvatar" db:"author_avatar"`
	AuthorBio    string         `json:"authorBio" db:"author_bio"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

type Comment struct {
	CommentID  string    `json:"commentId" db:"comment_id"`
	PostSlug   string    `json:"postSlug" db:"post_slug"`
	ParentID   *string   `json:"parentId" db:"parent_id"`
	AuthorName string    `json:"name" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	Likes      int       `json:"likes" db:"likes"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Replies    []Comment `json:"replies,omitempty" db:"-"`
}

// About хранится в settings под ключом "about"
type About struct {
	ContentZh string    `json:"contentZh"`
	ContentEn string    `json:"contentEn"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectConfig хранится в settings под ключом "projects"
type ProjectConfig struct {
	SelectedProjects []string `json:"selectedProjects"`
	Order            []string `json:"order"`
}

// ResumeMeta хранится в settings под ключом "resume",
// сам файл лежит в объектном хранилище
type ResumeMeta struct {
	FileName    string    `json:"fileName"`
	ObjectName  string    `json:"objectName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type Setting struct {
	Key       string          `db:"key"`
	Value     json.RawMessage `db:"value"`
	UpdatedAt time.Time       `db:"updated_at"`
}
