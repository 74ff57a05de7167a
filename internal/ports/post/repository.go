package post

import (
	"errors"

	"rasaneh/internal/core/post"
	userPort "rasaneh/internal/ports/user"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
//
// Create appends the post to the arena and the author's own list only;
// Publish registers it in the directory's global sequence. The two steps
// are a deliberate draft/publish contract.
type PostRepository interface {
	Create(post *post.Post) (*post.Post, error)
	FindByRef(ref int) (*post.Post, error)
	Publish(ref int) error
	FindByAuthorID(authorID string) ([]*post.Post, error)
	FindPublished() ([]*post.Post, error)
	Like(ref int, userID string) error
	Unlike(ref int, userID string) error
	AddComment(ref int, userID, text string) (*post.Comment, error)
}

// DTOها برای UseCase
type PostDTO struct {
	Ref       int               `json:"ref"`
	PostID    int               `json:"post_id"`
	AuthorID  string            `json:"author_id"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	Content   string            `json:"content"`
	Media     string            `json:"media,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Likes     int               `json:"likes"`
	Comments  int               `json:"comments"`
	CreatedAt string            `json:"created_at"`
	Summary   string            `json:"summary"`
}

type CommentDTO struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}
