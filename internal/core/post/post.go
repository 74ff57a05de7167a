package post

import (
	"fmt"
	"time"

	"rasaneh/internal/core/user"
)

// Post lives once in the directory's arena; Ref is its arena index and the
// handle callers use to address it. PostID restarts at 1 per author.
type Post struct {
	Ref       int
	PostID    int
	AuthorID  string
	Author    *user.User
	Content   string
	Media     string   // image/video reference, may be empty
	Tags      []string // tagged user IDs
	Likes     map[string]struct{}
	Comments  []*Comment
	CreatedAt time.Time
}

type Comment struct {
	UserID    string
	Username  string
	Text      string
	CreatedAt time.Time
}

func (p *Post) LikeCount() int {
	return len(p.Likes)
}

func (p *Post) CommentCount() int {
	return len(p.Comments)
}

func (p *Post) String() string {
	return fmt.Sprintf("Post(id=%d, author=%s, content='%s...', likes=%d, comments=%d)",
		p.PostID, p.Author.Username, preview(p.Content, 20), p.LikeCount(), p.CommentCount())
}

func (c *Comment) String() string {
	return fmt.Sprintf("Comment(user=%s, text='%s')", c.Username, c.Text)
}

// preview truncates content to at most n runes for display.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
