package memory

import (
	"sync"
	"time"

	"rasaneh/internal/core/post"
	"rasaneh/internal/core/user"
)

// Directory نگهدارنده وضعیت کل شبکه در حافظه
//
// Every post lives exactly once in the arena; authorRefs (per-author list)
// and feedRefs (the directory's global published sequence) hold arena
// indices, so the two lists can never hold diverging copies.
//
// One RWMutex guards all state. Follow edges are mirrored maps keyed by user
// ID; both sides mutate inside one critical section, so readers never observe
// a half-written edge.
type Directory struct {
	mu sync.RWMutex

	users map[string]*user.User

	arena      []*post.Post
	authorRefs map[string][]int
	feedRefs   []int

	following map[string]map[string]struct{}
	followers map[string]map[string]struct{}

	now func() time.Time
}

func NewDirectory() *Directory {
	return &Directory{
		users:      make(map[string]*user.User),
		authorRefs: make(map[string][]int),
		following:  make(map[string]map[string]struct{}),
		followers:  make(map[string]map[string]struct{}),
		now:        time.Now,
	}
}

// SetClock جایگزینی منبع زمان: tests inject a fixed clock to force
// same-instant timestamps.
func (d *Directory) SetClock(now func() time.Time) {
	d.now = now
}
