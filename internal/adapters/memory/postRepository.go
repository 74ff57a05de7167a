package memory

import (
	"rasaneh/internal/core/post"
	postPort "rasaneh/internal/ports/post"
	userPort "rasaneh/internal/ports/user"
)

// PostRepositoryMemory پیاده‌سازی PostRepository روی Directory
type PostRepositoryMemory struct {
	dir *Directory
}

// NewPostRepositoryMemory سازنده PostRepositoryMemory
func NewPostRepositoryMemory(dir *Directory) *PostRepositoryMemory {
	return &PostRepositoryMemory{dir: dir}
}

// Create شماره‌گذاری و افزودن پست به arena و لیست نویسنده
//
// Ref (arena index), PostID (author's post count + 1) and CreatedAt are
// assigned here; the post is not yet in the global feed until Publish.
func (repo *PostRepositoryMemory) Create(p *post.Post) (*post.Post, error) {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	author, ok := repo.dir.users[p.AuthorID]
	if !ok {
		return nil, userPort.ErrUserNotFound
	}

	p.Ref = len(repo.dir.arena)
	p.PostID = len(repo.dir.authorRefs[p.AuthorID]) + 1
	p.Author = author
	p.CreatedAt = repo.dir.now()
	if p.Likes == nil {
		p.Likes = make(map[string]struct{})
	}

	repo.dir.arena = append(repo.dir.arena, p)
	repo.dir.authorRefs[p.AuthorID] = append(repo.dir.authorRefs[p.AuthorID], p.Ref)
	return snapshot(p), nil
}

func (repo *PostRepositoryMemory) FindByRef(ref int) (*post.Post, error) {
	repo.dir.mu.RLock()
	defer repo.dir.mu.RUnlock()

	p, err := repo.lookup(ref)
	if err != nil {
		return nil, err
	}
	return snapshot(p), nil
}

// Publish افزودن پست به دنباله سراسری دایرکتوری
func (repo *PostRepositoryMemory) Publish(ref int) error {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	if _, err := repo.lookup(ref); err != nil {
		return err
	}
	repo.dir.feedRefs = append(repo.dir.feedRefs, ref)
	return nil
}

func (repo *PostRepositoryMemory) FindByAuthorID(authorID string) ([]*post.Post, error) {
	repo.dir.mu.RLock()
	defer repo.dir.mu.RUnlock()

	refs := repo.dir.authorRefs[authorID]
	posts := make([]*post.Post, 0, len(refs))
	for _, ref := range refs {
		posts = append(posts, snapshot(repo.dir.arena[ref]))
	}
	return posts, nil
}

// FindPublished بازگرداندن پست‌ها به ترتیب درج در دایرکتوری
func (repo *PostRepositoryMemory) FindPublished() ([]*post.Post, error) {
	repo.dir.mu.RLock()
	defer repo.dir.mu.RUnlock()

	posts := make([]*post.Post, 0, len(repo.dir.feedRefs))
	for _, ref := range repo.dir.feedRefs {
		posts = append(posts, snapshot(repo.dir.arena[ref]))
	}
	return posts, nil
}

// Like افزودن لایک: idempotent
func (repo *PostRepositoryMemory) Like(ref int, userID string) error {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	p, err := repo.lookup(ref)
	if err != nil {
		return err
	}
	if _, ok := repo.dir.users[userID]; !ok {
		return userPort.ErrUserNotFound
	}
	p.Likes[userID] = struct{}{}
	return nil
}

// Unlike حذف لایک: idempotent
func (repo *PostRepositoryMemory) Unlike(ref int, userID string) error {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	p, err := repo.lookup(ref)
	if err != nil {
		return err
	}
	delete(p.Likes, userID)
	return nil
}

// AddComment افزودن کامنت به انتهای لیست: never reordered or removed
func (repo *PostRepositoryMemory) AddComment(ref int, userID, text string) (*post.Comment, error) {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	p, err := repo.lookup(ref)
	if err != nil {
		return nil, err
	}
	commenter, ok := repo.dir.users[userID]
	if !ok {
		return nil, userPort.ErrUserNotFound
	}

	// empty text is allowed
	c := &post.Comment{
		UserID:    userID,
		Username:  commenter.Username,
		Text:      text,
		CreatedAt: repo.dir.now(),
	}
	p.Comments = append(p.Comments, c)
	return c, nil
}

// lookup باید زیر قفل صدا زده شود
func (repo *PostRepositoryMemory) lookup(ref int) (*post.Post, error) {
	if ref < 0 || ref >= len(repo.dir.arena) {
		return nil, postPort.ErrPostNotFound
	}
	return repo.dir.arena[ref], nil
}

// snapshot کپی پست برای خواندن خارج از قفل: باید زیر قفل صدا زده شود
//
// The arena struct stays private to the lock; readers get a value copy with
// their own like set and comment list, so feed sorting and DTO building never
// touch state a writer may be mutating.
func snapshot(p *post.Post) *post.Post {
	likes := make(map[string]struct{}, len(p.Likes))
	for id := range p.Likes {
		likes[id] = struct{}{}
	}
	comments := make([]*post.Comment, len(p.Comments))
	copy(comments, p.Comments)

	cp := *p
	cp.Likes = likes
	cp.Comments = comments
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp
}
