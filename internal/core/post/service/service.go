package postapp

import (
	"context"
	"fmt"

	"rasaneh/internal/config"
	postEntity "rasaneh/internal/core/post"
	postPort "rasaneh/internal/ports/post"
	userPort "rasaneh/internal/ports/user"

	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(postRepo postPort.PostRepository) *PostService {
	return &PostService{
		PostRepository: postRepo,
	}
}

// CreatePost ایجاد پیش‌نویس پست برای نویسنده
//
// The post lands in the author's own list only; it joins the global feed
// once PublishPost is called. SharePost does both in one call.
func (s *PostService) CreatePost(ctx context.Context, authorID, content, media string, tags []string) (*postPort.PostDTO, error) {
	p := &postEntity.Post{
		AuthorID: authorID,
		Content:  content,
		Media:    media,
		Tags:     tags,
	}

	created, err := s.PostRepository.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	config.Logger.Info("📝 Created post",
		zap.Int("ref", created.Ref),
		zap.Int("postID", created.PostID),
		zap.String("authorID", created.AuthorID))
	return toDTO(created), nil
}

// PublishPost ثبت پست در دنباله سراسری دایرکتوری
func (s *PostService) PublishPost(ctx context.Context, ref int) error {
	if err := s.PostRepository.Publish(ref); err != nil {
		return fmt.Errorf("failed to publish post: %w", err)
	}
	return nil
}

// SharePost ایجاد و انتشار پست با هم
func (s *PostService) SharePost(ctx context.Context, authorID, content, media string, tags []string) (*postPort.PostDTO, error) {
	dto, err := s.CreatePost(ctx, authorID, content, media, tags)
	if err != nil {
		return nil, err
	}
	if err := s.PublishPost(ctx, dto.Ref); err != nil {
		return nil, err
	}
	return dto, nil
}

// LikePost لایک کردن پست: idempotent
func (s *PostService) LikePost(ctx context.Context, ref int, userID string) error {
	return s.PostRepository.Like(ref, userID)
}

// UnlikePost برداشتن لایک: idempotent
func (s *PostService) UnlikePost(ctx context.Context, ref int, userID string) error {
	return s.PostRepository.Unlike(ref, userID)
}

// AddComment افزودن کامنت به پست
func (s *PostService) AddComment(ctx context.Context, ref int, userID, text string) (*postPort.CommentDTO, error) {
	c, err := s.PostRepository.AddComment(ref, userID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return &postPort.CommentDTO{
		UserID:    c.UserID,
		Username:  c.Username,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.String(),
	}, nil
}

// GetPost بازیابی پست با ارجاع arena
func (s *PostService) GetPost(ctx context.Context, ref int) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByRef(ref)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		Ref:      p.Ref,
		PostID:   p.PostID,
		AuthorID: p.AuthorID,
		Author: &userPort.UserDTO{
			ID:             p.Author.ID,
			Username:       p.Author.Username,
			ProfilePicture: p.Author.ProfilePicture,
		},
		Content:   p.Content,
		Media:     p.Media,
		Tags:      p.Tags,
		Likes:     p.LikeCount(),
		Comments:  p.CommentCount(),
		CreatedAt: p.CreatedAt.String(),
		Summary:   p.String(),
	}
}
