package feedapp

import (
	"context"
	"sort"

	postEntity "rasaneh/internal/core/post"
	postPort "rasaneh/internal/ports/post"
	userPort "rasaneh/internal/ports/user"
)

// trendingLimit حداکثر تعداد پست‌های فید ترند
const trendingLimit = 10

// FeedService پرس‌وجوهای فقط-خواندنی روی دایرکتوری
//
// All three feeds sort snapshots the repository already copied, so no query
// mutates stored state. Sorts are stable: equal timestamps (or equal trending
// scores) keep the directory's insertion order, which makes repeated calls
// deterministic even when the wall clock ties.
type FeedService struct {
	PostRepository postPort.PostRepository
}

func NewFeedService(postRepo postPort.PostRepository) *FeedService {
	return &FeedService{
		PostRepository: postRepo,
	}
}

// GetAllPosts فید سراسری: جدیدترین پست اول
func (s *FeedService) GetAllPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindPublished()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return toDTOs(posts), nil
}

// GetUserPosts پست‌های خود کاربر: unknown user yields an empty feed, not an error
func (s *FeedService) GetUserPosts(ctx context.Context, userID string) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindByAuthorID(userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return toDTOs(posts), nil
}

// GetTrendingPosts فید ترند بر اساس مجموع لایک و کامنت
//
// A post with zero engagement is still a candidate, just lowest ranked.
func (s *FeedService) GetTrendingPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindPublished()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return score(posts[i]) > score(posts[j])
	})
	if len(posts) > trendingLimit {
		posts = posts[:trendingLimit]
	}
	return toDTOs(posts), nil
}

// score امتیاز ترند: برای رتبه‌بندی، هرگز ذخیره نمی‌شود
func score(p *postEntity.Post) int {
	return p.LikeCount() + p.CommentCount()
}

func toDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, &postPort.PostDTO{
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
		})
	}
	return dtos
}
