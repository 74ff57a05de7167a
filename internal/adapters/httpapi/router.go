package httpapi

import (
	"context"
	postPort "rasaneh/internal/ports/post"
	userPort "rasaneh/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	RegisterUser(ctx context.Context, userID, username, profilePicture string) (*userPort.UserDTO, error)
	GetUser(ctx context.Context, userID string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	SharePost(ctx context.Context, authorID, content, media string, tags []string) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, ref int) (*postPort.PostDTO, error)
	LikePost(ctx context.Context, ref int, userID string) error
	UnlikePost(ctx context.Context, ref int, userID string) error
	AddComment(ctx context.Context, ref int, userID, text string) (*postPort.CommentDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, followerID, followeeID string) error
	UnfollowUser(ctx context.Context, followerID, followeeID string) error
	GetFollowersByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
}

type FeedUseCase interface {
	GetAllPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	GetUserPosts(ctx context.Context, userID string) ([]*postPort.PostDTO, error)
	GetTrendingPosts(ctx context.Context) ([]*postPort.PostDTO, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	followerUC FollowerUseCase,
	feedUC FeedUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	fc := NewFollowerController(followerUC)
	fd := NewFeedController(feedUC)

	r.POST("/register", uc.RegisterUser)
	r.GET("/users/:id", uc.GetUser)

	r.POST("/posts", pc.SharePost)
	r.GET("/posts/:ref", pc.GetPost)
	r.POST("/posts/:ref/like", pc.LikePost)
	r.POST("/posts/:ref/unlike", pc.UnlikePost)
	r.POST("/posts/:ref/comments", pc.AddComment)

	r.POST("/follow", fc.FollowUser)
	r.POST("/unfollow", fc.UnfollowUser)
	r.GET("/followers", fc.GetFollowersByUserID)
	r.GET("/following", fc.GetFollowingByUserID)

	r.GET("/feed", fd.GetAllPosts)
	r.GET("/feed/:user_id", fd.GetUserPosts)
	r.GET("/trending", fd.GetTrendingPosts)
	return r
}
