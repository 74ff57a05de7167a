package main

import (
	"context"
	"os"

	"rasaneh/internal/adapters/httpapi"
	"rasaneh/internal/adapters/memory"
	"rasaneh/internal/config"
	feedapp "rasaneh/internal/core/feed/service"
	followerapp "rasaneh/internal/core/follower/service"
	postapp "rasaneh/internal/core/post/service"
	userapp "rasaneh/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.Logger.Info("App is running...")

	dir := memory.NewDirectory()                          // وضعیت کل شبکه
	userRepo := memory.NewUserRepositoryMemory(dir)       // آداپتر خروجی
	postRepo := memory.NewPostRepositoryMemory(dir)       // آداپتر خروجی
	followerRepo := memory.NewFollowerRepositoryMemory(dir) // آداپتر خروجی
	userSvc := userapp.NewUserService(userRepo)           // یوزکیس/سرویس
	postSvc := postapp.NewPostService(postRepo)           // یوزکیس/سرویس
	followerSvc := followerapp.NewFollowerService(followerRepo) // یوزکیس/سرویس
	feedSvc := feedapp.NewFeedService(postRepo)           // یوزکیس/سرویس
	r := httpapi.SetupRoutes(userSvc, postSvc, followerSvc, feedSvc) // تزریق یوزکیس به آداپتر ورودی
	// -------------------------------------------

	ctx := context.Background()

	// DEMO
	seedDemo(ctx, config.Logger, userSvc, postSvc, followerSvc, feedSvc)
	// End DEMO

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// seedDemo سناریوی نمایشی: سه کاربر، سه پست، لایک و کامنت و فالو
func seedDemo(
	ctx context.Context,
	logger *zap.Logger,
	userSvc *userapp.UserService,
	postSvc *postapp.PostService,
	followerSvc *followerapp.FollowerService,
	feedSvc *feedapp.FeedService,
) {
	logger.Info("🚀 Seeding demo data...")

	alice, err := userSvc.RegisterUser(ctx, "1", "Alice", "alice.jpg")
	if err != nil {
		logger.Error("❌ Error creating user", zap.String("username", "Alice"), zap.Error(err))
		return
	}
	bob, err := userSvc.RegisterUser(ctx, "2", "Bob", "bob.png")
	if err != nil {
		logger.Error("❌ Error creating user", zap.String("username", "Bob"), zap.Error(err))
		return
	}
	charlie, err := userSvc.RegisterUser(ctx, "3", "Charlie", "charlie.jpeg")
	if err != nil {
		logger.Error("❌ Error creating user", zap.String("username", "Charlie"), zap.Error(err))
		return
	}

	post1, err := postSvc.SharePost(ctx, alice.ID, "Hello, world!", "image.jpg", []string{bob.ID})
	if err != nil {
		logger.Error("❌ Error creating post", zap.Error(err))
		return
	}
	post2, _ := postSvc.SharePost(ctx, bob.ID, "Go is fun!", "video.mp4", nil)
	_, _ = postSvc.SharePost(ctx, charlie.ID, "Just had amazing coffee.", "", nil)

	if err := postSvc.LikePost(ctx, post1.Ref, bob.ID); err != nil {
		logger.Error("❌ Error liking post", zap.Error(err))
	}
	if _, err := postSvc.AddComment(ctx, post1.Ref, charlie.ID, "Nice post!"); err != nil {
		logger.Error("❌ Error commenting on post", zap.Error(err))
	}
	if post2 != nil {
		_ = postSvc.LikePost(ctx, post2.Ref, alice.ID)
	}

	_ = followerSvc.FollowUser(ctx, alice.ID, bob.ID)
	_ = followerSvc.FollowUser(ctx, bob.ID, charlie.ID)

	logger.Info("✅ Demo data seeded")

	allPosts, _ := feedSvc.GetAllPosts(ctx)
	logger.Info("📃 All Posts:")
	for _, p := range allPosts {
		logger.Info(p.Summary)
	}

	alicePosts, _ := feedSvc.GetUserPosts(ctx, alice.ID)
	logger.Info("📃 Alice's Posts:")
	for _, p := range alicePosts {
		logger.Info(p.Summary)
	}

	trending, _ := feedSvc.GetTrendingPosts(ctx)
	logger.Info("🔥 Trending Posts:")
	for _, p := range trending {
		logger.Info(p.Summary)
	}

	bobFollowers, _ := followerSvc.GetFollowersByUserID(ctx, bob.ID)
	for _, f := range bobFollowers {
		logger.Info("👥 Bob's follower", zap.String("username", f.Username))
	}
	aliceFollowing, _ := followerSvc.GetFollowingByUserID(ctx, alice.ID)
	for _, f := range aliceFollowing {
		logger.Info("👥 Alice is following", zap.String("username", f.Username))
	}
}
