package memory

import (
	"context"
	"testing"
	"time"

	"rasaneh/internal/core/post"
	"rasaneh/internal/core/user"
	postPort "rasaneh/internal/ports/post"
	userPort "rasaneh/internal/ports/user"

	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T, userIDs ...string) (*Directory, *UserRepositoryMemory, *PostRepositoryMemory, *FollowerRepositoryMemory) {
	t.Helper()
	dir := NewDirectory()
	users := NewUserRepositoryMemory(dir)
	posts := NewPostRepositoryMemory(dir)
	followers := NewFollowerRepositoryMemory(dir)
	for _, id := range userIDs {
		_, err := users.Create(&user.User{ID: id, Username: "user-" + id})
		require.NoError(t, err)
	}
	return dir, users, posts, followers
}

func TestUserRepository_DuplicateRegistration(t *testing.T) {
	_, users, _, _ := newTestDirectory(t)

	first, err := users.Create(&user.User{ID: "1", Username: "Alice"})
	require.NoError(t, err)

	_, err = users.Create(&user.User{ID: "1", Username: "Impostor"})
	require.ErrorIs(t, err, userPort.ErrUserExists)

	// the registered user is never overwritten
	got, err := users.FindByID("1")
	require.NoError(t, err)
	require.Equal(t, first, got)
	require.Equal(t, "Alice", got.Username)
}

func TestUserRepository_FindByIDNotFound(t *testing.T) {
	_, users, _, _ := newTestDirectory(t)

	_, err := users.FindByID("missing")
	require.ErrorIs(t, err, userPort.ErrUserNotFound)
}

func TestFollowerRepository_Symmetry(t *testing.T) {
	ctx := context.Background()
	_, _, _, followers := newTestDirectory(t, "a", "b")

	require.NoError(t, followers.Follow(ctx, "a", "b"))

	following, err := followers.GetFollowingByUserID(ctx, "a")
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, "b", following[0].ID)

	back, err := followers.GetFollowersByUserID(ctx, "b")
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.Equal(t, "a", back[0].ID)

	require.NoError(t, followers.Unfollow(ctx, "a", "b"))

	following, _ = followers.GetFollowingByUserID(ctx, "a")
	require.Empty(t, following)
	back, _ = followers.GetFollowersByUserID(ctx, "b")
	require.Empty(t, back)
}

func TestFollowerRepository_SelfFollowIsNoop(t *testing.T) {
	ctx := context.Background()
	_, _, _, followers := newTestDirectory(t, "a")

	require.NoError(t, followers.Follow(ctx, "a", "a"))

	following, _ := followers.GetFollowingByUserID(ctx, "a")
	require.Empty(t, following)
	back, _ := followers.GetFollowersByUserID(ctx, "a")
	require.Empty(t, back)
}

func TestFollowerRepository_FollowIsIdempotent(t *testing.T) {
	ctx := context.Background()
	_, _, _, followers := newTestDirectory(t, "a", "b")

	require.NoError(t, followers.Follow(ctx, "a", "b"))
	require.NoError(t, followers.Follow(ctx, "a", "b"))

	following, _ := followers.GetFollowingByUserID(ctx, "a")
	require.Len(t, following, 1)
	back, _ := followers.GetFollowersByUserID(ctx, "b")
	require.Len(t, back, 1)
}

func TestFollowerRepository_UnfollowWhenNotFollowingIsNoop(t *testing.T) {
	ctx := context.Background()
	_, _, _, followers := newTestDirectory(t, "a", "b")

	require.NoError(t, followers.Unfollow(ctx, "a", "b"))

	ok, err := followers.IsFollowing(ctx, "a", "b")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFollowerRepository_UnknownUser(t *testing.T) {
	ctx := context.Background()
	_, _, _, followers := newTestDirectory(t, "a")

	err := followers.Follow(ctx, "a", "ghost")
	require.ErrorIs(t, err, userPort.ErrUserNotFound)
}

func TestPostRepository_CreateAssignsRefAndPostID(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a", "b")

	p1, err := posts.Create(&post.Post{AuthorID: "a", Content: "first"})
	require.NoError(t, err)
	p2, err := posts.Create(&post.Post{AuthorID: "a", Content: "second"})
	require.NoError(t, err)
	p3, err := posts.Create(&post.Post{AuthorID: "b", Content: "other author"})
	require.NoError(t, err)

	// arena refs are global, post IDs restart per author
	require.Equal(t, 0, p1.Ref)
	require.Equal(t, 1, p2.Ref)
	require.Equal(t, 2, p3.Ref)
	require.Equal(t, 1, p1.PostID)
	require.Equal(t, 2, p2.PostID)
	require.Equal(t, 1, p3.PostID)
	require.Equal(t, "user-a", p1.Author.Username)
}

func TestPostRepository_CreateUnknownAuthor(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t)

	_, err := posts.Create(&post.Post{AuthorID: "ghost", Content: "hi"})
	require.ErrorIs(t, err, userPort.ErrUserNotFound)
}

func TestPostRepository_PublishSeparateFromCreate(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a")

	p, err := posts.Create(&post.Post{AuthorID: "a", Content: "draft"})
	require.NoError(t, err)

	// still a draft: in the author's list, not in the global sequence
	published, err := posts.FindPublished()
	require.NoError(t, err)
	require.Empty(t, published)

	byAuthor, err := posts.FindByAuthorID("a")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)

	require.NoError(t, posts.Publish(p.Ref))
	published, _ = posts.FindPublished()
	require.Len(t, published, 1)
	require.Equal(t, p.Ref, published[0].Ref)
	require.Equal(t, "draft", published[0].Content)
}

func TestPostRepository_PublishUnknownRef(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a")

	require.ErrorIs(t, posts.Publish(42), postPort.ErrPostNotFound)
}

func TestPostRepository_PublishTwiceAppendsTwice(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a")

	p, err := posts.Create(&post.Post{AuthorID: "a", Content: "again"})
	require.NoError(t, err)

	// publishing does no dedup: the global sequence holds the ref twice
	require.NoError(t, posts.Publish(p.Ref))
	require.NoError(t, posts.Publish(p.Ref))

	published, err := posts.FindPublished()
	require.NoError(t, err)
	require.Len(t, published, 2)
	require.Equal(t, p.Ref, published[0].Ref)
	require.Equal(t, p.Ref, published[1].Ref)

	// the author's own list is untouched by publishing
	byAuthor, err := posts.FindByAuthorID("a")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
}

func TestPostRepository_LikeIsIdempotent(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a", "b")

	p, err := posts.Create(&post.Post{AuthorID: "a", Content: "hi"})
	require.NoError(t, err)

	require.NoError(t, posts.Like(p.Ref, "b"))
	require.NoError(t, posts.Like(p.Ref, "b"))
	got, err := posts.FindByRef(p.Ref)
	require.NoError(t, err)
	require.Equal(t, 1, got.LikeCount())

	require.NoError(t, posts.Unlike(p.Ref, "b"))
	require.NoError(t, posts.Unlike(p.Ref, "b"))
	got, err = posts.FindByRef(p.Ref)
	require.NoError(t, err)
	require.Equal(t, 0, got.LikeCount())
}

func TestPostRepository_ReadsReturnSnapshots(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a", "b")

	p, err := posts.Create(&post.Post{AuthorID: "a", Content: "hi"})
	require.NoError(t, err)
	require.NoError(t, posts.Publish(p.Ref))

	before, err := posts.FindPublished()
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, posts.Like(p.Ref, "b"))
	_, err = posts.AddComment(p.Ref, "b", "hello")
	require.NoError(t, err)

	// earlier reads keep their own like set and comment list
	require.Equal(t, 0, before[0].LikeCount())
	require.Equal(t, 0, before[0].CommentCount())

	after, err := posts.FindByRef(p.Ref)
	require.NoError(t, err)
	require.Equal(t, 1, after.LikeCount())
	require.Equal(t, 1, after.CommentCount())
}

func TestPostRepository_LikeByUnknownUser(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a")

	p, err := posts.Create(&post.Post{AuthorID: "a", Content: "hi"})
	require.NoError(t, err)

	require.ErrorIs(t, posts.Like(p.Ref, "ghost"), userPort.ErrUserNotFound)
}

func TestPostRepository_CommentsKeepCallOrder(t *testing.T) {
	_, _, posts, _ := newTestDirectory(t, "a", "b")

	p, err := posts.Create(&post.Post{AuthorID: "a", Content: "hi"})
	require.NoError(t, err)

	_, err = posts.AddComment(p.Ref, "b", "first")
	require.NoError(t, err)
	c, err := posts.AddComment(p.Ref, "b", "") // empty text allowed
	require.NoError(t, err)
	require.Equal(t, "user-b", c.Username)

	got, err := posts.FindByRef(p.Ref)
	require.NoError(t, err)
	require.Equal(t, 2, got.CommentCount())
	require.Equal(t, "first", got.Comments[0].Text)
	require.Equal(t, "", got.Comments[1].Text)
}

func TestDirectory_InjectedClock(t *testing.T) {
	dir, _, posts, _ := newTestDirectory(t, "a")

	instant := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	dir.SetClock(func() time.Time { return instant })

	p1, err := posts.Create(&post.Post{AuthorID: "a", Content: "one"})
	require.NoError(t, err)
	p2, err := posts.Create(&post.Post{AuthorID: "a", Content: "two"})
	require.NoError(t, err)

	require.True(t, p1.CreatedAt.Equal(p2.CreatedAt))
}
