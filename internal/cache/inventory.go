package cache

import (
	"context"
	"fmt"
)

const (
	UserKeyPrefix      = "user:%d"
	UserPostsKeyPrefix = "posts:user:%d"
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func UserPostsKey(userID uint) string {
	return fmt.Sprintf(UserPostsKeyPrefix, userID)
}

func (c *Cache) InvalidateUser(ctx context.Context, userID uint) {
	c.Invalidate(ctx, UserKey(userID), UserPostsKey(userID))
}

func (c *Cache) InvalidateUserPosts(ctx context.Context, userID uint) {
	c.Invalidate(ctx, UserPostsKey(userID))
}

// Flush drops every key this package writes.
func (c *Cache) Flush(ctx context.Context) error {
	if err := c.InvalidatePattern(ctx, "user:*"); err != nil {
		return err
	}
	return c.InvalidatePattern(ctx, "posts:user:*")
}
