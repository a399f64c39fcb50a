package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// BoardCache wraps a BoardRepository with Redis-backed caching of whole board
// snapshots. Redis failures never fail a call; the base repository answers.
type BoardCache struct {
	base  domain.BoardRepository
	redis *redis.Client
	ttl   time.Duration
}

// NewBoardCache creates a caching repository using the provided Redis client and TTL.
// A nil client turns the cache into a pass-through.
func NewBoardCache(base domain.BoardRepository, client *redis.Client, ttl time.Duration) *BoardCache {
	if base == nil {
		panic("cache.NewBoardCache: base repository is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &BoardCache{
		base:  base,
		redis: client,
		ttl:   ttl,
	}
}

func (c *BoardCache) Load(ctx context.Context, boardID string) (domain.Board, error) {
	if board, ok := c.loadFromCache(ctx, boardID); ok {
		return board, nil
	}

	board, err := c.base.Load(ctx, boardID)
	if err != nil {
		return domain.Board{}, err
	}

	c.store(ctx, board)
	return board, nil
}

func (c *BoardCache) Save(ctx context.Context, board domain.Board) error {
	if err := c.base.Save(ctx, board); err != nil {
		c.evict(ctx, board.ID)
		return err
	}

	c.store(ctx, board)
	return nil
}

func (c *BoardCache) List(ctx context.Context, ownerID string) ([]domain.BoardSummary, error) {
	return c.base.List(ctx, ownerID)
}

func (c *BoardCache) Rename(ctx context.Context, boardID, title string) error {
	if err := c.base.Rename(ctx, boardID, title); err != nil {
		return err
	}

	c.evict(ctx, boardID)
	return nil
}

func (c *BoardCache) Delete(ctx context.Context, boardID string) error {
	if err := c.base.Delete(ctx, boardID); err != nil {
		return err
	}

	c.evict(ctx, boardID)
	return nil
}

func (c *BoardCache) loadFromCache(ctx context.Context, boardID string) (domain.Board, bool) {
	if c.redis == nil {
		return domain.Board{}, false
	}
	data, err := c.redis.Get(ctx, boardCacheKey(boardID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			// On redis errors fall back to the backing repository without failing.
			_ = c.redis.Del(ctx, boardCacheKey(boardID)).Err()
		}
		return domain.Board{}, false
	}
	var board domain.Board
	if err := json.Unmarshal(data, &board); err != nil {
		_ = c.redis.Del(ctx, boardCacheKey(boardID)).Err()
		return domain.Board{}, false
	}
	return board, true
}

func (c *BoardCache) store(ctx context.Context, board domain.Board) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(board)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, boardCacheKey(board.ID), data, c.ttl).Err()
}

func (c *BoardCache) evict(ctx context.Context, boardID string) {
	if c.redis == nil {
		return
	}
	_, _ = c.redis.Del(ctx, boardCacheKey(boardID)).Result()
}

func boardCacheKey(boardID string) string {
	return "taskflow:board:" + boardID
}
