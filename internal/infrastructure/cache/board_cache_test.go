package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/tiagokriok/taskflow/internal/domain"
)

type stubRepository struct {
	loadFn   func(ctx context.Context, boardID string) (domain.Board, error)
	saveFn   func(ctx context.Context, board domain.Board) error
	renameFn func(ctx context.Context, boardID, title string) error
}

func (s *stubRepository) Load(ctx context.Context, boardID string) (domain.Board, error) {
	if s.loadFn == nil {
		return domain.Board{}, errors.New("unexpected Load call")
	}
	return s.loadFn(ctx, boardID)
}

func (s *stubRepository) Save(ctx context.Context, board domain.Board) error {
	if s.saveFn == nil {
		return errors.New("unexpected Save call")
	}
	return s.saveFn(ctx, board)
}

func (s *stubRepository) List(ctx context.Context, ownerID string) ([]domain.BoardSummary, error) {
	return nil, errors.New("unexpected List call")
}

func (s *stubRepository) Rename(ctx context.Context, boardID, title string) error {
	if s.renameFn == nil {
		return errors.New("unexpected Rename call")
	}
	return s.renameFn(ctx, boardID, title)
}

func (s *stubRepository) Delete(ctx context.Context, boardID string) error {
	return errors.New("unexpected Delete call")
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func testBoard() domain.Board {
	return domain.Board{
		ID:    "b1",
		Title: "Roadmap",
		Columns: []domain.Column{
			{ID: "c1", Title: "Doing", TaskIDs: []string{"t1"}},
		},
		Tasks: map[string]domain.Task{
			"t1": {ID: "t1", Title: "Ship", ColumnID: "c1", Tags: []string{"urgent"}},
		},
		GlobalTags: map[string]domain.Tag{"urgent": {Label: "urgent", Color: domain.TagRed}},
	}
}

func TestBoardCacheLoadMissThenHit(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	var calls int
	cache := NewBoardCache(&stubRepository{
		loadFn: func(ctx context.Context, boardID string) (domain.Board, error) {
			calls++
			if boardID != "b1" {
				t.Fatalf("unexpected board id: %s", boardID)
			}
			return testBoard(), nil
		},
	}, client, time.Minute)

	for i := 0; i < 2; i++ {
		board, err := cache.Load(ctx, "b1")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if board.Tasks["t1"].Title != "Ship" || board.GlobalTags["urgent"].Color != domain.TagRed {
			t.Fatalf("unexpected board: %#v", board)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 call to backend, got %d", calls)
	}
	if ttl := mr.TTL(boardCacheKey("b1")); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected TTL: %v", ttl)
	}
}

func TestBoardCacheRenameEvicts(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	cache := NewBoardCache(&stubRepository{
		saveFn:   func(ctx context.Context, board domain.Board) error { return nil },
		renameFn: func(ctx context.Context, boardID, title string) error { return nil },
	}, client, time.Minute)

	if err := cache.Save(ctx, testBoard()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists(boardCacheKey("b1")) {
		t.Fatalf("save should populate the cache")
	}
	if err := cache.Rename(ctx, "b1", "New"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if mr.Exists(boardCacheKey("b1")) {
		t.Fatalf("rename should evict the cached board")
	}
}

func TestBoardCacheFailedSaveEvicts(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()
	if err := mr.Set(boardCacheKey("b1"), "{}"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cache := NewBoardCache(&stubRepository{
		saveFn: func(ctx context.Context, board domain.Board) error { return domain.ErrPersistence },
	}, client, time.Minute)

	if err := cache.Save(ctx, testBoard()); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if mr.Exists(boardCacheKey("b1")) {
		t.Fatalf("failed save should evict")
	}
}

func TestBoardCacheFallsBackWhenRedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()

	cache := NewBoardCache(&stubRepository{
		loadFn: func(ctx context.Context, boardID string) (domain.Board, error) { return testBoard(), nil },
	}, client, time.Minute)

	board, err := cache.Load(context.Background(), "b1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if board.ID != "b1" {
		t.Fatalf("unexpected board %+v", board)
	}
}

func TestBoardCacheCorruptEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	if err := mr.Set(boardCacheKey("b1"), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var calls int
	cache := NewBoardCache(&stubRepository{
		loadFn: func(ctx context.Context, boardID string) (domain.Board, error) {
			calls++
			return testBoard(), nil
		},
	}, client, time.Minute)

	if _, err := cache.Load(context.Background(), "b1"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if calls != 1 {
		t.Fatalf("corrupt entry should fall through to the backend")
	}
}
