package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tiagokriok/taskflow/internal/domain"
)

type memoryBoards struct {
	mu      sync.Mutex
	boards  map[string]domain.Board
	saves   int
	saveErr error
}

func newMemoryBoards() *memoryBoards {
	return &memoryBoards{boards: map[string]domain.Board{}}
}

func (m *memoryBoards) Load(ctx context.Context, id string) (domain.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[id]
	if !ok {
		return domain.Board{}, fmt.Errorf("board %q: %w", id, domain.ErrNotFound)
	}
	return b.Clone(), nil
}

func (m *memoryBoards) Save(ctx context.Context, b domain.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.boards[b.ID] = b.Clone()
	return nil
}

func (m *memoryBoards) List(ctx context.Context, ownerID string) ([]domain.BoardSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.BoardSummary{}
	for _, b := range m.boards {
		if b.OwnerID == ownerID {
			out = append(out, domain.BoardSummary{ID: b.ID, OwnerID: b.OwnerID, Title: b.Title})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *memoryBoards) Rename(ctx context.Context, id, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[id]
	if !ok {
		return fmt.Errorf("board %q: %w", id, domain.ErrNotFound)
	}
	b.Title = title
	m.boards[id] = b
	return nil
}

func (m *memoryBoards) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boards[id]; !ok {
		return fmt.Errorf("board %q: %w", id, domain.ErrNotFound)
	}
	delete(m.boards, id)
	return nil
}

func (m *memoryBoards) get(id string) (domain.Board, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[id]
	return b, ok
}

// gatedBoards holds every Save once armed until release is closed.
type gatedBoards struct {
	*memoryBoards
	gateMu  sync.Mutex
	started chan struct{}
	release chan struct{}
}

func (g *gatedBoards) arm() {
	g.gateMu.Lock()
	defer g.gateMu.Unlock()
	g.started = make(chan struct{}, 1)
	g.release = make(chan struct{})
}

func (g *gatedBoards) Save(ctx context.Context, b domain.Board) error {
	g.gateMu.Lock()
	started, release := g.started, g.release
	g.gateMu.Unlock()
	if release != nil {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	}
	return g.memoryBoards.Save(ctx, b)
}

type memoryTeams struct {
	mu    sync.Mutex
	teams map[string]domain.Team
}

func newMemoryTeams() *memoryTeams {
	return &memoryTeams{teams: map[string]domain.Team{}}
}

func (m *memoryTeams) Get(ctx context.Context, id string) (domain.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return domain.Team{}, fmt.Errorf("team %q: %w", id, domain.ErrNotFound)
	}
	t.Members = append([]domain.TeamMember(nil), t.Members...)
	return t, nil
}

func (m *memoryTeams) Save(ctx context.Context, t domain.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.Members = append([]domain.TeamMember(nil), t.Members...)
	m.teams[t.ID] = t
	return nil
}

func (m *memoryTeams) List(ctx context.Context, ownerID string) ([]domain.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Team{}
	for _, t := range m.teams {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryTeams) Rename(ctx context.Context, id, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return fmt.Errorf("team %q: %w", id, domain.ErrNotFound)
	}
	t.Title = title
	m.teams[id] = t
	return nil
}

func (m *memoryTeams) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.teams[id]; !ok {
		return fmt.Errorf("team %q: %w", id, domain.ErrNotFound)
	}
	delete(m.teams, id)
	return nil
}

type memoryPrefs struct {
	prefs domain.Preferences
}

func (m *memoryPrefs) Load(ctx context.Context) (domain.Preferences, error) { return m.prefs, nil }

func (m *memoryPrefs) Save(ctx context.Context, p domain.Preferences) error {
	m.prefs = p
	return nil
}

type staticIdentity string

func (s staticIdentity) CurrentUserID() (string, bool) { return string(s), s != "" }
