// Package engine applies structural edits to a board snapshot. Every
// operation takes a domain.Board value, works on a deep copy and returns the
// next consistent snapshot; the input is never modified, and a failed
// operation leaves nothing half-applied.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// memberLookup resolves a member id to a display name.
type memberLookup interface {
	MemberName(id string) (string, bool)
}

type memberMap map[string]string

func (m memberMap) MemberName(id string) (string, bool) {
	name, ok := m[id]
	return name, ok && name != ""
}

type Engine struct {
	newID   func() string
	now     func() time.Time
	members memberLookup
}

type Option func(*Engine)

// WithIDGenerator replaces the uuid generator, mostly for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// WithClock replaces the wall clock used for activity timestamps.
func WithClock(fn func() time.Time) Option {
	return func(e *Engine) { e.now = fn }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithMembers returns a copy of e that names members from the given teams.
func (e *Engine) WithMembers(teams []domain.Team) *Engine {
	cp := *e
	cp.members = memberMap(domain.MemberNames(teams))
	return &cp
}

func (e *Engine) memberName(id string) string {
	if e.members != nil {
		if name, ok := e.members.MemberName(id); ok {
			return name
		}
	}
	return id
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrInvalidArgument)
}

func requireTitle(kind, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalid("%s title is required", kind)
	}
	return title, nil
}
