package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// TeamListener is told about team changes that affect open boards.
// BoardService implements it.
type TeamListener interface {
	TeamChanged(ctx context.Context, teamID string)
	TeamDeleted(ctx context.Context, teamID string)
}

type TeamService struct {
	repo     domain.TeamRepository
	listener TeamListener
	now      func() time.Time
}

// NewTeamService creates the service; listener may be nil.
func NewTeamService(repo domain.TeamRepository, listener TeamListener) *TeamService {
	return &TeamService{
		repo:     repo,
		listener: listener,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *TeamService) Create(ctx context.Context, ownerID, title string) (domain.Team, error) {
	ownerID = strings.TrimSpace(ownerID)
	title = strings.TrimSpace(title)
	if ownerID == "" {
		return domain.Team{}, fmt.Errorf("owner id is required: %w", domain.ErrInvalidArgument)
	}
	if title == "" {
		return domain.Team{}, fmt.Errorf("team title is required: %w", domain.ErrInvalidArgument)
	}
	team := domain.Team{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   title,
		Members: []domain.TeamMember{},
	}
	if err := s.repo.Save(ctx, team); err != nil {
		return domain.Team{}, fmt.Errorf("create team: %w", err)
	}
	return team, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (domain.Team, error) {
	return s.repo.Get(ctx, teamID)
}

func (s *TeamService) List(ctx context.Context, ownerID string) ([]domain.Team, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *TeamService) Rename(ctx context.Context, teamID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("team title is required: %w", domain.ErrInvalidArgument)
	}
	return s.repo.Rename(ctx, teamID, title)
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	if err := s.repo.Delete(ctx, teamID); err != nil {
		return err
	}
	if s.listener != nil {
		s.listener.TeamDeleted(ctx, teamID)
	}
	return nil
}

// AddMember appends a new member to a team. Emails are unique within a team.
func (s *TeamService) AddMember(ctx context.Context, teamID, name, email string) (domain.TeamMember, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return domain.TeamMember{}, fmt.Errorf("member name is required: %w", domain.ErrInvalidArgument)
	}
	team, err := s.repo.Get(ctx, teamID)
	if err != nil {
		return domain.TeamMember{}, err
	}
	if email != "" {
		for _, m := range team.Members {
			if strings.EqualFold(m.Email, email) {
				return domain.TeamMember{}, fmt.Errorf("member %s already in team: %w", email, domain.ErrInvalidArgument)
			}
		}
	}
	member := domain.TeamMember{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		JoinedAt: s.now(),
	}
	team.Members = append(team.Members, member)
	if err := s.repo.Save(ctx, team); err != nil {
		return domain.TeamMember{}, fmt.Errorf("add team member: %w", err)
	}
	s.changed(ctx, teamID)
	return member, nil
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, memberID string) error {
	team, err := s.repo.Get(ctx, teamID)
	if err != nil {
		return err
	}
	kept := make([]domain.TeamMember, 0, len(team.Members))
	for _, m := range team.Members {
		if m.ID != memberID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(team.Members) {
		return fmt.Errorf("member %q: %w", memberID, domain.ErrNotFound)
	}
	team.Members = kept
	if err := s.repo.Save(ctx, team); err != nil {
		return fmt.Errorf("remove team member: %w", err)
	}
	s.changed(ctx, teamID)
	return nil
}

func (s *TeamService) changed(ctx context.Context, teamID string) {
	if s.listener != nil {
		s.listener.TeamChanged(ctx, teamID)
	}
}
