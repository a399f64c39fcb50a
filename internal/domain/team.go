package domain

import "time"

// Team is an independent aggregate; boards reference teams by id.
type Team struct {
	ID      string
	OwnerID string
	Title   string
	Members []TeamMember
}

type TeamMember struct {
	ID       string
	Name     string
	Email    string
	JoinedAt time.Time
}

// MemberNames indexes member names by id across teams. The first team listing
// a member wins.
func MemberNames(teams []Team) map[string]string {
	out := make(map[string]string)
	for _, team := range teams {
		for _, m := range team.Members {
			if _, ok := out[m.ID]; !ok {
				out[m.ID] = m.Name
			}
		}
	}
	return out
}
