package domain

type ViewMode string

const (
	ViewBoard    ViewMode = "board"
	ViewList     ViewMode = "list"
	ViewCalendar ViewMode = "calendar"
)

// Preferences is the per-user UI state kept across sessions.
type Preferences struct {
	LastBoardID string   `json:"last_board_id"`
	LastTeamID  string   `json:"last_team_id"`
	ViewMode    ViewMode `json:"view_mode"`
	ShowDetails bool     `json:"show_details"`
}
