package application

// DefaultColumnTitles are the columns every new board starts with.
func DefaultColumnTitles() []string {
	return []string{"Backlog", "Doing", "Done"}
}

const defaultBoardTitle = "My Board"
