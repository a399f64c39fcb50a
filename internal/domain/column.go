package domain

type Column struct {
	ID      string
	Title   string
	TaskIDs []string
}

func (c Column) Clone() Column {
	c.TaskIDs = cloneStrings(c.TaskIDs)
	return c
}

// IndexOf returns the position of taskID in the column sequence, or -1.
func (c Column) IndexOf(taskID string) int {
	for i, id := range c.TaskIDs {
		if id == taskID {
			return i
		}
	}
	return -1
}
