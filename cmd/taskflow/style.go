package main

import "github.com/fatih/color"

var (
	Bold       = color.New(color.Bold).SprintFunc()
	Dim        = color.New(color.Faint).SprintFunc()
	BoldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen  = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
	Red        = color.New(color.FgRed).SprintFunc()
	Yellow     = color.New(color.FgYellow).SprintFunc()
	Green      = color.New(color.FgGreen).SprintFunc()
)

func priorityLabel(p string) string {
	switch p {
	case "high":
		return Red("high")
	case "medium":
		return Yellow("medium")
	case "low":
		return Green("low")
	default:
		return Dim("-")
	}
}
