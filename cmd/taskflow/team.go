package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiagokriok/taskflow/internal/domain"
)

func teamCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}
	cmd.AddCommand(teamListCmd(configPath), teamCreateCmd(configPath), teamAddMemberCmd(configPath))
	return cmd
}

func teamListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your teams and their members",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				teams, err := a.teams.List(ctx, ownerID)
				if err != nil {
					return err
				}
				for _, t := range teams {
					fmt.Printf("%s  %s\n", Dim(t.ID), Bold(t.Title))
					for _, m := range t.Members {
						fmt.Printf("    %s %s\n", m.Name, Dim(m.Email))
					}
				}
				return nil
			})
		},
	}
}

func teamCreateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>",
		Short: "Create a team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				team, err := a.teams.Create(ctx, ownerID, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Printf("%s %s (%s)\n", BoldGreen("created"), team.Title, team.ID)
				return nil
			})
		},
	}
}

func teamAddMemberCmd(configPath *string) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "add-member <team-id> <name>",
		Short: "Add a member to a team",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				team, err := a.teams.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if team.OwnerID != ownerID {
					return fmt.Errorf("team %s: %w", args[0], domain.ErrNotFound)
				}
				member, err := a.teams.AddMember(ctx, team.ID, strings.Join(args[1:], " "), email)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s (%s)\n", BoldGreen("added"), member.Name, member.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "member email")
	return cmd
}
