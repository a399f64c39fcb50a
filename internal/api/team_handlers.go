package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/tiagokriok/taskflow/internal/application"
	"github.com/tiagokriok/taskflow/internal/domain"
)

func ownedTeam(c echo.Context, teams *application.TeamService) (domain.Team, error) {
	id := c.Param("team")
	team, err := teams.Get(c.Request().Context(), id)
	if err != nil {
		return domain.Team{}, err
	}
	if team.OwnerID != userID(c) {
		return domain.Team{}, fmt.Errorf("team %s: %w", id, domain.ErrNotFound)
	}
	return team, nil
}

func listTeams(teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := teams.List(c.Request().Context(), userID(c))
		if err != nil {
			return respondError(c, log, "list teams", err)
		}
		out := make([]teamResponse, 0, len(list))
		for _, t := range list {
			out = append(out, toTeamResponse(t))
		}
		return c.JSON(http.StatusOK, out)
	}
}

func createTeam(teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req titleRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "create team", err)
		}
		team, err := teams.Create(c.Request().Context(), userID(c), req.Title)
		if err != nil {
			return respondError(c, log, "create team", err)
		}
		return c.JSON(http.StatusCreated, toTeamResponse(team))
	}
}

func getTeam(teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		team, err := ownedTeam(c, teams)
		if err != nil {
			return respondError(c, log, "get team", err)
		}
		return c.JSON(http.StatusOK, toTeamResponse(team))
	}
}

func renameTeam(teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req titleRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "rename team", err)
		}
		team, err := ownedTeam(c, teams)
		if err != nil {
			return respondError(c, log, "rename team", err)
		}
		if err := teams.Rename(c.Request().Context(), team.ID, req.Title); err != nil {
			return respondError(c, log, "rename team", err)
		}
		team, err = teams.Get(c.Request().Context(), team.ID)
		if err != nil {
			return respondError(c, log, "rename team", err)
		}
		return c.JSON(http.StatusOK, toTeamResponse(team))
	}
}

func deleteTeam(teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		team, err := ownedTeam(c, teams)
		if err != nil {
			return respondError(c, log, "delete team", err)
		}
		if err := teams.Delete(c.Request().Context(), team.ID); err != nil {
			return respondError(c, log, "delete team", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func addMember(teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req memberRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "add member", err)
		}
		team, err := ownedTeam(c, teams)
		if err != nil {
			return respondError(c, log, "add member", err)
		}
		m, err := teams.AddMember(c.Request().Context(), team.ID, req.Name, req.Email)
		if err != nil {
			return respondError(c, log, "add member", err)
		}
		return c.JSON(http.StatusCreated, memberResponse{ID: m.ID, Name: m.Name, Email: m.Email, JoinedAt: m.JoinedAt})
	}
}

func removeMember(teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		team, err := ownedTeam(c, teams)
		if err != nil {
			return respondError(c, log, "remove member", err)
		}
		if err := teams.RemoveMember(c.Request().Context(), team.ID, c.Param("member")); err != nil {
			return respondError(c, log, "remove member", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
