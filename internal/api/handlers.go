package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/tiagokriok/taskflow/internal/application"
	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

// Register wires every route onto e. Routes under /api require a bearer token.
func Register(e *echo.Echo, boards *application.BoardService, teams *application.TeamService, auth Authenticator, log logrus.FieldLogger) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	g := e.Group("/api", RequireUser(auth))

	g.GET("/boards", listBoards(boards, log))
	g.POST("/boards", createBoard(boards, log))
	g.GET("/boards/:board", getBoard(boards, log))
	g.PATCH("/boards/:board", renameBoard(boards, log))
	g.DELETE("/boards/:board", deleteBoard(boards, log))
	g.PUT("/boards/:board/teams", assignTeams(boards, teams, log))
	g.GET("/boards/:board/list", listView(boards, log))
	g.GET("/boards/:board/calendar", calendarView(boards, log))

	g.POST("/boards/:board/columns", addColumn(boards, log))
	g.PUT("/boards/:board/columns/order", reorderColumns(boards, log))
	g.PATCH("/boards/:board/columns/:column", renameColumn(boards, log))
	g.DELETE("/boards/:board/columns/:column", deleteColumn(boards, log))

	g.POST("/boards/:board/tasks", addTask(boards, log))
	g.PATCH("/boards/:board/tasks/:task", updateTask(boards, log))
	g.POST("/boards/:board/tasks/:task/move", moveTask(boards, log))
	g.DELETE("/boards/:board/tasks/:task", deleteTask(boards, log))

	g.PUT("/boards/:board/tags/:label", upsertTag(boards, log))
	g.DELETE("/boards/:board/tags/:label", deleteTag(boards, log))

	g.GET("/teams", listTeams(teams, log))
	g.POST("/teams", createTeam(teams, log))
	g.GET("/teams/:team", getTeam(teams, log))
	g.PATCH("/teams/:team", renameTeam(teams, log))
	g.DELETE("/teams/:team", deleteTeam(teams, log))
	g.POST("/teams/:team/members", addMember(teams, log))
	g.DELETE("/teams/:team/members/:member", removeMember(teams, log))
}

// ownedSession opens the board named in the path, hiding boards owned by
// someone else behind NotFound.
func ownedSession(c echo.Context, boards *application.BoardService) (*application.BoardSession, error) {
	return boards.OpenOwned(c.Request().Context(), c.Param("board"), userID(c))
}

// mutate runs op on the caller's board and replies with the new snapshot.
func mutate(boards *application.BoardService, log logrus.FieldLogger, op string, fn func(c echo.Context, s *application.BoardSession) (domain.Board, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := ownedSession(c, boards)
		if err != nil {
			return respondError(c, log, op, err)
		}
		board, err := fn(c, session)
		if err != nil {
			return respondError(c, log, op, err)
		}
		return c.JSON(http.StatusOK, toBoardResponse(board))
	}
}

func bindJSON(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return fmt.Errorf("invalid body: %w", domain.ErrInvalidArgument)
	}
	return nil
}

func listBoards(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := boards.ListBoards(c.Request().Context(), userID(c))
		if err != nil {
			return respondError(c, log, "list boards", err)
		}
		out := make([]boardSummaryResponse, 0, len(list))
		for _, b := range list {
			out = append(out, boardSummaryResponse{ID: b.ID, Title: b.Title})
		}
		return c.JSON(http.StatusOK, out)
	}
}

func createBoard(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req titleRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "create board", err)
		}
		board, err := boards.CreateBoard(c.Request().Context(), userID(c), req.Title)
		if err != nil {
			return respondError(c, log, "create board", err)
		}
		return c.JSON(http.StatusCreated, toBoardResponse(board))
	}
}

func getBoard(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := ownedSession(c, boards)
		if err != nil {
			return respondError(c, log, "get board", err)
		}
		return c.JSON(http.StatusOK, toBoardResponse(session.Snapshot()))
	}
}

func renameBoard(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req titleRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "rename board", err)
		}
		session, err := ownedSession(c, boards)
		if err != nil {
			return respondError(c, log, "rename board", err)
		}
		if err := boards.RenameBoard(c.Request().Context(), c.Param("board"), req.Title); err != nil {
			return respondError(c, log, "rename board", err)
		}
		return c.JSON(http.StatusOK, toBoardResponse(session.Snapshot()))
	}
}

func deleteBoard(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := ownedSession(c, boards); err != nil {
			return respondError(c, log, "delete board", err)
		}
		if err := boards.DeleteBoard(c.Request().Context(), c.Param("board")); err != nil {
			return respondError(c, log, "delete board", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func assignTeams(boards *application.BoardService, teams *application.TeamService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req idsRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "assign teams", err)
		}
		if _, err := ownedSession(c, boards); err != nil {
			return respondError(c, log, "assign teams", err)
		}
		for _, id := range req.IDs {
			team, err := teams.Get(c.Request().Context(), id)
			if err == nil && team.OwnerID != userID(c) {
				err = fmt.Errorf("team %s: %w", id, domain.ErrNotFound)
			}
			if err != nil {
				return respondError(c, log, "assign teams", err)
			}
		}
		board, err := boards.AssignTeams(c.Request().Context(), c.Param("board"), req.IDs)
		if err != nil {
			return respondError(c, log, "assign teams", err)
		}
		return c.JSON(http.StatusOK, toBoardResponse(board))
	}
}

func listView(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := ownedSession(c, boards)
		if err != nil {
			return respondError(c, log, "list view", err)
		}
		filters := application.ListTaskFilters{
			TitleQuery: c.QueryParam("q"),
			ColumnID:   c.QueryParam("column"),
			Tag:        c.QueryParam("tag"),
			Priority:   domain.Priority(c.QueryParam("priority")),
			MemberID:   c.QueryParam("member"),
		}
		if !filters.Priority.Valid() {
			return c.String(http.StatusBadRequest, "unknown priority")
		}
		return c.JSON(http.StatusOK, toListResponse(application.ListTasks(session.Snapshot(), filters)))
	}
}

// calendarView expects ?month=YYYY-MM and defaults to the current month.
func calendarView(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := ownedSession(c, boards)
		if err != nil {
			return respondError(c, log, "calendar view", err)
		}
		year, month, err := parseMonth(c.QueryParam("month"), time.Now().UTC())
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, toCalendarResponse(application.CalendarMonth(session.Snapshot(), year, month)))
	}
}

func parseMonth(raw string, now time.Time) (int, time.Month, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Year(), now.Month(), nil
	}
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("month must be YYYY-MM")
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("month must be YYYY-MM")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("month must be YYYY-MM")
	}
	return year, time.Month(m), nil
}

func addColumn(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req titleRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "add column", err)
		}
		session, err := ownedSession(c, boards)
		if err != nil {
			return respondError(c, log, "add column", err)
		}
		board, _, err := session.AddColumn(req.Title)
		if err != nil {
			return respondError(c, log, "add column", err)
		}
		return c.JSON(http.StatusCreated, toBoardResponse(board))
	}
}

func renameColumn(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "rename column", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		var req titleRequest
		if err := bindJSON(c, &req); err != nil {
			return domain.Board{}, err
		}
		return s.RenameColumn(c.Param("column"), req.Title)
	})
}

func deleteColumn(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "delete column", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		return s.DeleteColumn(c.Param("column"))
	})
}

func reorderColumns(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "reorder columns", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		var req idsRequest
		if err := bindJSON(c, &req); err != nil {
			return domain.Board{}, err
		}
		return s.ReorderColumns(req.IDs)
	})
}

func addTask(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req addTaskRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, log, "add task", err)
		}
		session, err := ownedSession(c, boards)
		if err != nil {
			return respondError(c, log, "add task", err)
		}
		_, task, err := session.AddTask(req.ColumnID, req.Title)
		if err != nil {
			return respondError(c, log, "add task", err)
		}
		return c.JSON(http.StatusCreated, toTaskResponse(task))
	}
}

func updateTask(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "update task", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		var req taskChangesRequest
		if err := bindJSON(c, &req); err != nil {
			return domain.Board{}, err
		}
		changes, err := req.toChanges()
		if err != nil {
			return domain.Board{}, err
		}
		return s.UpdateTask(c.Param("task"), changes)
	})
}

func moveTask(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "move task", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		var dest engine.Destination
		if err := bindJSON(c, &dest); err != nil {
			return domain.Board{}, err
		}
		return s.MoveTask(c.Param("task"), dest)
	})
}

func deleteTask(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "delete task", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		return s.DeleteTask(c.Param("task"))
	})
}

func upsertTag(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "upsert tag", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		var req tagRequest
		if err := bindJSON(c, &req); err != nil {
			return domain.Board{}, err
		}
		return s.UpsertTag(tagLabel(c), domain.TagColor(req.Color))
	})
}

func deleteTag(boards *application.BoardService, log logrus.FieldLogger) echo.HandlerFunc {
	return mutate(boards, log, "delete tag", func(c echo.Context, s *application.BoardSession) (domain.Board, error) {
		return s.DeleteTag(tagLabel(c))
	})
}

// tagLabel returns the decoded label path segment; labels may contain spaces.
func tagLabel(c echo.Context) string {
	raw := c.Param("label")
	if label, err := url.PathUnescape(raw); err == nil {
		return label
	}
	return raw
}
