package main

import (
	"context"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tiagokriok/taskflow/internal/application"
	"github.com/tiagokriok/taskflow/internal/config"
	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
	"github.com/tiagokriok/taskflow/internal/infrastructure/cache"
	"github.com/tiagokriok/taskflow/internal/infrastructure/db"
	"github.com/tiagokriok/taskflow/internal/infrastructure/preferences"
	"github.com/tiagokriok/taskflow/internal/infrastructure/providers"
	"github.com/tiagokriok/taskflow/internal/infrastructure/repositories"
)

// app holds every long-lived collaborator wired from the configuration.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	adapter  *db.SQLiteAdapter
	redis    *redis.Client
	saver    *application.Saver
	identity domain.Identity

	boards  *application.BoardService
	teams   *application.TeamService
	context *application.ContextService
}

func loadConfig(path string, logOut io.Writer) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func openApp(ctx context.Context, configPath string, logOut io.Writer) (*app, error) {
	cfg, logger, err := loadConfig(configPath, logOut)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.DB.Path
	if dbPath == "" {
		if dbPath, err = db.DefaultDBPath(db.DefaultAppName); err != nil {
			return nil, err
		}
	}
	adapter, err := db.NewSQLiteAdapter(dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, adapter.Raw()); err != nil {
		_ = adapter.Close()
		return nil, err
	}

	a := &app{cfg: cfg, log: logger, adapter: adapter}

	var boardRepo domain.BoardRepository = repositories.NewBoardRepository(adapter)
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			_ = adapter.Close()
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		a.redis = redis.NewClient(opts)
		if err := a.redis.Ping(ctx).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable, board cache falls back to sqlite")
		}
		boardRepo = cache.NewBoardCache(boardRepo, a.redis, cfg.Redis.TTL)
	}
	teamRepo := repositories.NewTeamRepository(adapter)

	a.saver = application.NewSaver(boardRepo, logger, cfg.Save.Timeout)
	a.identity = providers.NewLocalIdentity(cfg.User.ID)
	a.boards = application.NewBoardService(boardRepo, teamRepo, engine.New(), a.saver, logger)
	a.teams = application.NewTeamService(teamRepo, a.boards)

	prefsPath := cfg.Preferences.Path
	if prefsPath == "" {
		if prefsPath, err = preferences.DefaultPath(db.DefaultAppName); err != nil {
			a.Close()
			return nil, err
		}
	}
	bootstrap := application.NewBootstrapService(a.identity, a.boards)
	a.context = application.NewContextService(preferences.NewFileStore(prefsPath), bootstrap, a.boards, logger)
	return a, nil
}

// ownerID returns the configured local user.
func (a *app) ownerID() (string, error) {
	id, ok := a.identity.CurrentUserID()
	if !ok {
		return "", application.ErrSignedOut
	}
	return id, nil
}

// Close flushes pending board saves before releasing storage.
func (a *app) Close() {
	a.saver.Close()
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if err := a.adapter.Close(); err != nil {
		a.log.WithError(err).Warn("close database")
	}
}
