// Package app wires the store, completion provider and services into a
// runnable application.
package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mantasj/gidas/internal/config"
	"github.com/mantasj/gidas/internal/curriculum"
	"github.com/mantasj/gidas/internal/llm"
	"github.com/mantasj/gidas/internal/recommend"
	"github.com/mantasj/gidas/internal/store"
	"github.com/mantasj/gidas/internal/tutor"
)

// App holds the assembled application.
type App struct {
	Config    config.Config
	Log       *logrus.Logger
	Store     *store.Store
	Tutor     *tutor.Service
	Recommend *recommend.Service
}

// New opens the store, builds the completion provider from the
// environment and wires the tutoring services.
func New(dbPath string) (*App, error) {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		st.Close()
		return nil, err
	}

	provider, err := llm.NewProvider(llmCfg, st.EventRepo(), log)
	if err != nil {
		st.Close()
		return nil, err
	}

	tutorSvc := tutor.NewService(
		provider,
		st.ProgressRepo(),
		st.ChatRepo(),
		curriculum.DefaultPersonas(),
		curriculum.DefaultTable(),
		tutor.DefaultConfig(),
		log,
	)
	recommendSvc := recommend.NewService(provider, st.ProgressRepo(), recommend.DefaultConfig(), log)

	return &App{
		Config:    cfg,
		Log:       log,
		Store:     st,
		Tutor:     tutorSvc,
		Recommend: recommendSvc,
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() error {
	return a.Store.Close()
}
