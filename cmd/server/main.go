package main

import (
	"flag"
	"log/slog"
	"os"

	"dooo/internal/config"
	"dooo/internal/handler"
	"dooo/internal/health"
	"dooo/internal/logger"
	"dooo/internal/model"
	"dooo/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.Organization{}, &model.User{}, &model.Todo{},
		&model.Comment{}, &model.UserItemView{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	if cfg.AI.APIKey == "" {
		slog.Warn("no AI provider key configured, Dooo will use canned responses")
	}

	r := handler.NewRouter(handler.Deps{
		Auth:         service.NewAuthService(db),
		Orgs:         service.NewOrganizationService(db),
		Todos:        service.NewTodoService(db),
		Comments:     service.NewCommentService(db),
		Views:        service.NewViewService(db),
		AI:           service.NewAIService(cfg.AI),
		AuthSecret:   []byte(cfg.Auth.Secret),
		AuthRequired: cfg.Auth.Required,
	})
	health.RegisterRoutes(r, db)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
