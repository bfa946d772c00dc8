package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ruralcrm/taskboard/backend/internal/handler"
	"github.com/ruralcrm/taskboard/backend/internal/router"
	"github.com/ruralcrm/taskboard/backend/internal/service"
	"github.com/ruralcrm/taskboard/backend/internal/storage/mongo"
	"github.com/ruralcrm/taskboard/shared/config"
	"github.com/ruralcrm/taskboard/shared/jwt"
	"github.com/ruralcrm/taskboard/shared/logger"
	mw "github.com/ruralcrm/taskboard/shared/middleware"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	// .env is optional; container deployments inject env directly
	_ = godotenv.Load(".env")

	cfg := config.MustLoad(configFolder)
	logger.Initialize("taskboard-api", cfg.Public.LogLevel, cfg.Public.LogFile)
	logger.Log.Info("starting taskboard api")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	storage, err := mongo.New(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("store connection failed: %v", err)
	}
	defer storage.Cleanup(context.Background())

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	auth := mw.NewAuth(jwtService)

	board := service.NewBoard(storage)
	column := service.NewColumn(storage, storage)
	card := service.NewCard(storage, storage, storage)
	report := service.NewReport(storage, storage, storage)

	h := handler.New(board, column, card, report, storage)
	r := router.New(h, auth, cfg)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	logger.Log.Infof("server listening on :%s", httpPort)
	if err := http.ListenAndServe(":"+httpPort, r); err != nil {
		logger.Log.Fatalf("server failed: %v", err)
	}
}
