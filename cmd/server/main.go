// Package main is the entry point for the election campaign manager.
//
// Its job is deliberately small: load configuration, build the logger,
// construct the optional AI client, and hand everything to the server
// package. All actual logic lives in internal/.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sakif/election-manager/internal/generator"
	"github.com/sakif/election-manager/internal/generator/gemini"
	"github.com/sakif/election-manager/internal/server"
)

func main() {
	// A .env file is a convenience for local development; in production
	// the variables come from the real environment and the file is absent.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", slog.String("error", err.Error()))
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	dbPath := "data/election.db"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("dir", filepath.Dir(dbPath)),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// The Gemini client is optional — without GEMINI_API_KEY the server
	// starts normally and only /api/generate-program reports the missing
	// configuration.
	var gen generator.TextGenerator
	genCfg := gemini.DefaultConfig()
	genCfg.APIKey = os.Getenv("GEMINI_API_KEY")
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		genCfg.Model = model
	}

	if genCfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set — program generation will be unavailable")
	} else {
		client, err := gemini.New(genCfg, logger)
		if err != nil {
			logger.Warn("Gemini client unavailable — program generation will return errors",
				slog.String("error", err.Error()),
			)
		} else {
			gen = client
		}
	}

	srv, err := server.New(server.Config{Port: port, DBPath: dbPath}, logger, gen)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
