package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/liora/internal/infrastructure/config"
	"github.com/hugohenrick/liora/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	appLogger := logger.NewLogger(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Erro ao criar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.SetupRoutes()

	// Iniciar o servidor
	if err := app.Start(ctx); err != nil {
		appLogger.Error("Erro no servidor", "error", err)
		os.Exit(1)
	}
}
