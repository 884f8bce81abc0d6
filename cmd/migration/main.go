package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/liora/internal/infrastructure/config"
	"github.com/hugohenrick/liora/internal/infrastructure/database"
	"github.com/hugohenrick/liora/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	dir := flag.String("dir", "migrations", "diretório com os arquivos de migração")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	migrator, err := database.NewMigrator(*dir, cfg.MigrationURL(), logger.NewLogger(logger.Options{Level: "info"}))
	if err != nil {
		log.Fatalf("Erro ao preparar migrações: %v", err)
	}
	defer migrator.Close()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = migrator.Version()
		if err == nil {
			log.Printf("Versão atual: %d (dirty=%t)", version, dirty)
		}
	default:
		log.Fatalf("Comando desconhecido %q. Use up, down ou version", command)
	}
	if err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	if command != "version" {
		log.Println("Migrações executadas com sucesso!")
	}
}
