package database

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hugohenrick/liora/pkg/logger"
)

// Migrator aplica as migrações do diretório informado
type Migrator struct {
	m      *migrate.Migrate
	logger logger.Logger
}

// NewMigrator cria um Migrator para o banco em dbURL usando os arquivos de dir
func NewMigrator(dir, dbURL string, log logger.Logger) (*Migrator, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver diretório de migrações: %w", err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), dbURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrate: %w", err)
	}

	return &Migrator{m: m, logger: log}, nil
}

// Up aplica todas as migrações pendentes
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	mg.logVersion()
	return nil
}

// Down desfaz a última migração aplicada
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao desfazer migração: %w", err)
	}
	mg.logVersion()
	return nil
}

// Version retorna a versão atual e se o banco está "dirty"
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close libera a fonte e a conexão do migrate
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (mg *Migrator) logVersion() {
	version, dirty, err := mg.Version()
	if err != nil {
		mg.logger.Warn("Não foi possível ler a versão das migrações", "error", err)
		return
	}
	mg.logger.Info("Migrações aplicadas", "version", version, "dirty", dirty)
}
