package main

import (
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/hugohenrick/precificacao-api/internal/config"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	command := flag.String("cmd", "up", "comando: up, down ou version")
	flag.Parse()

	m, err := database.NewMigrator(config.DatabaseFromEnv().ConnectionString())
	if err != nil {
		log.Fatalf("Erro ao preparar migrações: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		// Reverte apenas a última migração
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatalf("Erro ao consultar versão: %v", verr)
		}
		log.Printf("Versão atual: %d (dirty=%t)", version, dirty)
		return
	default:
		log.Fatalf("Comando desconhecido: %s", *command)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Println("Migrações executadas com sucesso!")
}
