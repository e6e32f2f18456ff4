package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/imf-ops/gadget-api/config"
	"github.com/imf-ops/gadget-api/internal/domain/entity"
	"github.com/imf-ops/gadget-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "hunt"
	password := "should-have-accepted"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET updated_at = now()
		RETURNING id
	`, username, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	seedGadgets := []struct {
		name   string
		status string
	}{
		{"The Nightingale", entity.StatusAvailable},
		{"The Kraken", entity.StatusDeployed},
		{"Ghost", entity.StatusDestroyed},
	}
	for _, g := range seedGadgets {
		var gid string
		if err := db.QueryRow(`
			INSERT INTO gadgets (name, status)
			VALUES ($1, $2)
			RETURNING id
		`, g.name, g.status).Scan(&gid); err != nil {
			log.Fatalf("failed to seed gadget %q: %v", g.name, err)
		}
		fmt.Printf("seeded gadget: id=%s name=%q status=%s\n", gid, g.name, g.status)
	}
}
