package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/andresmx/tasktrack/config"
	"github.com/andresmx/tasktrack/pkg/helpers"
)

// Seeds a demo user with a few tasks for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@tasktrack.local"
	password := "Passw0rd"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	tasks := []struct {
		title, description, status string
	}{
		{"Buy milk", "", "pending"},
		{"Write weekly report", "due Friday", "in_progress"},
		{"Renew domain", "expires next month", "completed"},
	}
	for _, t := range tasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (owner_id, title, description, status)
			VALUES ($1, $2, $3, $4)
		`, id, t.title, t.description, t.status); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
	}
	fmt.Printf("seeded %d tasks for %s\n", len(tasks), email)
}
