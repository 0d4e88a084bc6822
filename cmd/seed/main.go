package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/modelforge/modelforge/config"
	"github.com/modelforge/modelforge/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@modelforge.dev"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, email_verified)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var keyID string
	if err := db.QueryRow(`
		INSERT INTO open_ai_keys (api_key, user_id)
		VALUES ('sk-demo-0000', $1)
		RETURNING id
	`, userID).Scan(&keyID); err != nil {
		log.Fatalf("failed to seed api key: %v", err)
	}

	var apiID string
	if err := db.QueryRow(`
		INSERT INTO llm_apis (name, endpoint, user_id)
		VALUES ('demo-llm', 'https://api.example.com/v1', $1)
		RETURNING id
	`, userID).Scan(&apiID); err != nil {
		log.Fatalf("failed to seed llm api: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO chat_models (model_name, model_version, api_key_id)
		VALUES ('gpt-4o', '2024-08-06', $1)
	`, keyID); err != nil {
		log.Fatalf("failed to seed chat model: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO autonomous_agents (name, llm_id, user_id)
		VALUES ('demo-agent', $1, $2)
	`, apiID, userID); err != nil {
		log.Fatalf("failed to seed agent: %v", err)
	}

	fmt.Println("seeded demo llm api, chat model and agent")
}
