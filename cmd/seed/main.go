package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/barangaylink/api/config"
	"github.com/barangaylink/api/pkg/helpers"
)

// seed provisions a demo barangay with its submitter profile plus a matching
// credential store account, and prints a dev bearer token for the submitter.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	appDB, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open application db: %v", err)
	}
	defer func() { _ = appDB.Close() }()

	authDB, err := sql.Open("pgx", cfg.AuthPostgresDSN())
	if err != nil {
		log.Fatalf("failed to open credential store: %v", err)
	}
	defer func() { _ = authDB.Close() }()

	email := "kapitan@example.ph"
	phone := "0917-555-0101"
	name := "Demo Kapitan"

	var profileID string
	err = appDB.QueryRow(`
		INSERT INTO profiles (email, phone, name, role, status)
		VALUES ($1, $2, $3, 'resident', 'pending')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, phone, name).Scan(&profileID)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s email=%s phone=%s\n", profileID, email, phone)

	var barangayID string
	err = appDB.QueryRow(`
		INSERT INTO barangays (name, submitter_id)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET submitter_id = EXCLUDED.submitter_id
		RETURNING id
	`, "Barangay San Roque", profileID).Scan(&barangayID)
	if err != nil {
		log.Fatalf("failed to seed barangay: %v", err)
	}
	fmt.Printf("seeded barangay: id=%s submitter=%s\n", barangayID, profileID)

	var accountID string
	err = authDB.QueryRow(`
		INSERT INTO accounts (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`, email).Scan(&accountID)
	if err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	fmt.Printf("seeded account: id=%s email=%s\n", accountID, email)

	// Dev bearer token for exercising the escalation endpoint locally
	jwtManager := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.AccessTTL)
	token, exp, err := jwtManager.GenerateAccessToken(profileID)
	if err != nil {
		log.Fatalf("failed to mint token: %v", err)
	}
	fmt.Printf("dev token (expires %s):\n%s\n", exp.Format("2006-01-02 15:04"), token)
}
