package main

import (
	"errors"
	"log"
	"time"

	"adobe-reserve/config"
	"adobe-reserve/expiry"
	"adobe-reserve/login"
)

// Dry-run harness: shows what a real run would submit and, if credentials are
// configured, verifies them with a login-only pass. Never touches the
// reservation endpoint.
func main() {
	log.Println("--- Starting Dry-Run ---")

	portal, err := config.LoadPortal("portal.yml")
	if err != nil {
		log.Fatalf("Failed to load portal config: %v", err)
	}

	now := time.Now()
	dateExpire, err := expiry.NextMonthFirst(now.Year(), now.Month())
	if err != nil {
		log.Fatalf("Failed to compute expiry date: %v", err)
	}

	log.Printf("Login endpoint:       %s", portal.LoginURL)
	log.Printf("Reservation endpoint: %s", portal.ReserveURL)
	log.Printf("Would submit date_expire=%s status_number=0", dateExpire)
	if portal.InsecureSkipVerify {
		log.Println("WARNING: TLS certificate verification is disabled.")
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		log.Printf("Credentials not configured (%v); skipping login check.", err)
		log.Println("--- Dry-Run Finished ---")
		return
	}

	log.Println("\n--- Testing Login ---")
	client, err := login.NewClient(portal)
	if err != nil {
		log.Fatalf("Failed to build HTTP client: %v", err)
	}

	if err := login.Do(client, portal, creds); err != nil {
		if errors.Is(err, login.ErrRejected) {
			log.Fatalf("Portal reached but login was rejected: %v", err)
		}
		log.Fatalf("Login failed before reaching the portal: %v", err)
	}
	log.Println("Login successful. Session cookie received.")

	log.Println("--- Dry-Run Finished ---")
}
