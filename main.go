package main

import (
	"fmt"
	"time"

	"adobe-reserve/config"
	"adobe-reserve/expiry"
	"adobe-reserve/logger"
	"adobe-reserve/login"
	"adobe-reserve/reserve"
)

const portalConfigPath = "portal.yml"

func main() {
	log := logger.New()
	defer log.Sync()

	log.Info("Starting Adobe reservation run")

	// --- 1. Load Config & Credentials ---
	creds, err := config.LoadCredentials()
	if err != nil {
		log.Fatalw("Failed to load credentials", "error", err)
	}
	log.Info("Credentials loaded.")

	portal, err := config.LoadPortal(portalConfigPath)
	if err != nil {
		log.Fatalw("Failed to load portal config", "error", err)
	}
	if portal.InsecureSkipVerify {
		log.Warn("TLS certificate verification is DISABLED for this run.")
	}

	// --- 2. Compute the new expiry date ---
	now := time.Now()
	dateExpire, err := expiry.NextMonthFirst(now.Year(), now.Month())
	if err != nil {
		log.Fatalw("Failed to compute expiry date", "error", err)
	}
	log.Infow("Expiry date computed", "date_expire", dateExpire)

	// --- 3. Login ---
	client, err := login.NewClient(portal)
	if err != nil {
		log.Fatalw("Failed to build HTTP client", "error", err)
	}

	if err := login.Do(client, portal, creds); err != nil {
		log.Fatalw("Login failed", "error", err)
	}
	log.Info("Logged in. Session cookie stored.")

	// --- 4. Submit the reservation ---
	body, err := reserve.Submit(&reserve.Request{
		Client:     client,
		Portal:     portal,
		DateExpire: dateExpire,
	})
	if err != nil {
		log.Fatalw("Reservation failed", "error", err)
	}
	log.Info("Reservation submitted. Response follows.")

	// The portal's answer is for the operator to judge; print it as-is.
	fmt.Println(body)
}
