package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:00 AM
			if now.Hour() == 2 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [02:00]...")

				if err := RefreshAllCGPAs(db); err != nil {
					log.Printf("Error refreshing CGPAs: %v", err)
				}
			}
		}
	}()
}
