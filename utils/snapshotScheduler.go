package utils

import (
	"log"
	"time"

	"digimarket/store"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SNAPSHOT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSnapshotScheduler re-mirrors every collection on an interval so
// a transient write failure cannot leave a snapshot key stale forever.
func StartSnapshotScheduler(c *cron.Cron) {
	c.AddFunc("*/5 * * * *", func() {
		store.App.Resync()
		logScheduler("Snapshot resync completed")
	})
	logScheduler("Snapshot scheduler started - runs every 5 minutes")
}

// InitializeSnapshotScheduler initializes the snapshot scheduler
func InitializeSnapshotScheduler() *cron.Cron {
	logScheduler("Initializing snapshot scheduler...")

	c := cron.New()
	StartSnapshotScheduler(c)
	c.Start()

	logScheduler("Snapshot scheduler initialized successfully")
	return c
}
