package main

import (
	"log"
	"time"

	"invigileye_backend/internals/configs"
	"invigileye_backend/internals/features/maintenance/uploads"
)

// Removes every leftover roster upload. Safe to run while the server is stopped.
func main() {
	configs.LoadEnv()

	n, err := uploads.Sweep(configs.UploadDir, 0, time.Now())
	if err != nil {
		log.Fatalf("❌ cleanup %s: %v", configs.UploadDir, err)
	}
	log.Printf("✅ removed %d file(s) from %s", n, configs.UploadDir)
}
