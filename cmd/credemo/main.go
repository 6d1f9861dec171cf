package main

import (
	"log"

	"github.com/google/uuid"
)

func main() {
	runID := uuid.New()
	log.Printf("credemo run %s starting", runID)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("run %s failed: %v", runID, err)
	}
}
