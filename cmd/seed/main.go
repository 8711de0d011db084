package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"webcars/internal/seed"
	"webcars/pkg/config"
)

// Inserts the fixed sample listings into the cars collection. Skips
// everything if the collection already has documents.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.ServiceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Printf("Failed to create Firestore client: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	existing, err := client.Collection("cars").Limit(1).Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Failed to check cars collection: %v", err)
		os.Exit(1)
	}

	if len(existing) > 0 {
		log.Printf("Cars already exist in Firestore. Skipping.")
		os.Exit(0)
	}

	for _, listing := range seed.Listings() {
		doc := client.Collection("cars").NewDoc()
		listing.ID = doc.ID
		listing.Created = time.Now()

		if _, err := doc.Set(ctx, listing); err != nil {
			log.Printf("Failed to add listing %q: %v", listing.Name, err)
			os.Exit(1)
		}
		log.Printf("Added listing: %s with ID: %s", listing.Name, listing.ID)
	}

	log.Printf("Database population completed successfully")
}
