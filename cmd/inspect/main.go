package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"webcars/pkg/config"
)

// Dumps the id and available field names of every document in the cars
// collection, newest first. Useful for checking what shapes older
// clients have written.
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

	docs, err := client.Collection("cars").OrderBy("created", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Failed to fetch cars: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Total cars found: %d\n", len(docs))

	for i, doc := range docs {
		data := doc.Data()

		fields := make([]string, 0, len(data))
		for key := range data {
			fields = append(fields, key)
		}
		sort.Strings(fields)

		fmt.Printf("%d. Car ID: %s\n", i+1, doc.Ref.ID)
		fmt.Printf("   Fields available: %v\n", fields)
	}
}
