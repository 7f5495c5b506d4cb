package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"widia-api/config"
	"widia-api/db"
	"widia-api/dto"
	"widia-api/logger"
	"widia-api/repositories"
)

const dumpLimit = 1000

// checkdb prints what the API has stored: the collections of the configured
// database and every recent contact form submission.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Log.Errorf("failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	if err := run(ctx, store); err != nil {
		logger.Log.Errorf("checkdb: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store *db.Mongo) error {
	database := store.Database()
	fmt.Printf("database: %s\n", database.Name())

	names, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	fmt.Printf("collections: %v\n", names)

	forms, err := repositories.NewContactFormRepository(database).ListRecent(ctx, dumpLimit)
	if err != nil {
		return fmt.Errorf("list contact forms: %w", err)
	}
	fmt.Printf("contact forms: %d\n", len(forms))

	out := make([]dto.ContactFormDTO, 0, len(forms))
	for _, f := range forms {
		out = append(out, dto.NewContactFormDTO(f))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
