package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"theinsight/config"
	"theinsight/internal/content"
	"theinsight/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewContentRepo(client.Database(cfg.MongoDB))

	questions := content.DefaultQuestions()
	if err := repo.SeedQuestions(ctx, questions); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}
	log.Printf("Seeded %d questions", len(questions))

	results := content.DefaultResults()
	if err := repo.SeedResults(ctx, results); err != nil {
		log.Fatalf("Failed to seed results: %v", err)
	}
	log.Printf("Seeded %d result entries", len(results))
}
