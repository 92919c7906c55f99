package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"theinsight/config"
	"theinsight/internal/cache"
	"theinsight/internal/content"
	"theinsight/internal/quiz"
	"theinsight/internal/repository"
	"theinsight/internal/service"
	"theinsight/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Load the content banks once; they are immutable for the process
	// lifetime. Empty collections fall back to the built-in tables so a
	// fresh checkout still serves a quiz.
	contentRepo := repository.NewContentRepo(db)

	questionTable, err := contentRepo.LoadQuestions(ctx)
	if err != nil {
		log.Fatal("Failed to load question bank:", err)
	}
	if len(questionTable) == 0 {
		log.Println("Warning: questions collection empty, using built-in table")
		questionTable = content.DefaultQuestions()
	}
	questionBank, err := content.NewQuestionBank(questionTable)
	if err != nil {
		log.Fatal("Failed to build question bank:", err)
	}

	resultTable, err := contentRepo.LoadResults(ctx)
	if err != nil {
		log.Fatal("Failed to load result bank:", err)
	}
	if len(resultTable) == 0 {
		log.Println("Warning: results collection empty, using built-in table")
		resultTable = content.DefaultResults()
	}
	resultBank, err := content.NewResultBank(resultTable)
	if err != nil {
		log.Fatal("Failed to build result bank:", err)
	}
	log.Printf("Content banks loaded: %d questions, %d result entries", questionBank.Len(), resultBank.Len())

	// Caches
	sessionCache := cache.NewSessionCache(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)
	visitCache := cache.NewVisitCache(rdb)

	// Engine configuration
	quizCfg := quiz.DefaultConfig()
	quizCfg.GenderStage = cfg.GenderStage
	quizCfg.AnalyzingStage = cfg.AnalyzingStage
	quizCfg.AnalyzeDelay = time.Duration(cfg.AnalyzeDelayMS) * time.Millisecond
	quizCfg.ReviewDepth = cfg.ReviewDepth
	log.Printf("Stages: %v (review depth %d)", quizCfg.Stages(), quizCfg.ReviewDepth)

	// Services
	sessionSvc := service.NewSessionService(sessionCache, questionBank, resultBank, quizCfg, cfg.BaseURL)
	narrativeSvc := service.NewNarrativeService()
	visitSvc := service.NewVisitService(visitCache)

	container := &rest.Container{
		SessionService:   sessionSvc,
		NarrativeService: narrativeSvc,
		VisitService:     visitSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  POST /v1/sessions/{id}/{start|gender|age|mode}")
		log.Println("  GET  /v1/sessions/{id}/question")
		log.Println("  POST /v1/sessions/{id}/{answers|back|next|frontier|reset}")
		log.Println("  GET  /v1/sessions/{id}/result")
		log.Println("  GET  /v1/results")
		log.Println("  POST /v1/results/narrative")
		log.Println("  GET/POST /v1/visits")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
