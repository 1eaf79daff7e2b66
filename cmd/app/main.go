package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/bravequest/quest-engine/pkg/handlers"
	"github.com/bravequest/quest-engine/pkg/notify"
	"github.com/bravequest/quest-engine/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(cfg)
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	questsTable := os.Getenv("DYNAMODB_QUESTS_TABLE_NAME")
	unlocksTable := os.Getenv("DYNAMODB_UNLOCKS_TABLE_NAME")
	redemptionsTable := os.Getenv("DYNAMODB_REDEMPTIONS_TABLE_NAME")

	if accountsTable == "" || questsTable == "" || unlocksTable == "" || redemptionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// Notification publisher. The queue is optional; without it events are
	// simply not dispatched.
	var notifier notify.Publisher = &notify.NoOpPublisher{}
	if queueURL := os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		notifier = notify.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
	} else {
		log.Println("SQS_NOTIFICATIONS_QUEUE_URL not set, notifications disabled")
	}

	// Create our storage implementation
	store := dynamodb.New(dbClient, accountsTable, questsTable, unlocksTable, redemptionsTable)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := handlers.NewRouter(store, notifier, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
