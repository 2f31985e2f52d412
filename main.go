package main

import (
	"context"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"effica-project/backend/collab-service/config"
	"effica-project/backend/collab-service/handlers"
	"effica-project/backend/collab-service/logging"
	"effica-project/backend/collab-service/middleware"
	"effica-project/backend/collab-service/repositories"
	"effica-project/backend/collab-service/services"
)

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Collab Service...")

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_LOAD_ERROR, Description: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(context.TODO())

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection error: %v", err)
	}
	logging.Logger.Info("Event ID: DB_CONNECTED, Description: Connected to MongoDB")

	db := client.Database(cfg.MongoDBName)

	mongoBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "MongoCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	userRepo := repositories.NewUserRepo(db.Collection("users"), mongoBreaker)
	projectRepo := repositories.NewProjectRepo(db.Collection("projects"), mongoBreaker)
	commentRepo := repositories.NewCommentRepo(db.Collection("comments"), mongoBreaker)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: INDEX_CREATION_FAILED, Description: %v", err)
	}

	userService := services.NewUserService(userRepo, cfg.BcryptCost)
	projectService := services.NewProjectService(projectRepo)
	commentService := services.NewCommentService(commentRepo)

	authHandler := handlers.NewAuthHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	commentHandler := handlers.NewCommentHandler(commentService)

	router := handlers.SetupRouter(authHandler, projectHandler, commentHandler)
	corsRouter := middleware.EnableCORS(cfg.CORSOrigin, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_LISTENING, Description: Server is running on port %s", cfg.Port)
	logging.Logger.Fatal(srv.ListenAndServe())
}
