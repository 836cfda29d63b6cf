package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/postcal/postcal/configs"
	"github.com/postcal/postcal/internal/api/handlers"
	"github.com/postcal/postcal/internal/api/middleware"
	job "github.com/postcal/postcal/internal/jobs"
	"github.com/postcal/postcal/internal/queue"
	"github.com/postcal/postcal/internal/repository"
	"github.com/postcal/postcal/internal/service"
	"github.com/postcal/postcal/internal/store"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postStore := newPostStore(cfg, db)
	businessRepo := repository.NewBusinessRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	apiKeyRepo := repository.NewApiKeyRepository(db)

	postService := service.NewPostService(postStore)
	businessService := service.NewBusinessService(businessRepo)
	r2Service := service.NewR2Service(*cfg)
	mediaService := service.NewMediaService(mediaAssetRepo, *r2Service)
	suggestService := service.NewSuggestService(1500 * time.Millisecond)
	apiKeyService := service.NewApiKeyService(apiKeyRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "API server is running"})
	})

	business := handlers.NewBusinessHandler(businessService)
	app.Get("/businesses", business.List)
	app.Post("/businesses", business.Create)
	app.Get("/businesses/:id", business.Get)
	app.Put("/businesses/:id", business.Update)
	app.Delete("/businesses/:id", business.Remove)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	post := handlers.NewPostHandler(postService, client)
	api.Post("/posts", post.CreatePost)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/counts", post.GetCounts)
	api.Get("/posts/:id", post.GetPost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.RemovePost)
	api.Post("/posts/:id/schedule", post.SchedulePost)
	api.Post("/posts/:id/draft", post.RevertToDraft)
	api.Post("/posts/:id/publish", post.PublishPost)
	api.Post("/posts/:id/approve", post.ApprovePost)
	api.Post("/posts/:id/deny", post.DenyPost)

	cal := handlers.NewCalendarHandler(postService)
	api.Get("/calendar/:year/:month", cal.GetMonth)

	suggest := handlers.NewSuggestHandler(suggestService)
	api.Post("/suggest", suggest.Suggest)

	media := handlers.NewMediaHandler(mediaService)
	api.Post("/media", media.Upload)
	api.Get("/media", media.List)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	// cron jobs
	sweepJob := job.NewPublishSweepJob(postStore)

	//queue
	queueW := queue.NewQueue(postStore)

	c := cron.New()
	c.AddFunc("@every 00h05m00s", sweepJob.SweepOverduePosts)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

// newPostStore picks the persistence gateway for the post collection.
// All three implementations satisfy store.Store; callers cannot tell
// them apart.
func newPostStore(cfg *config.Config, db *sql.DB) store.Store {
	switch cfg.PostStore {
	case "memory":
		return store.NewMemoryStore()
	case "rest":
		return store.NewRestStore(cfg.BackendURL, time.Duration(cfg.GatewayTimeoutSeconds)*time.Second)
	default:
		return repository.NewPostRepository(db)
	}
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
