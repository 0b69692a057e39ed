package api

import (
	"log"

	"github.com/WorkNestHQ/job_service/config"
	"github.com/WorkNestHQ/job_service/infra/queue"
	"github.com/WorkNestHQ/job_service/internal/api/rest/handlers"
	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/WorkNestHQ/job_service/internal/repository"
	"github.com/WorkNestHQ/job_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	// One fixed id so concurrent replicas serialize their migrations.
	const migrateLockID int64 = 20260831

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Job{},
		&domain.Application{},
		&domain.StatusChange{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, kafkaProducer, authHelper)
	jobSvc := services.NewJobService(jobRepo)
	applicationSvc := services.NewApplicationService(applicationRepo, jobRepo, kafkaProducer)

	// ---------- Handlers ----------
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewJobHandler(jobSvc, authHelper).SetupRoutes(app)
	handlers.NewApplicationHandler(applicationSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
