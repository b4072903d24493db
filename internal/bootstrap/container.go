package bootstrap

import (
	"context"
	"log"

	"frontera-be/internal/config"
	"frontera-be/internal/controller"
	"frontera-be/internal/pkg/logger"
	"frontera-be/internal/pkg/mailer"
	"frontera-be/internal/repository/memory"
	"frontera-be/internal/repository/unitofwork"
	"frontera-be/internal/service"
	"frontera-be/pkg/embedding"
	"frontera-be/pkg/llm/factory"

	pkgNats "frontera-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	ApplicationController controller.IApplicationController
	CoachingController    controller.ICoachingController
	AssessmentController  controller.IAssessmentController
	BetController         controller.IBetController
	BillingController     controller.IBillingController
	AdminController       controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory coaching session cache
	sessionRepo := memory.NewSessionRepository()

	// 4. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedKnowledgeDocs, pubSub)

	// Ingest logs per-chunk; keep that out of the main log the admin reads.
	ingestLogger := logger.NewIsolatedLogger("knowledge_ingest.log")
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedKnowledgeDocs,
		uowFactory,
		embeddingProvider,
		ingestLogger,
	)

	authService := service.NewAuthService(uowFactory, emailService)
	oauthService := service.NewOAuthService(uowFactory)
	applicationService := service.NewApplicationService(uowFactory, natsPub, sysLogger)
	coachingService := service.NewCoachingService(uowFactory, llmProvider, sessionRepo, natsPub, sysLogger)
	suggestionService := service.NewSuggestionService(uowFactory, llmProvider, embeddingProvider, rdb, sysLogger)
	assessmentService := service.NewAssessmentService(uowFactory, natsPub, sysLogger)
	betService := service.NewBetService(uowFactory, natsPub, sysLogger)
	billingService := service.NewBillingService(uowFactory, emailService, natsPub, cfg.Billing, sysLogger)
	adminService := service.NewAdminService(uowFactory, emailService, publisherService, natsPub, sysLogger)

	// 6. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService),
		ApplicationController: controller.NewApplicationController(applicationService),
		CoachingController:    controller.NewCoachingController(coachingService, suggestionService),
		AssessmentController:  controller.NewAssessmentController(assessmentService),
		BetController:         controller.NewBetController(betService),
		BillingController:     controller.NewBillingController(billingService),
		AdminController:       controller.NewAdminController(adminService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
