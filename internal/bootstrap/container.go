package bootstrap

import (
	"context"
	"log"
	"time"

	"crossword-collab-be/internal/config"
	"crossword-collab-be/internal/controller"
	"crossword-collab-be/internal/handler"
	"crossword-collab-be/internal/pkg/logger"
	"crossword-collab-be/internal/pkg/mailer"
	"crossword-collab-be/internal/repository/memory"
	"crossword-collab-be/internal/repository/unitofwork"
	"crossword-collab-be/internal/service"
	"crossword-collab-be/internal/websocket"
	pktNats "crossword-collab-be/pkg/nats"
	"crossword-collab-be/pkg/presence"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const activityTopic = "session.activity"

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	PuzzleController  controller.IPuzzleController
	InviteController  controller.IInviteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	SyncHandler  *handler.SyncHandler
	WebSocketHub *websocket.Hub
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
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
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
	presenceStore := presence.NewStore(rdb)

	// WebSocket Hub
	syncLogger := logger.NewIsolatedLogger(cfg.App.SyncLogFilePath)
	wsHub := websocket.NewHub(presenceStore, syncLogger)
	go wsHub.Run()

	// Puzzle cache
	puzzleCache := memory.NewPuzzleCache(time.Duration(cfg.App.PuzzleCacheTTLMin) * time.Minute)

	// 3. Services
	publisherService := service.NewPublisherService(activityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		activityTopic,
		uowFactory,
	)

	sessionService := service.NewSessionService(uowFactory, presenceStore, natsPub)
	progressService := service.NewProgressService(uowFactory, wsHub, publisherService, natsPub)
	puzzleService := service.NewPuzzleService(uowFactory, puzzleCache)
	inviteService := service.NewInviteService(uowFactory, emailService)

	sysLogger.Info("bootstrap", "container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// 4. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService, progressService, inviteService),
		PuzzleController:  controller.NewPuzzleController(puzzleService),
		InviteController:  controller.NewInviteController(inviteService),

		SyncHandler:  handler.NewSyncHandler(wsHub, syncLogger),
		WebSocketHub: wsHub,

		ConsumerService: consumerService,
	}
}
