package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"homefeed-server/internal/config"
	"homefeed-server/internal/handler"
	"homefeed-server/internal/middleware"
	"homefeed-server/internal/push"
	"homefeed-server/internal/repository"
	"homefeed-server/internal/scheduler"
	"homefeed-server/internal/service"
	"homefeed-server/internal/websocket"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	itemRepo := repository.NewItemRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// WebSocket Manager
	wsManager := websocket.NewManager(
		cfg.WebSocket.MaxClients,
		cfg.WebSocket.MaxMessageSize,
		cfg.WebSocket.WriteWait,
		cfg.WebSocket.PongWait,
		cfg.WebSocket.PingPeriod,
	)
	wsManager.SetDebug(cfg.Logging.Debug())
	go wsManager.Run(ctx)

	var sender push.Sender = push.LogSender{}
	if cfg.PushEnabled() {
		sender = push.NewWebPushSender(cfg.Push)
	} else {
		log.Println("[Push] VAPID keys not configured, reminders will only be logged")
	}

	reminderScheduler := scheduler.NewReminderScheduler(
		reminderRepo,
		subscriptionRepo,
		sender,
		wsManager,
		cfg.Scheduler.Interval,
	)
	go reminderScheduler.Run(ctx)

	feedService := service.NewFeedService(itemRepo)
	noteService := service.NewNoteService(noteRepo, wsManager)
	todoService := service.NewTodoService(todoRepo, wsManager)
	budgetService := service.NewBudgetService(budgetRepo, wsManager)
	reminderService := service.NewReminderService(reminderRepo, itemRepo, wsManager, time.Local)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)

	handlers := &handler.Handlers{
		Home:         handler.NewHomeHandler(feedService),
		Note:         handler.NewNoteHandler(noteService),
		Todo:         handler.NewTodoHandler(todoService),
		Budget:       handler.NewBudgetHandler(budgetService),
		Reminder:     handler.NewReminderHandler(reminderService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService, cfg.Push.VAPIDPublicKey),
		WebSocket:    handler.NewWebSocketHandler(wsManager, cfg.WebSocket.ReadBufferSize, cfg.WebSocket.WriteBufferSize),
	}

	r := newRouter(cfg, handlers)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting Homefeed Server on %s (env: %s, log level: %s)", addr, cfg.Server.Env, cfg.Logging.Level)
		log.Printf("Using SQLite database at %s", cfg.Database.Path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

func newRouter(cfg *config.Config, handlers *handler.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	handler.RegisterRoutes(r, handlers)

	if cfg.Server.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))
		log.Printf("Serving static files from %s", cfg.Server.StaticDir)
	}

	return r
}
