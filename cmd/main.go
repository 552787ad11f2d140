package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/adapter/postgres"
	"github.com/YerlanK/brigade/internal/adapter/rabbitmq"
	"github.com/YerlanK/brigade/internal/adapter/web"
	"github.com/YerlanK/brigade/internal/app/admission"
	"github.com/YerlanK/brigade/internal/app/assignment"
	"github.com/YerlanK/brigade/internal/app/monitor"
	"github.com/YerlanK/brigade/internal/app/workflow"
	"github.com/YerlanK/brigade/internal/config"

	amqpAdapter "github.com/YerlanK/brigade/internal/adapter/amqp"
	httpAdapter "github.com/YerlanK/brigade/internal/adapter/http"
)

func main() {
	// Parse command-line flags
	mode := flag.String("mode", "", "Service mode: workflow-service, assignment-worker, dashboard, notification-subscriber")
	port := flag.Int("port", 3000, "HTTP port")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	prefetch := flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	refreshSeconds := flag.Int("refresh-interval", 5, "Dashboard refresh interval in seconds")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Compile admission rules up front so a bad rule fails the process, not
	// a request.
	rules, err := admission.Compile(cfg.Kitchen.AdmissionRules)
	if err != nil {
		log.Fatalf("Failed to compile admission rules: %v", err)
	}

	ctx := context.Background()

	// Initialize logger
	lgr := logger.New(*mode)

	// Connect to PostgreSQL
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	// Connect to RabbitMQ
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	// Route to appropriate service
	switch *mode {
	case "workflow-service":
		runWorkflowService(db, mqConn, lgr, cfg, rules, *port)

	case "assignment-worker":
		runAssignmentWorker(ctx, db, mqConn, lgr, *prefetch)

	case "dashboard":
		runDashboard(ctx, db, lgr, cfg, rules, *port, time.Duration(*refreshSeconds)*time.Second)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, mqConn, lgr)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runWorkflowService(db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, cfg *config.Config, rules *admission.RuleSet, port int) {
	// Initialize repositories
	orderRepo := postgres.NewOrderRepository(db)
	stationRepo := postgres.NewStationRepository(db)
	staffRepo := postgres.NewStaffRepository(db)

	// Initialize messaging
	publisher := rabbitmq.NewPublisher(mqConn)

	// Initialize services
	workflowService := workflow.NewService(orderRepo, staffRepo, publisher, lgr, cfg.Kitchen.MaxConcurrentOrders, rules)
	assignmentService := assignment.NewService(orderRepo, stationRepo, staffRepo, publisher, lgr)

	// Initialize HTTP handlers
	workflowHandler := httpAdapter.NewWorkflowHandler(workflowService, lgr)
	assignmentHandler := httpAdapter.NewAssignmentHandler(assignmentService, lgr)

	// Setup HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/", workflowHandler.HandleOrders)
	mux.HandleFunc("/capacity", workflowHandler.GetCapacity)
	mux.HandleFunc("/assignments/evaluate", assignmentHandler.EvaluateAssignment)
	mux.HandleFunc("/assignments/staff", assignmentHandler.EvaluateStaff)
	mux.HandleFunc("/assignments/best", assignmentHandler.BestStation)

	lgr.Info("service_started", fmt.Sprintf("Workflow Service started on port %d", port), "startup", map[string]interface{}{
		"port":           port,
		"max_concurrent": cfg.Kitchen.MaxConcurrentOrders,
		"custom_rules":   rules.Len(),
	})

	serveHTTP(mux, lgr, port)
}

func runAssignmentWorker(ctx context.Context, db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, prefetch int) {
	// Initialize repositories
	orderRepo := postgres.NewOrderRepository(db)
	stationRepo := postgres.NewStationRepository(db)
	staffRepo := postgres.NewStaffRepository(db)

	// Initialize messaging
	publisher := rabbitmq.NewPublisher(mqConn)
	consumer := rabbitmq.NewConsumer(mqConn, prefetch)

	// Initialize service
	assignmentService := assignment.NewService(orderRepo, stationRepo, staffRepo, publisher, lgr)

	// Initialize AMQP handler
	requestHandler := amqpAdapter.NewAssignmentHandler(assignmentService, lgr)

	lgr.Info("service_started", "Assignment Worker started", "startup", map[string]interface{}{
		"prefetch": prefetch,
	})

	// Start consuming messages
	go func() {
		if err := consumer.ConsumeAssignmentRequests(ctx, requestHandler.HandleRequest); err != nil {
			lgr.Error("consumer_error", "Error consuming assignment requests", "runtime", nil, err)
		}
	}()

	// Wait for shutdown signal
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("graceful_shutdown", "Shutting down Assignment Worker", "shutdown", nil)
}

func runDashboard(ctx context.Context, db postgres.DB, lgr logger.Logger, cfg *config.Config, rules *admission.RuleSet, port int, refresh time.Duration) {
	// Initialize repositories
	orderRepo := postgres.NewOrderRepository(db)
	stationRepo := postgres.NewStationRepository(db)
	staffRepo := postgres.NewStaffRepository(db)

	// Initialize service
	monitorService := monitor.NewService(orderRepo, stationRepo, staffRepo, lgr, cfg.Kitchen.MaxConcurrentOrders, rules)

	// Initialize WebSocket hub and kick off the broadcast loop
	hub := web.NewHub(lgr)
	go hub.Run()
	go monitorService.Run(ctx, refresh, hub)

	// Initialize HTTP handler
	monitorHandler := httpAdapter.NewMonitorHandler(monitorService, lgr)

	// Setup HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/kitchen/load", monitorHandler.GetKitchenLoad)
	mux.HandleFunc("/ws", hub.ServeWs)
	mux.Handle("/metrics", promhttp.Handler())

	lgr.Info("service_started", fmt.Sprintf("Dashboard started on port %d", port), "startup", map[string]interface{}{
		"port":    port,
		"refresh": refresh.String(),
	})

	serveHTTP(mux, lgr, port)
}

func runNotificationSubscriber(ctx context.Context, mqConn rabbitmq.Connection, lgr logger.Logger) {
	// Initialize consumer
	consumer := rabbitmq.NewConsumer(mqConn, 1)

	// Initialize handler
	decisionHandler := amqpAdapter.NewDecisionHandler(lgr)

	lgr.Info("service_started", "Notification Subscriber started", "startup", nil)

	// Start consuming decisions
	go func() {
		if err := consumer.ConsumeDecisions(ctx, decisionHandler.HandleDecision); err != nil {
			lgr.Error("consumer_error", "Error consuming decisions", "runtime", nil, err)
		}
	}()

	// Wait for shutdown signal
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "shutdown", nil)
}

func serveHTTP(mux *http.ServeMux, lgr logger.Logger, port int) {
	// Apply middleware
	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down HTTP server", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
