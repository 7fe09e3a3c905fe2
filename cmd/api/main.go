package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/config"
	"github.com/vyaparify/checkout-api/internal/entity"
	"github.com/vyaparify/checkout-api/internal/infra/database"
	"github.com/vyaparify/checkout-api/internal/infra/http/handlers"
	"github.com/vyaparify/checkout-api/internal/infra/http/middleware"
	"github.com/vyaparify/checkout-api/internal/infra/integration/meta"
	"github.com/vyaparify/checkout-api/internal/infra/integration/razorpay"
	"github.com/vyaparify/checkout-api/internal/infra/integration/zoho"
	"github.com/vyaparify/checkout-api/internal/infra/logger"
	"github.com/vyaparify/checkout-api/internal/infra/mail"
	"github.com/vyaparify/checkout-api/internal/infra/queue"
	"github.com/vyaparify/checkout-api/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	// 1. Storage: Postgres when configured, in-memory otherwise
	var db *sql.DB
	var store entity.SubmissionRepositoryInterface
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		store = database.NewSubmissionRepository(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory store")
		store = database.NewMemoryStore()
	}

	// 2. CRM forwarding: durable queue when RabbitMQ is up, direct otherwise
	zohoClient := zoho.NewFlowClient(cfg.ZohoFlowWebhookURL)

	var amqpConn *amqp.Connection
	var producer usecase.LeadProducerInterface
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer rabbitMQ.Close()
		amqpConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, zohoClient, log)
		go worker.Start(queue.QueueName)
	}

	// 3. Gateway and side-channel clients
	var gateway usecase.PaymentGateway
	if cfg.Razorpay.Configured() {
		gateway = razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	} else {
		log.Warn("Razorpay credentials not set, order creation disabled")
	}

	var mailer usecase.MailSenderInterface
	if cfg.SMTP.Configured() {
		mailer = mail.NewEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	metaClient := meta.NewClient(cfg.Meta.PixelID, cfg.Meta.AccessToken)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(store, producer, zohoClient, log)
	createOrderUC := usecase.NewCreateOrderUseCase(gateway, log)
	verifyPaymentUC := usecase.NewVerifyPaymentUseCase(cfg.Razorpay.KeySecret, log)
	recordSubmissionUC := usecase.NewRecordSubmissionUseCase(store, mailer, log)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC)
	orderHandler := handlers.NewOrderHandler(createOrderUC)
	paymentHandler := handlers.NewPaymentHandler(verifyPaymentUC)
	submissionHandler := handlers.NewSubmissionHandler(recordSubmissionUC, store, cfg.AdminPassword)
	adminHandler := handlers.NewAdminHandler(cfg.AdminPassword)
	conversionHandler := handlers.NewConversionHandler(metaClient, log)
	healthHandler := handlers.NewHealthHandler(db, amqpConn, cfg.Razorpay.Configured())

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "x-admin-password"},
	}))

	r.Post("/api/leads/create", leadHandler.HandleCreate)
	r.Post("/api/razorpay/create-order", orderHandler.HandleCreate)
	r.Post("/api/razorpay/verify-payment", paymentHandler.HandleVerify)
	r.Post("/api/submissions/create", submissionHandler.HandleCreate)
	r.Get("/api/submissions/list", submissionHandler.HandleList)
	r.Post("/api/admin/login", adminHandler.HandleLogin)
	r.Post("/api/admin/verify", adminHandler.HandleLogin)
	r.Post("/api/meta/conversion", conversionHandler.HandleConversion)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Info("checkout API listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
