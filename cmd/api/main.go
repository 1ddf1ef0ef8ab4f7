package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rvelasco1/salestext/internal/config"
	"github.com/rvelasco1/salestext/internal/infra/database"
	"github.com/rvelasco1/salestext/internal/infra/http/handlers"
	"github.com/rvelasco1/salestext/internal/infra/http/middleware"
	"github.com/rvelasco1/salestext/internal/infra/integration/telnyx"
	"github.com/rvelasco1/salestext/internal/infra/mail"
	"github.com/rvelasco1/salestext/internal/infra/queue"
	"github.com/rvelasco1/salestext/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositories
	saleRepo := database.NewSaleRepository(db)
	outboundRepo := database.NewOutboundMessageRepository(db)
	inboundRepo := database.NewInboundMessageRepository(db)

	// 2. Gateway
	gateway := telnyx.NewClient(cfg.TelnyxAPIKey, cfg.TelnyxProfileID, cfg.TelnyxFromNumber, cfg.TelnyxAPIURL)

	// 3. Optional collaborators: events and opt-out alerts
	var amqpConn *amqp.Connection
	var producer usecase.EventProducer
	if cfg.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		amqpConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Ch)
	}

	var alertSender usecase.OptOutAlertService
	if cfg.Mail.Host != "" && cfg.Mail.AlertTo != "" {
		alertSender = mail.NewOptOutAlertSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Pass, cfg.Mail.AlertTo)
	}

	// 4. UseCases
	recordSaleUC := usecase.NewRecordSaleUseCase(saleRepo, outboundRepo, gateway, producer)
	processInboundUC := usecase.NewProcessInboundUseCase(saleRepo, inboundRepo, producer, alertSender)

	// 5. Handlers
	templates := template.Must(template.ParseGlob("templates/*.html"))
	store := middleware.NewSessionStore(cfg.SessionSecret)

	saleHandler := handlers.NewSaleHandler(recordSaleUC)
	inboundHandler := handlers.NewInboundHandler(processInboundUC)
	authHandler := handlers.NewAuthHandler(store, cfg.AdminUsername, cfg.AdminPassword, templates)
	adminHandler := handlers.NewAdminHandler(saleRepo, outboundRepo, inboundRepo, gateway, templates)
	healthHandler := handlers.NewHealthHandler(db, amqpConn, cfg.TelnyxAPIKey != "")

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/api/new-sale", saleHandler.HandleNewSale)
	r.Post("/api/inbound-sms", inboundHandler.Handle)

	r.Get("/", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(store))
		r.Get("/", adminHandler.Home)
		r.Get("/sale/{id}", adminHandler.SaleDetail)
		r.Get("/delete/{id}", adminHandler.DeleteSale)
		r.Get("/resend/{id}", adminHandler.ResendConfirmation)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 salestext listening on %s", addr)
	http.ListenAndServe(addr, r)
}
