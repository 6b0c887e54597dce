package main

import (
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"cognicare/adapters/delivery"
	"cognicare/adapters/excel"
	"cognicare/adapters/pdf"
	"cognicare/adapters/postgres"
	"cognicare/adapters/printer"
	"cognicare/adapters/render"
	"cognicare/app"
	"cognicare/domain/report"
	"cognicare/internal/config"
	"cognicare/internal/testkit"
	"cognicare/ports"
	"cognicare/ui"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[api] invalid configuration: %v", err)
	}

	fixtures := testkit.NewFixtureProvider()

	var source app.DataSource = fixtures
	var patients ports.PatientDirectory = fixtures
	var profiles ports.ProfileProvider = fixtures
	var sessions ports.SessionSource = fixtures

	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("[api] database connection failed: %v", err)
		}
		defer db.Close()
		store := postgres.NewSessionStore(db)
		source = store
		patients = store
		profiles = store
		sessions = store
		log.Printf("[api] using postgres session store")
	} else {
		log.Printf("[api] DATABASE_URL not set, serving fixture data")
	}

	var channel ports.DeliveryChannel
	if cfg.Delivery.Endpoint != "" {
		channel = delivery.NewHTTPChannel(cfg.Delivery.Endpoint, cfg.Delivery.APIKey)
	}

	renderer := render.NewDocumentRenderer(pdf.NewWriter(), cfg.Export.Dir)
	printRenderer := render.NewPrintRenderer(printer.NewProvider(cfg.Export.PrintCommand))
	rawData := excel.NewRawDataExporter(cfg.Export.Dir)

	reports := app.NewReportService(report.NewComposer(), renderer, printRenderer, rawData, sessions)
	dashboard := app.NewDashboardService(source, fixtures, int64(cfg.Aggregation.MaxConcurrentFetches))

	server := ui.NewServer(dashboard, reports, patients, profiles, channel)

	addr := ":" + cfg.Server.Port
	log.Printf("[api] listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("[api] server failed: %v", err)
	}
}
