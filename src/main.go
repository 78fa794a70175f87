package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "Backend-Hostel-Billing/docs"
	"Backend-Hostel-Billing/src/config"
	"Backend-Hostel-Billing/src/controllers"
	"Backend-Hostel-Billing/src/database"
	"Backend-Hostel-Billing/src/jobs"
	"Backend-Hostel-Billing/src/middleware"
	"Backend-Hostel-Billing/src/routes"
	"Backend-Hostel-Billing/src/services/records"
	"Backend-Hostel-Billing/src/services/reports"
	"Backend-Hostel-Billing/src/services/sessions"
	"Backend-Hostel-Billing/src/views"

	"github.com/hibiken/asynq"
)

// @title Hostel Billing API
// @version 1.0
// @description Hostel & mess fee portal
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx := context.Background()

	// เลือกที่เก็บข้อมูลนักศึกษา
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Error opening record store: %v", err)
	}

	var sessionStore sessions.Store = sessions.NewMemoryStore(cfg.SessionTTL)
	var queue records.BillQueue
	if cfg.RedisURI != "" {
		if err := database.InitRedis(cfg.RedisURI); err != nil {
			log.Fatalf("❌ %v", err)
		}
		sessionStore = sessions.NewRedisStore(database.RedisClient, cfg.SessionTTL)
		if err := database.InitAsynq(); err != nil {
			log.Fatalf("❌ %v", err)
		}
		queue = jobs.NewEnqueuer(database.AsynqClient)
		log.Println("✅ Redis sessions and bill queue enabled")
	}

	var renderer reports.Renderer = reports.NewFPDFRenderer()
	if cfg.PDFEngine == "chrome" {
		renderer = reports.NewChromeRenderer(views.NewEngine(), 30*time.Second)
	}
	exporter := reports.NewExporter(renderer, cfg.ExportDir)

	var worker *asynq.Server
	if cfg.WorkerEnabled {
		if cfg.RedisURI == "" {
			log.Println("⚠️ WORKER_ENABLED set without REDIS_URI, worker not started")
		} else {
			mux := asynq.NewServeMux()
			jobs.RegisterHandlers(mux, jobs.NewBillHandler(store, exporter))
			if worker, err = jobs.StartWorker(cfg.RedisURI, mux); err != nil {
				log.Fatalf("❌ Error starting worker: %v", err)
			}
		}
	}

	handler := controllers.NewHandler(records.NewService(store, queue), sessionStore, exporter, []byte(cfg.SessionSecret))
	app := routes.NewApp(handler, middleware.RequireAdmin(cfg.AdminUser, cfg.AdminPasswordHash))

	go func() {
		log.Println("Server is running on port " + cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)

	if worker != nil {
		worker.Shutdown()
	}
	if database.AsynqClient != nil {
		_ = database.AsynqClient.Close()
	}
	_ = database.DisconnectMongoDB(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (records.Store, error) {
	xlsx := records.NewXLSXStore(cfg.DataFile, cfg.DataSheet)

	switch cfg.StoreDriver {
	case "mongo":
		if err := database.ConnectMongoDB(cfg.MongoURI); err != nil {
			return nil, err
		}
		store := records.NewMongoStore(database.GetCollection(cfg.MongoDB, "students"))
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return store, importRecords(ctx, cfg, xlsx, store)

	case "postgres":
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store := records.NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		return store, importRecords(ctx, cfg, xlsx, store)
	}

	if err := xlsx.Ensure(); err != nil {
		return nil, err
	}
	log.Printf("✅ Using spreadsheet %s", xlsx.Path())
	return xlsx, nil
}

// importRecords copies the spreadsheet into a database store when IMPORT_ON_START is set.
func importRecords(ctx context.Context, cfg *config.Config, src *records.XLSXStore, dst records.Upserter) error {
	if !cfg.ImportOnStart {
		return nil
	}
	if _, err := records.Import(ctx, src, dst); err != nil {
		return fmt.Errorf("import %s: %w", cfg.DataFile, err)
	}
	return nil
}
