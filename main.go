package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/config"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/controllers"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/storage"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/utils"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()

	// Connect to MongoDB
	config.ConnectDB(cfg.MongoURI, cfg.MongoDB)

	verticals, err := config.LoadVerticals(cfg.VerticalsFile)
	if err != nil {
		log.Fatalf("verticals config: %v", err)
	}

	// Photos always live on local disk so /uploads can serve them.
	localStore, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatalf("upload storage: %v", err)
	}

	// Reports go to the object store when one is configured.
	var reportStore storage.Backend = localStore
	if cfg.StorageBackend == "minio" {
		minioStore, err := storage.NewMinioStore(
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
			cfg.MinioBucket, "reports/", cfg.MinioUseSSL,
		)
		if err != nil {
			log.Fatalf("minio storage: %v", err)
		}
		reportStore = minioStore
		log.Println("Report uploads backed by MinIO bucket:", cfg.MinioBucket)
	}

	handler := &controllers.Handler{
		Users:         repo.NewUsers(config.DB),
		Announcements: repo.NewAnnouncements(config.DB),
		Highlights:    repo.NewHighlights(config.DB),
		Activities:    repo.NewActivities(config.DB),
		Albums:        repo.NewAlbums(config.DB),
		Photos:        localStore,
		Reports:       reportStore,
		Mail:          utils.SMTPMailer{},
		Verticals:     verticals,
		UploadDir:     localStore.Root(),
		BaseURL:       cfg.BaseURL,
		ResetURLBase:  cfg.ResetURLBase,
		ContactEmail:  cfg.ContactEmail,
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Router(),
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		log.Printf("🚀 Server started on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt (Ctrl+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	if err := config.Client.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	} else {
		log.Println("✅ MongoDB disconnected")
	}

	log.Println("Server exited properly")
}
