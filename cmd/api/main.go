package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"widia-api/api/router"
	"widia-api/blog"
	"widia-api/config"
	"widia-api/db"
	"widia-api/logger"
	"widia-api/mailer"
	"widia-api/repositories"
	"widia-api/services"
)

// @title           Widia API
// @version         1.0
// @description     Backend for the Widia site: status checks, contact form and blog content
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Log.Errorf("failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}

	smtp := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.Mail.SMTPServer,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		Timeout:  cfg.Mail.Timeout,
	})
	if !smtp.Configured() {
		logger.Log.Warn("SMTP settings incomplete; contact forms will be stored without email notification")
	}

	posts := blog.NewRepository(blog.Options{
		Dir:               cfg.Blog.ContentDir,
		Extension:         cfg.Blog.Extension,
		DefaultAuthor:     cfg.Blog.DefaultAuthor,
		CoverImagePattern: cfg.Blog.CoverImagePattern,
		FrontMatter:       cfg.Blog.FrontMatter,
		Logger:            logger.Log,
	})

	r := router.New(router.Dependencies{
		APIPrefix: cfg.Server.APIPrefix,
		Store:     store,
		Status:    services.NewStatusService(repositories.NewStatusCheckRepository(store.Database())),
		Contact: services.NewContactService(
			repositories.NewContactFormRepository(store.Database()),
			smtp,
			services.ContactServiceOptions{
				Recipient:     cfg.Mail.Recipient,
				NotifyTimeout: cfg.Mail.Timeout,
				Logger:        logger.Log,
			},
		),
		Blog: services.NewBlogService(posts),
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Errorf("http server failed: %v", err)
			stop()
		}
	}()
	logger.Log.Infof("widia api listening on %s (prefix %s, content %s)",
		cfg.Server.Addr, cfg.Server.APIPrefix, cfg.Blog.ContentDir)

	<-sigCtx.Done()
	logger.Log.Info("shutting down api server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Log.Errorf("failed to disconnect MongoDB: %v", err)
	}
	logger.Log.Info("api server stopped")
}
