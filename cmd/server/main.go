package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"consulting-api/internal/auth"
	"consulting-api/internal/config"
	apphttp "consulting-api/internal/http"
	"consulting-api/internal/repository"
	"consulting-api/internal/repository/memory"
	"consulting-api/internal/repository/sqlite"
	"consulting-api/internal/service"
)

type stores struct {
	accounts     repository.AccountRepository
	posts        repository.BlogPostRepository
	testimonials repository.TestimonialRepository
	contacts     repository.ContactRepository
	db           *sql.DB
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := buildStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}
	if st.db != nil {
		defer st.db.Close()
	}

	authService := service.NewAuthService(st.accounts, service.AuthConfig{
		Secret:   []byte(cfg.Auth.JWTSecret),
		TokenTTL: time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		Lockout: auth.LockoutPolicy{
			Threshold: cfg.Auth.LockoutThreshold,
			LockFor:   time.Duration(cfg.Auth.LockoutMinutes) * time.Minute,
		},
		PasswordMinLength: cfg.Auth.PasswordMinLength,
	})
	blogService := service.NewBlogService(st.posts)
	testimonialService := service.NewTestimonialService(st.testimonials)
	contactService := service.NewContactService(st.contacts)
	userService := service.NewUserService(st.accounts)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		authService,
		blogService,
		testimonialService,
		contactService,
		userService,
		[]byte(cfg.Auth.JWTSecret),
		cfg.Static.Dir,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildStores(ctx context.Context, cfg config.Config, logger *logrus.Logger) (stores, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return stores{}, fmt.Errorf("open database: %w", err)
		}

		st := stores{
			accounts:     sqlite.NewAccountRepository(db),
			posts:        sqlite.NewBlogPostRepository(db),
			testimonials: sqlite.NewTestimonialRepository(db),
			contacts:     sqlite.NewContactRepository(db),
			db:           db,
		}
		for _, repo := range []interface {
			Init(context.Context) error
		}{st.accounts, st.posts, st.testimonials, st.contacts} {
			if err := repo.Init(ctx); err != nil {
				db.Close()
				return stores{}, fmt.Errorf("init repository: %w", err)
			}
		}
		logger.Infof("using sqlite database at %s", cfg.Database.Path)
		return st, nil

	case "memory":
		st := stores{
			accounts:     memory.NewAccountRepository(),
			posts:        memory.NewBlogPostRepository(),
			testimonials: memory.NewTestimonialRepository(),
			contacts:     memory.NewContactRepository(),
		}
		if err := memory.SeedSampleContent(ctx, st.posts, st.testimonials, st.contacts); err != nil {
			return stores{}, fmt.Errorf("seed sample content: %w", err)
		}
		logger.Warn("using in-memory store, data will not survive a restart")
		return st, nil

	default:
		return stores{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
