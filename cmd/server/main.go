package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kmarchuk/lingua_school/internal/config"
	"github.com/kmarchuk/lingua_school/internal/es"
	"github.com/kmarchuk/lingua_school/internal/events"
	"github.com/kmarchuk/lingua_school/internal/httpserver"
	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/mailer"
	mw "github.com/kmarchuk/lingua_school/internal/middleware"
	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/tokens"
	pkgdb "github.com/kmarchuk/lingua_school/pkg/db"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.UserRole{}, &models.PasswordResetToken{},
		&models.Lesson{}, &models.Quiz{}, &models.QuizQuestion{},
		&models.VocabularyCategory{}, &models.VocabularyWord{},
		&models.PronunciationItem{}, &models.KidLesson{}, &models.KidQuizQuestion{},
		&models.Name{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Printf("warning: elasticsearch unavailable: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	gormRepo := repo.New(db)
	issuer := &tokens.Issuer{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}

	deps := &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Store:    gormRepo,
			Tokens:   issuer,
			Producer: producer,
			Mailer:   &mailer.LogMailer{Logger: logger},
		}},
		UsersHandler:         &httpserver.UsersHTTP{Svc: &service.UsersService{Repo: gormRepo}},
		LessonsHandler:       &httpserver.LessonsHTTP{Svc: &service.LessonsService{Repo: gormRepo, ES: esClient, Producer: producer}},
		QuizzesHandler:       &httpserver.QuizzesHTTP{Svc: &service.QuizzesService{Repo: gormRepo}},
		VocabularyHandler:    &httpserver.VocabularyHTTP{Svc: &service.VocabularyService{Repo: gormRepo}},
		PronunciationHandler: &httpserver.PronunciationHTTP{Svc: &service.PronunciationService{Repo: gormRepo}},
		KidLessonsHandler:    &httpserver.KidLessonsHTTP{Svc: &service.KidLessonsService{Repo: gormRepo}},
		NamesHandler:         &httpserver.NamesHTTP{Svc: &service.NamesService{Repo: gormRepo}},
		SearchHandler:        &httpserver.SearchHTTP{Svc: &service.SearchService{ES: esClient}},
		JWTSecret:            cfg.JWTSecret,
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(mw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Printf("%s stopped", cfg.ServiceName)
}
