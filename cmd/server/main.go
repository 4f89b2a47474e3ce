package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/sydqwycs/dajiexiaoxiang/internal/adapters/handler/http"
	repo "github.com/sydqwycs/dajiexiaoxiang/internal/adapters/repository/postgres"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment as-is")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	pollRepo := repo.NewPollRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	countRepo := repo.NewVoteCountRepository(db)

	pollSvc := services.NewPollService(pollRepo)
	voteSvc := services.NewVoteService(pollRepo, voteRepo)
	resultsSvc := services.NewResultsService(pollRepo, countRepo)
	adminAuth := services.NewAdminAuthService()

	handler := http.NewHandler(
		http.NewPollHandler(pollSvc),
		http.NewVoteHandler(voteSvc),
		http.NewResultsHandler(resultsSvc),
		http.NewAuthHandler(adminAuth),
		adminAuth,
	)

	addr := "0.0.0.0:" + envOr("PORT", "8080")
	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Println("Listening on " + addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
