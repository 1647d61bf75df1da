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

	"github.com/meetboard/api/internal/adapters/calendar"
	handler "github.com/meetboard/api/internal/adapters/handler/http"
	"github.com/meetboard/api/internal/adapters/repository/postgres"
	"github.com/meetboard/api/internal/adapters/shortener"
	"github.com/meetboard/api/internal/core/ports"
	"github.com/meetboard/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	meetingRepo := postgres.NewMeetingRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	var linkShortener ports.LinkShortener
	if baseURL := os.Getenv("URL_SHORTENER_BASE_URL"); baseURL != "" {
		linkShortener = shortener.NewClient(baseURL)
	}

	meetingService := services.NewMeetingService(meetingRepo, linkShortener)
	voteService := services.NewVoteService(voteRepo, services.Quorum)

	meetingHandler := handler.NewMeetingHandler(meetingService, calendar.NewExporter())
	voteHandler := handler.NewVoteHandler(voteService)
	router := handler.NewHandler(meetingHandler, voteHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", server.Addr)
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
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
