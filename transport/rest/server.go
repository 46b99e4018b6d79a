package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Start - starts the REST API server.
func Start(ctx context.Context, port string, handlers Handlers) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ping", handlers.Ping)

	mux.HandleFunc("POST /api/rooms/create", handlers.CreateRoom)
	mux.HandleFunc("POST /api/rooms/join", handlers.JoinRoom)
	mux.HandleFunc("GET /api/rooms/{room_code}/status", handlers.RoomStatus)
	mux.HandleFunc("POST /api/rooms/{room_code}/reset", handlers.ResetRoom)

	mux.HandleFunc("POST /api/auth/register", handlers.Register)
	mux.HandleFunc("POST /api/auth/login", handlers.Login)
	mux.HandleFunc("GET /api/players/ranking", handlers.Ranking)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      corsMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
