package cmd

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIServer serves route on port until the listener fails.
func APIServer(route *chi.Mux, port string, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%s", port)
	logger.Info("Server running", zap.String("addr", "http://localhost"+addr))

	if err := http.ListenAndServe(addr, route); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
