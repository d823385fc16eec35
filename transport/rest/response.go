package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errorStatuses maps domain errors to the status code and message sent to clients.
var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{apperror.ErrGameNotFound, http.StatusNotFound, "Game not found"},
	{apperror.ErrInvalidPosition, http.StatusUnprocessableEntity, "Invalid position"},
	{apperror.ErrCellOccupied, http.StatusUnprocessableEntity, "Cell is already occupied"},
	{apperror.ErrGameFinished, http.StatusUnprocessableEntity, "Game is already finished"},
	{apperror.ErrConcurrentUpdate, http.StatusConflict, "Game was modified concurrently, retry"},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			writeJSON(w, known.status, errorResponse{Error: known.message})
			return
		}
	}

	log.Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}
