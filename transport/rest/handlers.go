package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const maxBodyBytes = 1 << 10

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, position *int) (*entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
}

// moveRequest accepts both {"move":{"position":N}} and {"position":N}.
type moveRequest struct {
	Move *struct {
		Position *int `json:"position"`
	} `json:"move"`
	Position *int `json:"position"`
}

func (that moveRequest) position() *int {
	if that.Move != nil && that.Move.Position != nil {
		return that.Move.Position
	}

	return that.Position
}

type gameHandlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func (that *gameHandlers) create(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *gameHandlers) get(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed JSON body"})
		return
	}

	game, err := that.games.MakeMove(r.Context(), chi.URLParam(r, "id"), req.position())
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) reset(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}
