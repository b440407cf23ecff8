package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

const maxBodyBytes = 1 << 16

var errMalformedBody = errors.New("malformed request body")

type turnRequest struct {
	Position entity.Position `json:"position"`
	Move     string          `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	analysis, err := that.engine.NewGame(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, r, http.StatusOK, analysis)
}

func (that *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var position entity.Position
	if err := decodeBody(w, r, &position); err != nil {
		that.writeError(w, r, err)
		return
	}

	analysis, err := that.engine.Analyze(r.Context(), position)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, r, http.StatusOK, analysis)
}

func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	turn, err := that.engine.MakeTurn(r.Context(), req.Position, req.Move)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, r, http.StatusOK, turn)
}

func (that *Server) handleBotTurn(w http.ResponseWriter, r *http.Request) {
	var position entity.Position
	if err := decodeBody(w, r, &position); err != nil {
		that.writeError(w, r, err)
		return
	}

	turn, err := that.engine.MakeBotTurn(r.Context(), position)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, r, http.StatusOK, turn)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errors.Join(errMalformedBody, err)
	}

	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errMalformedBody),
		errors.Is(err, apperror.ErrInvalidPosition),
		errors.Is(err, apperror.ErrMalformedMove):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := that.loggerFrom(r.Context()).With("method", "writeError")

	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		message = http.StatusText(status)
	} else {
		log.Debug("request rejected", "status", status, "error", err)
	}

	that.writeJSON(w, r, status, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.loggerFrom(r.Context()).Error("failed to write response", "error", err)
	}
}
