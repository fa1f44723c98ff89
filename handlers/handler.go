package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flasheng-api/auth"
	"github.com/andrewpaige1/flasheng-api/generation"
	"github.com/andrewpaige1/flasheng-api/logging"
	"github.com/andrewpaige1/flasheng-api/store"
	"github.com/andrewpaige1/flasheng-api/utils"
)

const maxBodyBytes = 1 << 20

// DBHandler carries the dependencies every route needs. It is built once at
// startup and only read afterwards.
type DBHandler struct {
	*gorm.DB
	Store     *store.Store
	Tokens    *auth.TokenService
	Generator generation.Generator
	Log       logging.Logger
}

func NewDBHandler(db *gorm.DB, tokens *auth.TokenService, gen generation.Generator, log logging.Logger) *DBHandler {
	return &DBHandler{
		DB:        db,
		Store:     store.New(db),
		Tokens:    tokens,
		Generator: gen,
		Log:       log,
	}
}

func (h *DBHandler) logger(r *http.Request) logging.Logger {
	return logging.FromContext(r.Context(), h.Log)
}

// fail writes err to the client. Server side failures are logged with op;
// expected ones only at debug level.
func (h *DBHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if utils.StatusCode(err) >= http.StatusInternalServerError {
		h.logger(r).Error(r.Context(), op+": request failed", "error", err)
	} else {
		h.logger(r).Debug(r.Context(), op+": request rejected", "error", err)
	}
	utils.WriteError(w, err)
}

// actor returns the identity the gate attached to r.
func (h *DBHandler) actor(r *http.Request) (store.Actor, *auth.Claims, error) {
	claims, ok := utils.GetClaims(r)
	if !ok {
		return store.Actor{}, nil, utils.UnauthenticatedError("Invalid token")
	}
	return store.ActorFromClaims(claims), claims, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return utils.ValidationError("Request body too large")
		}
		return utils.ValidationError("Invalid request body")
	}
	return nil
}

// NotFound answers every path no route matched.
func (h *DBHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusNotFound, "Endpoint not found")
}

// GET /health
func (h *DBHandler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		h.logger(r).Error(r.Context(), "Health: database ping failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
