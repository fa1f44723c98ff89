package middleware

import (
	"context"
	"errors"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"

	"github.com/andrewpaige1/flasheng-api/auth"
	"github.com/andrewpaige1/flasheng-api/logging"
	"github.com/andrewpaige1/flasheng-api/utils"
)

// Gate authenticates bearer tokens and enforces the admin role.
//
// Authenticate stores the validated *auth.Claims under jwtmiddleware's
// context key; utils.GetClaims reads them back.
type Gate struct {
	tokens *auth.TokenService
	jwt    *jwtmiddleware.JWTMiddleware
	log    logging.Logger
}

func NewGate(tokens *auth.TokenService, log logging.Logger) *Gate {
	g := &Gate{tokens: tokens, log: log}
	g.jwt = jwtmiddleware.New(
		g.validateToken,
		jwtmiddleware.WithErrorHandler(g.handleError),
	)
	return g
}

func (g *Gate) validateToken(_ context.Context, token string) (interface{}, error) {
	return g.tokens.Validate(token)
}

// handleError answers 401 for a missing header and for any token that did
// not validate, without saying why.
func (g *Gate) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logging.FromContext(r.Context(), g.log)
	if errors.Is(err, jwtmiddleware.ErrJWTMissing) {
		utils.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}
	log.Debug(r.Context(), "Gate: rejected token", "error", err)
	utils.WriteMessage(w, http.StatusUnauthorized, "Invalid token")
}

// Authenticate requires a valid bearer token.
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return g.jwt.CheckJWT(g.attachIdentity(next))
}

// RequireAdmin requires a valid bearer token whose role claim is admin. The
// role is read from the token on every request.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return g.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaims(r)
		if !ok || !claims.IsAdmin() {
			utils.WriteMessage(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// attachIdentity adds the caller to the request scoped logger.
func (g *Gate) attachIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaims(r)
		if !ok {
			utils.WriteMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		log := logging.FromContext(r.Context(), g.log).With("user_id", claims.UserID)
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), log)))
	})
}
