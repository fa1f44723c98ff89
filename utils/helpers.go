package utils

import (
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"

	"github.com/andrewpaige1/flasheng-api/auth"
)

// GetClaims returns the identity the authorization gate stored on the request.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*auth.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
