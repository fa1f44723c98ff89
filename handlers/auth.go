package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flasheng-api/models"
	"github.com/andrewpaige1/flasheng-api/store"
	"github.com/andrewpaige1/flasheng-api/utils"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/signup
func (h *DBHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Signup", err)
		return
	}

	user, err := h.Store.Users.Register(r.Context(), store.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleUser,
	})
	if err != nil {
		h.fail(w, r, "Signup", err)
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		h.fail(w, r, "Signup", err)
		return
	}

	h.logger(r).Info(r.Context(), "Signup: user created", "user_id", user.ID)
	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

// POST /api/auth/login
func (h *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Login", err)
		return
	}

	user, err := h.Store.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, "Login", err)
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		h.fail(w, r, "Login", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// GET /api/auth/check, GET /api/auth/me
func (h *DBHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	_, claims, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "CheckAuth", err)
		return
	}

	user, err := h.Store.Users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		if utils.StatusCode(err) == http.StatusNotFound {
			err = utils.UnauthenticatedError("User not found")
		}
		h.fail(w, r, "CheckAuth", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}
