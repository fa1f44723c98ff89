package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flasheng-api/store"
	"github.com/andrewpaige1/flasheng-api/utils"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// GET /api/admin/users
func (h *DBHandler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.Users.List(r.Context())
	if err != nil {
		h.fail(w, r, "AdminListUsers", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"users": users,
		"total": len(users),
	})
}

// POST /api/admin/users
func (h *DBHandler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "AdminCreateUser", err)
		return
	}

	user, err := h.Store.Users.Register(r.Context(), store.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.fail(w, r, "AdminCreateUser", err)
		return
	}

	h.logger(r).Info(r.Context(), "AdminCreateUser: user created", "created_id", user.ID, "role", user.Role)
	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}

// PUT /api/admin/users/{id}/toggle-status
func (h *DBHandler) AdminToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "AdminToggleUserStatus", err)
		return
	}

	user, err := h.Store.Users.ToggleStatus(r.Context(), actor.UserID, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, "AdminToggleUserStatus", err)
		return
	}

	message := "User deactivated successfully"
	if user.IsActive {
		message = "User activated successfully"
	}
	h.logger(r).Info(r.Context(), "AdminToggleUserStatus: status changed", "target_id", user.ID, "is_active", user.IsActive)
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"message":   message,
		"is_active": user.IsActive,
	})
}

// DELETE /api/admin/users/{id}
func (h *DBHandler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "AdminDeleteUser", err)
		return
	}

	targetID := r.PathValue("id")
	if err := h.Store.Users.Delete(r.Context(), actor.UserID, targetID); err != nil {
		h.fail(w, r, "AdminDeleteUser", err)
		return
	}

	h.logger(r).Info(r.Context(), "AdminDeleteUser: user deleted", "target_id", targetID)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"message": "User deleted successfully"})
}
