package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

type AdminHandler struct {
	AdminPassword string
}

func NewAdminHandler(adminPassword string) *AdminHandler {
	return &AdminHandler{AdminPassword: adminPassword}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if h.AdminPassword == "" {
		writeError(w, http.StatusInternalServerError, "Admin password not configured")
		return
	}

	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.AdminPassword)) != 1 {
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
