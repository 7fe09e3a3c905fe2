package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/vyaparify/checkout-api/internal/entity"
	"github.com/vyaparify/checkout-api/internal/usecase"
)

const listLimit = 100

type SubmissionHandler struct {
	RecordSubmissionUC *usecase.RecordSubmissionUseCase
	Repo               entity.SubmissionRepositoryInterface
	AdminPassword      string
}

func NewSubmissionHandler(
	uc *usecase.RecordSubmissionUseCase,
	repo entity.SubmissionRepositoryInterface,
	adminPassword string,
) *SubmissionHandler {
	return &SubmissionHandler{
		RecordSubmissionUC: uc,
		Repo:               repo,
		AdminPassword:      adminPassword,
	}
}

type createSubmissionResponse struct {
	Success bool `json:"success"`
	*entity.Submission
}

func (h *SubmissionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecordSubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	submission, err := h.RecordSubmissionUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	writeJSON(w, http.StatusOK, createSubmissionResponse{
		Success:    true,
		Submission: submission,
	})
}

// HandleList returns the latest submissions to an authenticated operator.
// Every call re-presents the password; there are no sessions.
func (h *SubmissionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if h.AdminPassword == "" {
		writeError(w, http.StatusInternalServerError, "Admin password not configured")
		return
	}

	supplied := r.Header.Get("x-admin-password")
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.AdminPassword)) != 1 {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	submissions, err := h.Repo.ListRecent(r.Context(), listLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}

	if submissions == nil {
		submissions = []*entity.Submission{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submissions": submissions,
	})
}
