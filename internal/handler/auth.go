// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/meridia/identity/internal/domain"
	"github.com/meridia/identity/internal/middleware"
	"github.com/meridia/identity/internal/model"
	"github.com/meridia/identity/internal/service"
)

type AuthHandler struct {
	identityService *service.IdentityService
}

func NewAuthHandler(identityService *service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

type LoginResponse struct {
	BaseResponse
	Data        *service.Identity `json:"data,omitempty"`
	AccessToken string            `json:"access_token,omitempty"`
	Message     string            `json:"message,omitempty"`
}

// LoginHandler resolves credentials into a role-scoped session. Account
// absence and wrong passwords render identically so callers cannot probe
// for registered emails.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identityService.Login(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			respondWithError(w, http.StatusNotFound, "Invalid email or password")
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, domain.ErrOrganizationPending):
			respondWithError(w, http.StatusUnauthorized, "Your organization is pending verification")
		case errors.Is(err, domain.ErrSuspended):
			respondWithError(w, http.StatusForbidden, "Your organization or account has been suspended")
		case errors.Is(err, domain.ErrNoPatientsAssigned):
			respondWithError(w, http.StatusConflict, "No patients were assigned to you")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		default:
			// Ambiguous identities and issuer outages are internal faults;
			// details stay in the logs.
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		Data:         output.Data,
		AccessToken:  output.AccessToken,
		Message:      output.Message,
	})
}

type SignupResponse struct {
	BaseResponse
	Message string `json:"message"`
}

func (h *AuthHandler) PractitionerSignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.PractitionerSignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identityService.PractitionerSignup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Practitioner signup error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrPractitionerExists):
			respondWithError(w, http.StatusConflict, "Email or practice number already exist.")
		case errors.Is(err, domain.ErrUnsupportedRole):
			respondWithError(w, http.StatusBadRequest, "Unsupported profession")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      output.Message,
	})
}

func (h *AuthHandler) OrganizationSignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.OrganizationSignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identityService.OrganizationSignup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Organization signup error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrOrganizationExists):
			respondWithError(w, http.StatusConflict, "Organization already exist")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      output.Message,
	})
}

func (h *AuthHandler) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var input service.ResetPasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identityService.ResetPassword(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Password reset error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			respondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      output.Message,
	})
}

func (h *AuthHandler) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input service.ChangePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.identityService.ChangePassword(r.Context(), actor, input); err != nil {
		slog.ErrorContext(r.Context(), "Password change error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrIncorrectCurrentPassword):
			respondWithError(w, http.StatusUnauthorized, "Current password is incorrect")
		case errors.Is(err, domain.ErrAccountNotFound):
			respondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "Password changed successfully",
	})
}

// actorFromContext rebuilds the authenticated actor from the values the
// auth middleware stored on the request context.
func actorFromContext(r *http.Request) (service.Actor, bool) {
	sub, ok := r.Context().Value(middleware.ActorIDKey).(string)
	if !ok {
		return service.Actor{}, false
	}
	role, ok := r.Context().Value(middleware.ActorRoleKey).(string)
	if !ok {
		return service.Actor{}, false
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return service.Actor{}, false
	}

	return service.Actor{ID: id, Role: model.Role(role)}, true
}
