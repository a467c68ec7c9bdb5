package httptransport

import (
	"context"
	"net/http"

	"github.com/asaskevich/govalidator"

	"taskdeck/internal/user"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type registerResponse struct {
	Message string     `json:"message"`
	User    *user.User `json:"user"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if req.Email != "" && !govalidator.IsEmail(req.Email) {
		h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "Invalid email"))
		return
	}

	created, err := h.users.Register(ctx, user.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Message: "User created successfully",
		User:    created,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int64      `json:"expires_in"`
	User        *user.User `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	u, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.writeTokenResponse(ctx, w, u)
}

type federatedLoginRequest struct {
	Provider string `json:"provider"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

func (h *Handler) handleFederatedLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req federatedLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if req.Email != "" && !govalidator.IsEmail(req.Email) {
		h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "Invalid email"))
		return
	}

	u, err := h.users.FederatedLogin(ctx, user.Provider(req.Provider), req.Email, req.Name)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.writeTokenResponse(ctx, w, u)
}

func (h *Handler) writeTokenResponse(ctx context.Context, w http.ResponseWriter, u *user.User) {
	token, err := h.tokens.GenerateAccessToken(u.ID, requestcontext.Now(ctx))
	if err != nil {
		h.writeError(ctx, w, dErrors.Wrap(err, dErrors.CodeInternal, "Error signing in"))
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokens.TTL().Seconds()),
		User:        u,
	})
}
