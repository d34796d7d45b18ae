package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitcal/internal/telemetry/tracing"
	"github.com/2beens/fitcal/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

const TokenHeader = "X-FITCAL-TOKEN"

type accountService interface {
	SignUp(ctx context.Context, creds Credentials) (*User, error)
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	service  accountService
	validate *validator.Validate
}

func NewHandler(service accountService) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

// SetupRoutes registers the /a subrouter; middlewares (rate limiting, cors) apply to it only.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, middlewares ...mux.MiddlewareFunc) {
	authRouter := mainRouter.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/signup", handler.handleSignUp).Methods("POST", "OPTIONS").Name("signup")
	authRouter.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.handleLogout).Methods("GET", "OPTIONS").Name("logout")
	authRouter.Use(middlewares...)
}

func (handler *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signup")
	defer span.End()

	creds, ok := handler.readCredentials(w, r)
	if !ok {
		return
	}

	user, err := handler.service.SignUp(ctx, creds)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			http.Error(w, "error, user already exists", http.StatusConflict)
			return
		}
		log.Errorf("signup failed: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("signup, marshal user: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new signup: %s", user.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, ok := handler.readCredentials(w, r)
	if !ok {
		return
	}

	token, err := handler.service.Login(ctx, creds, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			log.Tracef("failed login attempt for: %s", creds.Email)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	tokenJson, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		log.Errorf("login, marshal token: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, tokenJson, http.StatusOK)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) readCredentials(w http.ResponseWriter, r *http.Request) (Credentials, bool) {
	var creds Credentials
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return creds, false
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Tracef("unmarshal credentials: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return creds, false
	}
	if err := handler.validate.Struct(creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return creds, false
	}
	return creds, true
}
