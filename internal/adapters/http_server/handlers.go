package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"realestate_chatbot/internal/adapters/observability"
	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/domain"
)

const (
	maxBodyBytes = 64 << 10

	apologyText = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment."
)

type Handlers struct {
	Chat          *app.ChatService
	Auth          *app.AuthService
	LoginLimiter  *IPLimiter // optional
	SecureCookies bool
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type chatRequest struct {
	Message         string                  `json:"message"`
	PropertyDetails *domain.PropertyDetails `json:"propertyDetails"`
}

type chatResponse struct {
	Reply      string `json:"reply"`
	Prediction *int64 `json:"prediction"`
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	Message string            `json:"message,omitempty"`
	User    domain.PublicUser `json:"user"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Group(func(r chi.Router) {
		r.Use(Authenticate(h.Auth))

		r.Post("/chat", h.chat)
		r.Get("/chat/history", h.history)
		r.Get("/chat/history/{userId}", h.history)

		r.Post("/auth/signup", h.signup)
		if h.LoginLimiter != nil {
			r.With(h.LoginLimiter.Middleware).Post("/auth/login", h.login)
		} else {
			r.Post("/auth/login", h.login)
		}
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// detail strips the sentinel prefix from a wrapped error message.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Bad Request", detail(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Invalid property details", detail(err, domain.ErrInvalidInput))
	case errors.Is(err, domain.ErrUserExists):
		writeProblem(w, http.StatusBadRequest, "Bad Request", "User already exists with this email")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusBadRequest, "Bad Request", "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthenticated):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "Not authenticated")
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", "Unauthorized access")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "User not found")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Server error. Please try again later.")
	}
}

func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "body must be JSON with a message field")
		return
	}

	var caller *domain.Principal
	if p, ok := PrincipalFrom(r.Context()); ok {
		caller = &p
	}

	reply, err := h.Chat.Chat(r.Context(), caller, req.Message, req.PropertyDetails)
	if errors.Is(err, domain.ErrInvalidInput) {
		observability.ObserveValuation(false)
		writeError(w, err)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("chat failed")
		writeJSON(w, http.StatusInternalServerError, chatResponse{Reply: apologyText})
		return
	}

	observability.ObserveIntent(string(reply.Intent.Kind))
	annotate(r.Context(), func(a *annotations) { a.intent = string(reply.Intent.Kind) })
	if reply.Prediction != nil {
		observability.ObserveEstimate(*reply.Prediction)
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply.Text, Prediction: reply.Prediction})
}

func (h *Handlers) history(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	turns, err := h.Chat.History(r.Context(), p, chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": turns})
}

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := decode(r, &c); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "body must be JSON")
		return
	}
	u, tok, err := h.Auth.Signup(r.Context(), c.Name, c.Email, c.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	h.setToken(w, tok)
	writeJSON(w, http.StatusCreated, userResponse{Message: "User registered successfully", User: u.Public()})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := decode(r, &c); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "body must be JSON")
		return
	}
	u, tok, err := h.Auth.Login(r.Context(), c.Email, c.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	h.setToken(w, tok)
	writeJSON(w, http.StatusOK, userResponse{Message: "Login successful", User: u.Public()})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name: tokenCookie, Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, Secure: h.SecureCookies, SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	u, err := h.Auth.Me(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: u.Public()})
}

func (h *Handlers) setToken(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(app.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
