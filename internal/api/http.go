package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aqala-site/aqala/internal/backend"
	"github.com/aqala-site/aqala/internal/services"
)

// Handler exposes the backend over HTTP. The write operations all funnel
// through the backend's dispatch table under /api/; the read paths the site
// templates use (post listings, the signed-in user) get their own GET routes.
type Handler struct {
	backend *backend.Backend
	log     *logrus.Logger
}

func NewHandler(b *backend.Backend, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{backend: b, log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/posts", h.handlePosts)       // GET ?category=&tag=&limit=
	mux.HandleFunc("/api/posts/", h.handlePostBySlug) // GET /api/posts/{slug}
	mux.HandleFunc("/api/me", h.handleMe)             // GET
	mux.HandleFunc("/api/", h.handleDispatch)         // everything else
}

// GET /api/posts
func (h *Handler) handlePosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, services.NewMethodNotAllowedError("method not allowed"))
		return
	}
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	posts := h.backend.GetPosts(services.PostFilter{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Limit:    limit,
	})
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// GET /api/posts/{slug}
func (h *Handler) handlePostBySlug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, services.NewMethodNotAllowedError("method not allowed"))
		return
	}
	slug := strings.TrimPrefix(r.URL.Path, "/api/posts/")
	post := h.backend.GetPostBySlug(slug)
	if post == nil {
		h.writeError(w, services.NewNotFoundError("post not found"))
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GET /api/me
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, services.NewMethodNotAllowedError("method not allowed"))
		return
	}
	user, ok := h.backend.CurrentUser()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// handleDispatch translates the HTTP request into a dispatch call: the
// endpoint is the path under /api plus the raw query, the body decodes into
// the shared payload shape.
func (h *Handler) handleDispatch(w http.ResponseWriter, r *http.Request) {
	endpoint := strings.TrimPrefix(r.URL.Path, "/api")
	if r.URL.RawQuery != "" {
		endpoint += "?" + r.URL.RawQuery
	}

	var p backend.Payload
	if r.Body != nil {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   string(services.ErrorInvalid),
				"message": "invalid JSON body",
			})
			return
		}
	}

	res, err := h.backend.Dispatch(endpoint, r.Method, p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := services.ErrorCode("internal")
	message := err.Error()
	if se, ok := services.AsServiceError(err); ok {
		code = se.Code
		message = se.Message
		status = statusFor(se.Code)
	} else {
		h.log.WithError(err).Error("unhandled dispatch error")
	}
	writeJSON(w, status, map[string]any{"error": string(code), "message": message})
}

func statusFor(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid, services.ErrorInvalidOption:
		return http.StatusBadRequest
	case services.ErrorUnauthenticated, services.ErrorInvalidCredentials:
		return http.StatusUnauthorized
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case services.ErrorDuplicateEmail, services.ErrorAlreadyVoted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
