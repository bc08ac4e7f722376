package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/0xalexb/objectops"
	"github.com/0xalexb/objectops/codec"
	"github.com/0xalexb/objectops/recipe"
	"github.com/0xalexb/objectops/service/middleware"
)

// Routes served by the handler.
const (
	ApplyPath  = "/apply"
	HealthPath = "/healthz"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type handler struct {
	program *recipe.Program
}

// NewHandler returns the edit service's HTTP handler for program, wrapped with
// request ID, access logging, panic recovery and body size middleware. Only
// MaxBodyBytes is read from cfg; a non-positive limit uses the middleware default.
func NewHandler(program *recipe.Program, cfg Config) (http.Handler, error) {
	if program == nil {
		return nil, ErrNilProgram
	}

	h := &handler{program: program}

	mux := http.NewServeMux()
	mux.HandleFunc(ApplyPath, h.apply)
	mux.HandleFunc(HealthPath, h.health)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found")
	})

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, http.StatusInternalServerError, "internal error")
		}),
		middleware.MaxRequestSize(cfg.MaxBodyBytes),
	), nil
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h *handler) apply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")

		return
	}

	format, err := codec.FormatFromMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, r, http.StatusUnsupportedMediaType, err.Error())

		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		if middleware.TooLarge(err) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")

			return
		}

		writeError(w, r, http.StatusBadRequest, err.Error())

		return
	}

	doc, err := codec.Decode(body, format)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())

		return
	}

	logger := slog.Default().With(slog.String("request_id", middleware.GetRequestID(r.Context())))

	result, err := h.program.Run(doc, objectops.WithLogger(logger))
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())

		return
	}

	out, err := codec.Encode(result, format)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())

		return
	}

	w.Header().Set("Content-Type", format.MediaType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(errorBody{
		Error:     message,
		RequestID: middleware.GetRequestID(r.Context()),
	})
	if err != nil {
		slog.Debug("writing error response failed", slog.Any("error", err))
	}
}
