package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/lcoe-forecast/internal/config"
	"github.com/iwvelando/lcoe-forecast/internal/forecast"
	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
	"github.com/iwvelando/lcoe-forecast/pkg/location"
	"github.com/iwvelando/lcoe-forecast/pkg/output"
	"go.uber.org/zap"
)

// RequestIDHeader carries the identifier assigned to each request.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	table         *location.Table
}

// NewHandler constructs the HTTP handler that serves the projection API.
// A nil table serves the built-in location presets.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string, table *location.Table) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if table == nil {
		table = location.DefaultTable()
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion, table: table}

	mux := http.NewServeMux()

	// Single projection from JSON parameters
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Every active scenario of an uploaded configuration file
	mux.HandleFunc("/api/projection/upload", h.handleProjectionUpload)

	mux.HandleFunc("/api/locations", h.handleLocations)
	mux.HandleFunc("/api/version", h.handleVersion)

	return h.withRequestID(mux)
}

func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

		h.logger.Debug("request handled",
			zap.String("op", "server.withRequestID"),
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) requestLogger(r *http.Request) *zap.Logger {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return h.logger.With(zap.String("request_id", id))
	}
	return h.logger
}

type projectionRequest struct {
	Location   string            `json:"location,omitempty"`
	Parameters config.Parameters `json:"parameters"`
}

type projectionResponse struct {
	Scenarios []output.ScenarioReport `json:"scenarios"`
	CSV       string                  `json:"csv"`
	Warnings  []string                `json:"warnings,omitempty"`
	Duration  string                  `json:"duration"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode parameters: %v", err), op)
		return
	}

	conf := config.Configuration{
		Locations: h.table.Presets(),
		Scenarios: []config.Scenario{{
			Name:       "projection",
			Active:     true,
			Location:   req.Location,
			Parameters: req.Parameters,
		}},
	}

	h.runProjections(w, r, conf, start, op)
}

func (h *handler) handleProjectionUpload(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjectionUpload"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.requestLogger(r).Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	conf, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	// Uploaded presets override the server's table, which overrides the
	// built-in one.
	table, err := h.table.Merge(conf.Locations)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("invalid location presets: %v", err), op)
		return
	}
	conf.Locations = table.Presets()

	h.runProjections(w, r, *conf, start, op)
}

func (h *handler) runProjections(w http.ResponseWriter, r *http.Request, conf config.Configuration, start time.Time, op string) {
	logger := h.requestLogger(r)
	warnings := conf.ValidateConfiguration()

	results, err := forecast.GetProjections(logger, conf)
	if err != nil {
		h.respondErrorWithOp(w, r, projectionErrorStatus(err), err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	response := projectionResponse{
		Scenarios: output.Reports(results),
		CSV:       output.CsvString(results),
		Warnings:  warnings,
		Duration:  elapsed.String(),
	}

	logger.Info("projection computed",
		zap.String("op", op),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// projectionErrorStatus maps a projection failure to an HTTP status. Inputs
// the engine rejects are unprocessable; anything else, such as an unknown
// location, is a bad request.
func projectionErrorStatus(err error) int {
	if errors.Is(err, lcoe.ErrInvalidInput) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func (h *handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, h.table.Presets())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.requestLogger(r).Error("projection request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
