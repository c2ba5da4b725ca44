package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/logsim/internal/domain"
	"github.com/dangerclosesec/logsim/internal/repository"
	"github.com/dangerclosesec/logsim/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CheckHandler handles API requests to check definitions and browse past runs
type CheckHandler struct {
	checkService *service.CheckService
	maxBodyBytes int64
}

// NewCheckHandler creates a new check handler. Request bodies larger than
// maxBodyBytes are rejected.
func NewCheckHandler(checkService *service.CheckService, maxBodyBytes int64) *CheckHandler {
	return &CheckHandler{
		checkService: checkService,
		maxBodyBytes: maxBodyBytes,
	}
}

type CheckResponse struct { // TypeGen: CheckResponse
	BaseResponse
	*service.CheckResult
}

// Check parses the posted definition
func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	var input service.CheckInput

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	if err := json.NewDecoder(body).Decode(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, domain.ErrSourceTooLarge.Error())
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.checkService.Check(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrSourceTooLarge):
			respondWithError(w, http.StatusRequestEntityTooLarge, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to check definition")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, CheckResponse{
		BaseResponse: BaseResponse{Ok: result.Success},
		CheckResult:  result,
	})
}

// ListRuns handles requests to retrieve past runs with filtering
func (h *CheckHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	params := repository.QueryParams{}

	// Apply filters from query parameters
	if source := r.URL.Query().Get("source"); source != "" {
		params.Source = source
	}

	if successStr := r.URL.Query().Get("success"); successStr != "" {
		success, err := strconv.ParseBool(successStr)
		if err == nil {
			params.Success = &success
		}
	}

	if startTimeStr := r.URL.Query().Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := r.URL.Query().Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	runs, total, err := h.checkService.ListRuns(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrStoreDisabled) {
			respondWithErrorCode(w, http.StatusServiceUnavailable, err.Error(), "store_disabled")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve runs")
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Runs  interface{} `json:"runs"`
		Total int64       `json:"total"`
	}{
		BaseResponse: BaseResponse{Ok: true},
		Runs:         runs,
		Total:        total,
	})
}

// GetRun handles requests to retrieve a specific run by ID
func (h *CheckHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		respondWithError(w, http.StatusBadRequest, "Missing run ID")
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	run, err := h.checkService.GetRun(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRunNotFound):
			respondWithError(w, http.StatusNotFound, "Run not found")
		case errors.Is(err, domain.ErrStoreDisabled):
			respondWithErrorCode(w, http.StatusServiceUnavailable, err.Error(), "store_disabled")
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to retrieve run")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, run)
}
