package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/logsim/internal/domain"
	"github.com/dangerclosesec/logsim/internal/handler"
	"github.com/dangerclosesec/logsim/internal/mocks"
	"github.com/dangerclosesec/logsim/internal/model"
	"github.com/dangerclosesec/logsim/internal/repository"
	"github.com/dangerclosesec/logsim/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(repo repository.ParseRunRepositoryIface, maxBody int64) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := service.NewCheckService(repo, logger, maxBody)
	return handler.NewRouter(handler.NewCheckHandler(svc, maxBody), logger, 5*time.Second)
}

func postCheck(t *testing.T, srv http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(nil, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestCheckHandler(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		rec := postCheck(t, newServer(nil, 1<<20), `{"name":"ok.def","source":"DEVICES { SWITCH s(1); } MONITOR { s; } END"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Ok          bool     `json:"ok"`
			Success     bool     `json:"success"`
			Devices     int      `json:"devices"`
			Signals     []string `json:"signals"`
			Diagnostics []any    `json:"diagnostics"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Devices)
		assert.Equal(t, []string{"s"}, resp.Signals)
		assert.Empty(t, resp.Diagnostics)
	})

	t.Run("definition with errors", func(t *testing.T) {
		rec := postCheck(t, newServer(nil, 1<<20), `{"name":"bad.def","source":"DEVICES {\n  CLOCK c(0);\n} END"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Ok          bool `json:"ok"`
			Diagnostics []struct {
				Kind    string `json:"kind"`
				Line    int    `json:"line"`
				Column  int    `json:"column"`
				Caret   string `json:"caret"`
				Message string `json:"message"`
			} `json:"diagnostics"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Ok)
		require.Len(t, resp.Diagnostics, 1)
		assert.Equal(t, "INVALID_CYCLE_VALUE", resp.Diagnostics[0].Kind)
		assert.Equal(t, 2, resp.Diagnostics[0].Line)
		assert.Equal(t, 11, resp.Diagnostics[0].Column)
		assert.Equal(t, "          ^", resp.Diagnostics[0].Caret)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postCheck(t, newServer(nil, 1<<20), `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		rec := postCheck(t, newServer(nil, 1<<20), `{"source":"END"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrInvalidInput.Error())
	})

	t.Run("body too large", func(t *testing.T) {
		rec := postCheck(t, newServer(nil, 16), `{"name":"big.def","source":"DEVICES { SWITCH s(1); } END"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader("END"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		newServer(nil, 0).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestRunsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("store disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newServer(nil, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error_code":"store_disabled"`)
	})

	t.Run("list with filters", func(t *testing.T) {
		repo := mocks.NewMockParseRunRepositoryIface(ctrl)
		run := model.ParseRun{ID: uuid.New(), Source: "a.def", Success: false, ErrorCount: 2}

		repo.EXPECT().
			Query(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params repository.QueryParams) ([]model.ParseRun, int64, error) {
				assert.Equal(t, "a.def", params.Source)
				require.NotNil(t, params.Success)
				assert.False(t, *params.Success)
				assert.Equal(t, 5, params.Limit)
				assert.Equal(t, 0, params.Offset)
				return []model.ParseRun{run}, 7, nil
			})

		rec := httptest.NewRecorder()
		newServer(repo, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs?source=a.def&success=false&limit=5&offset=-1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Runs  []model.ParseRun `json:"runs"`
			Total int64            `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.Total)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, run.ID, resp.Runs[0].ID)
	})

	t.Run("get run", func(t *testing.T) {
		repo := mocks.NewMockParseRunRepositoryIface(ctrl)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(&model.ParseRun{ID: id, Source: "b.def"}, nil)

		rec := httptest.NewRecorder()
		newServer(repo, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/"+id.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"source":"b.def"`)
	})

	t.Run("get missing run", func(t *testing.T) {
		repo := mocks.NewMockParseRunRepositoryIface(ctrl)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRunNotFound)

		rec := httptest.NewRecorder()
		newServer(repo, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/"+id.String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad run id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newServer(nil, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
