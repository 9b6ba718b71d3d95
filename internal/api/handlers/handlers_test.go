package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ysqsimon/Remotely/internal/assistant"
	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/llm"
	"github.com/ysqsimon/Remotely/internal/session"
	"github.com/ysqsimon/Remotely/pkg/models"

	"github.com/labstack/echo/v4"
)

type testEnv struct {
	echo     *echo.Echo
	catalog  *catalog.Catalog
	searcher *catalog.Searcher
	store    *session.Store
	asst     *assistant.Assistant
}

// newTestEnv wires the full stack with no API key, so the assistant runs
// in offline mode and every handler stays deterministic.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	cfg.LLM.APIKey = ""

	cat := catalog.Build(cfg)
	searcher := catalog.NewSearcher(cat, cfg)

	manager := llm.NewManager(cfg)
	if err := manager.Start(); err != nil {
		t.Fatalf("manager start failed: %v", err)
	}

	return &testEnv{
		echo:     echo.New(),
		catalog:  cat,
		searcher: searcher,
		store:    session.NewStore(cfg),
		asst:     assistant.New(cat, searcher, manager),
	}
}

func (env *testEnv) get(t *testing.T, handler echo.HandlerFunc, target string, pathParam ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func (env *testEnv) post(t *testing.T, handler echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestJobsHandlerBrowse(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, JobsHandler(env.searcher), "/api/v1/jobs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp models.JobListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Total != len(env.catalog.Jobs) {
		t.Errorf("total = %d, want %d", resp.Total, len(env.catalog.Jobs))
	}
}

func TestJobsHandlerSearch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, JobsHandler(env.searcher), "/api/v1/jobs?q=react&location=us")

	var resp models.JobListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Total == 0 || resp.Total > 5 {
		t.Errorf("total = %d, want between 1 and 5", resp.Total)
	}
	for _, job := range resp.Jobs {
		if !strings.Contains(strings.ToLower(job.Location), "us") {
			t.Errorf("job location %q escaped the filter", job.Location)
		}
	}
}

func TestJobHandlerNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, JobHandler(env.catalog), "/api/v1/jobs/job-999", "id", "job-999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Error != "job_not_found" {
		t.Errorf("error code = %q", resp.Error)
	}
}

func TestChatHandlerOfflineTurn(t *testing.T) {
	env := newTestEnv(t)
	handler := ChatHandler(env.store, env.asst)

	rec := env.post(t, handler, "/api/v1/assistant/chat", `{"message":"show me jobs"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("a first turn should allocate a session")
	}
	if resp.Message.Role != models.ChatRoleAI {
		t.Errorf("message role = %q", resp.Message.Role)
	}
	if resp.Message.Data == nil || len(resp.Message.Data.Jobs) != 4 {
		t.Error("offline job turn should carry four jobs")
	}

	// The turn is persisted as user message plus reply.
	messages, ok := env.store.Transcript(resp.SessionID)
	if !ok {
		t.Fatal("session missing after turn")
	}
	if len(messages) != 2 {
		t.Errorf("transcript has %d messages, want 2", len(messages))
	}

	// A second turn on the same session extends the transcript.
	rec = env.post(t, handler, "/api/v1/assistant/chat",
		`{"session_id":"`+resp.SessionID+`","message":"hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second turn status = %d", rec.Code)
	}
	messages, _ = env.store.Transcript(resp.SessionID)
	if len(messages) != 4 {
		t.Errorf("transcript has %d messages after two turns, want 4", len(messages))
	}
}

func TestChatHandlerBlankMessage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, ChatHandler(env.store, env.asst), "/api/v1/assistant/chat", `{"message":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestChatHandlerUnknownSessionStartsFresh(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, ChatHandler(env.store, env.asst), "/api/v1/assistant/chat",
		`{"session_id":"00000000-0000-0000-0000-000000000000","message":"hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.SessionID == "00000000-0000-0000-0000-000000000000" {
		t.Error("an unknown session ID should be replaced, not adopted")
	}
}

func TestTranscriptHandler(t *testing.T) {
	env := newTestEnv(t)
	id := env.store.Create()

	rec := env.get(t, TranscriptHandler(env.store), "/api/v1/assistant/sessions/"+id, "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = env.get(t, TranscriptHandler(env.store), "/api/v1/assistant/sessions/nope", "id", "nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCoverLetterHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := CoverLetterHandler(env.catalog, env.asst)

	rec := env.post(t, handler, "/api/v1/assistant/cover-letter", `{"job_id":"job-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp models.CoverLetterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.JobID != "job-1" {
		t.Errorf("job ID = %q", resp.JobID)
	}
	if !strings.Contains(resp.Letter, "[Simulated AI Mode - No API Key]") {
		t.Error("offline letter should carry the simulated-mode banner")
	}

	rec = env.post(t, handler, "/api/v1/assistant/cover-letter", `{"job_id":"job-999"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	rec = env.post(t, handler, "/api/v1/assistant/cover-letter", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
