package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/pkg/models"
)

// fakeClient is a scripted ModelClient: it replays a fixed reply or error
// and records what it was asked.
type fakeClient struct {
	enabled    bool
	reply      *models.ModelReply
	err        error
	completion string

	lastReq *models.ConverseRequest
}

func (f *fakeClient) Enabled() bool { return f.enabled }

func (f *fakeClient) Converse(ctx context.Context, req *models.ConverseRequest) (*models.ModelReply, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}

func newTestAssistant(t *testing.T, client ModelClient) *Assistant {
	t.Helper()
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	cat := catalog.Build(cfg)
	return New(cat, catalog.NewSearcher(cat, cfg), client)
}

func TestConverseEmptyUtterance(t *testing.T) {
	asst := newTestAssistant(t, &fakeClient{enabled: true})

	if _, err := asst.Converse(context.Background(), nil, "   "); err == nil {
		t.Error("blank utterance should be rejected")
	}
}

func TestConverseOfflineJobs(t *testing.T) {
	asst := newTestAssistant(t, &fakeClient{enabled: false})

	msg, err := asst.Converse(context.Background(), nil, "Show me some jobs")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Role != models.ChatRoleAI {
		t.Errorf("reply role = %q, want ai", msg.Role)
	}
	if msg.Text != offlineJobsReplyText {
		t.Errorf("reply text = %q", msg.Text)
	}
	if msg.Data == nil || msg.Data.Kind != models.ItemKindJobs {
		t.Fatal("offline job reply should carry a jobs payload")
	}
	if len(msg.Data.Jobs) != offlineJobCount {
		t.Errorf("offline reply carries %d jobs, want %d", len(msg.Data.Jobs), offlineJobCount)
	}
}

func TestConverseOfflineGuidance(t *testing.T) {
	asst := newTestAssistant(t, &fakeClient{enabled: false})

	msg, err := asst.Converse(context.Background(), nil, "hello there")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Text != offlineGuidanceText {
		t.Errorf("reply text = %q", msg.Text)
	}
	if msg.Data != nil {
		t.Error("guidance reply should carry no payload")
	}
}

func TestConverseModelError(t *testing.T) {
	asst := newTestAssistant(t, &fakeClient{enabled: true, err: fmt.Errorf("upstream boom")})

	msg, err := asst.Converse(context.Background(), nil, "find react jobs")
	if err != nil {
		t.Fatalf("an upstream failure should not surface as an error: %v", err)
	}
	if msg.Text != errorReplyText {
		t.Errorf("reply text = %q, want the canned error reply", msg.Text)
	}
	if msg.Data != nil {
		t.Error("error reply should carry no payload")
	}
}

func TestConversePlainTextReply(t *testing.T) {
	client := &fakeClient{enabled: true, reply: &models.ModelReply{Text: "You could try searching for React."}}
	asst := newTestAssistant(t, client)

	msg, err := asst.Converse(context.Background(), nil, "what can you do?")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Text != "You could try searching for React." {
		t.Errorf("reply text = %q", msg.Text)
	}
	if client.lastReq == nil || len(client.lastReq.Tools) != 3 {
		t.Error("every model call should carry the three tool declarations")
	}
	if !strings.Contains(client.lastReq.SystemInstruction, "NebulaStream") {
		t.Error("system instruction should embed the catalog vocabulary")
	}
}

func TestConverseEmptyModelReply(t *testing.T) {
	asst := newTestAssistant(t, &fakeClient{enabled: true, reply: &models.ModelReply{}})

	msg, err := asst.Converse(context.Background(), nil, "hmm")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Text != fallbackGuidanceText {
		t.Errorf("reply text = %q, want fallback guidance", msg.Text)
	}
}

func TestConverseSearchJobsCall(t *testing.T) {
	client := &fakeClient{enabled: true, reply: &models.ModelReply{
		Call: &models.ToolCall{Name: toolSearchJobs, Args: map[string]string{"keywords": "React"}},
	}}
	asst := newTestAssistant(t, client)

	msg, err := asst.Converse(context.Background(), nil, "any react jobs?")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Data == nil || msg.Data.Kind != models.ItemKindJobs {
		t.Fatal("expected a jobs payload")
	}
	if len(msg.Data.Jobs) == 0 || len(msg.Data.Jobs) > 5 {
		t.Errorf("expected between 1 and 5 jobs, got %d", len(msg.Data.Jobs))
	}
	if !strings.Contains(msg.Text, `"React"`) {
		t.Errorf("summary %q should quote the searched term", msg.Text)
	}
}

func TestConverseSearchJobsNoResults(t *testing.T) {
	client := &fakeClient{enabled: true, reply: &models.ModelReply{
		Call: &models.ToolCall{Name: toolSearchJobs, Args: map[string]string{"keywords": "Blockchain"}},
	}}
	asst := newTestAssistant(t, client)

	msg, err := asst.Converse(context.Background(), nil, "blockchain jobs")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Data != nil {
		t.Error("zero results should produce a text-only reply")
	}
	if !strings.Contains(msg.Text, `"Blockchain"`) {
		t.Errorf("summary %q should name the searched term", msg.Text)
	}
}

func TestConverseSearchJobsMissingArgument(t *testing.T) {
	// A required argument the model failed to supply must not fall into
	// browse mode and dump the whole board.
	client := &fakeClient{enabled: true, reply: &models.ModelReply{
		Call: &models.ToolCall{Name: toolSearchJobs, Args: map[string]string{}},
	}}
	asst := newTestAssistant(t, client)

	msg, err := asst.Converse(context.Background(), nil, "jobs please")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Data != nil {
		t.Error("missing keywords should produce a text-only reply")
	}
}

func TestConverseSearchTalentsCall(t *testing.T) {
	client := &fakeClient{enabled: true, reply: &models.ModelReply{
		Call: &models.ToolCall{Name: toolSearchTalents, Args: map[string]string{"roleOrSkill": "Designer"}},
	}}
	asst := newTestAssistant(t, client)

	msg, err := asst.Converse(context.Background(), nil, "find me designers")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Data == nil || msg.Data.Kind != models.ItemKindTalents {
		t.Fatal("expected a talents payload")
	}
	if len(msg.Data.Talents) == 0 || len(msg.Data.Talents) > 4 {
		t.Errorf("expected between 1 and 4 talents, got %d", len(msg.Data.Talents))
	}
}

func TestConverseSearchCompaniesCall(t *testing.T) {
	client := &fakeClient{enabled: true, reply: &models.ModelReply{
		Call: &models.ToolCall{Name: toolSearchCompanies, Args: map[string]string{"industry": "FinTech"}},
	}}
	asst := newTestAssistant(t, client)

	msg, err := asst.Converse(context.Background(), nil, "fintech companies")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Data == nil || msg.Data.Kind != models.ItemKindCompanies {
		t.Fatal("expected a companies payload")
	}
}

func TestConverseUnsupportedTool(t *testing.T) {
	client := &fakeClient{enabled: true, reply: &models.ModelReply{
		Call: &models.ToolCall{Name: "delete_everything", Args: map[string]string{}},
	}}
	asst := newTestAssistant(t, client)

	msg, err := asst.Converse(context.Background(), nil, "do something weird")
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if msg.Text != unsupportedToolText {
		t.Errorf("reply text = %q", msg.Text)
	}
	if msg.Data != nil {
		t.Error("unsupported tool reply should carry no payload")
	}
}

func TestDraftCoverLetterOffline(t *testing.T) {
	asst := newTestAssistant(t, &fakeClient{enabled: false})
	job := asst.catalog.JobByID("job-1")

	letter := asst.DraftCoverLetter(context.Background(), job, "")
	if !strings.Contains(letter, "[Simulated AI Mode - No API Key]") {
		t.Errorf("offline letter should carry the simulated-mode banner: %q", letter)
	}
	if !strings.Contains(letter, job.Company) {
		t.Error("offline letter should mention the company")
	}
}

func TestDraftCoverLetterOnline(t *testing.T) {
	client := &fakeClient{enabled: true, completion: "Dear Hiring Manager, ..."}
	asst := newTestAssistant(t, client)
	job := asst.catalog.JobByID("job-1")

	letter := asst.DraftCoverLetter(context.Background(), job, "Go, Kubernetes")
	if letter != "Dear Hiring Manager, ..." {
		t.Errorf("letter = %q", letter)
	}
}

func TestDraftCoverLetterModelError(t *testing.T) {
	client := &fakeClient{enabled: true, err: fmt.Errorf("upstream boom")}
	asst := newTestAssistant(t, client)
	job := asst.catalog.JobByID("job-1")

	letter := asst.DraftCoverLetter(context.Background(), job, "")
	if letter != coverLetterErrorText {
		t.Errorf("letter = %q, want the canned error text", letter)
	}
}
