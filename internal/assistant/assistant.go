package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/pkg/models"
	"github.com/ysqsimon/Remotely/pkg/utils"
)

// Canned reply texts. Every failure state of a turn resolves to one of
// these; the assistant never surfaces an upstream error to the caller.
const (
	errorReplyText        = "Sorry, I encountered an error processing your request."
	fallbackGuidanceText  = "I'm not sure how to help with that. Try asking for 'React jobs' or 'Designers'."
	offlineJobsReplyText  = "I'm running in offline mode. Here are some jobs I found matching your request:"
	offlineGuidanceText   = "I'm running in offline mode. Please add an API key to enable smart search. (Try asking for 'jobs')"
	unsupportedToolText   = "I couldn't find anything for that request. Try asking for jobs, talents or companies instead."
)

// offlineJobCount is the fixed slice of the job catalog returned by the
// offline heuristic.
const offlineJobCount = 4

// ModelClient is the conversational surface of the model layer the
// assistant depends on. *llm.Manager implements it; tests substitute fakes.
type ModelClient interface {
	Enabled() bool
	Converse(ctx context.Context, req *models.ConverseRequest) (*models.ModelReply, error)
	Complete(ctx context.Context, prompt string) (string, error)
}

// Assistant turns user utterances into chat replies, using the model's
// function calling to run structured searches against the catalog.
type Assistant struct {
	catalog  *catalog.Catalog
	searcher *catalog.Searcher
	client   ModelClient
	logger   logging.Logger
}

// New creates an assistant over the given catalog, searcher and model client
func New(cat *catalog.Catalog, searcher *catalog.Searcher, client ModelClient) *Assistant {
	return &Assistant{
		catalog:  cat,
		searcher: searcher,
		client:   client,
		logger:   logging.GetGlobalLogger(),
	}
}

// Converse handles one conversational turn and always resolves to a
// well-formed ai message: upstream failures, unsupported tool calls and
// empty results all map to explanatory text. The error return is reserved
// for caller mistakes (empty utterance). The transcript is the session
// history for context ownership; only the newest utterance is sent upstream.
func (a *Assistant) Converse(ctx context.Context, transcript []models.ChatMessage, utterance string) (*models.ChatMessage, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, utils.NewBadRequestError("utterance must not be empty")
	}

	if !a.client.Enabled() {
		return a.offlineReply(utterance), nil
	}

	reply, err := a.client.Converse(ctx, &models.ConverseRequest{
		SystemInstruction: a.systemInstruction(),
		Utterance:         utterance,
		Tools:             toolDeclarations(),
	})
	if err != nil {
		a.logger.Error("Assistant model call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return a.newAIMessage(errorReplyText, nil), nil
	}

	if reply.Call == nil {
		text := reply.Text
		if text == "" {
			text = fallbackGuidanceText
		}
		return a.newAIMessage(text, nil), nil
	}

	invocation, ok := parseToolCall(reply.Call)
	if !ok {
		a.logger.Warn("Model requested an unsupported tool", map[string]interface{}{
			"tool": reply.Call.Name,
		})
		return a.newAIMessage(unsupportedToolText, nil), nil
	}

	return a.executeTool(invocation), nil
}

// executeTool dispatches over the closed invocation set and shapes the
// reply: a payload only when results exist, otherwise a text-only message
// naming the searched term. A missing required argument short-circuits to
// the zero-result reply rather than falling into browse mode.
func (a *Assistant) executeTool(invocation toolInvocation) *models.ChatMessage {
	switch call := invocation.(type) {
	case searchJobsInvocation:
		if call.keywords == "" {
			return a.newAIMessage(emptyJobsSummary(call.keywords), nil)
		}
		jobs := a.searcher.SearchJobs(call.keywords, call.location)
		if len(jobs) == 0 {
			return a.newAIMessage(emptyJobsSummary(call.keywords), nil)
		}
		return a.newAIMessage(
			fmt.Sprintf("I found %d jobs related to %q.", len(jobs), call.keywords),
			&models.ResultPayload{Kind: models.ItemKindJobs, Jobs: jobs},
		)

	case searchTalentsInvocation:
		if call.roleOrSkill == "" {
			return a.newAIMessage(fmt.Sprintf("I couldn't find talents matching %q.", call.roleOrSkill), nil)
		}
		talents := a.searcher.SearchTalents(call.roleOrSkill)
		if len(talents) == 0 {
			return a.newAIMessage(fmt.Sprintf("I couldn't find talents matching %q.", call.roleOrSkill), nil)
		}
		return a.newAIMessage(
			fmt.Sprintf("Here are some top talents matching %q.", call.roleOrSkill),
			&models.ResultPayload{Kind: models.ItemKindTalents, Talents: talents},
		)

	case searchCompaniesInvocation:
		if call.industry == "" {
			return a.newAIMessage(fmt.Sprintf("No companies found for %q.", call.industry), nil)
		}
		companies := a.searcher.SearchCompanies(call.industry)
		if len(companies) == 0 {
			return a.newAIMessage(fmt.Sprintf("No companies found for %q.", call.industry), nil)
		}
		return a.newAIMessage(
			fmt.Sprintf("I found these companies related to %q.", call.industry),
			&models.ResultPayload{Kind: models.ItemKindCompanies, Companies: companies},
		)

	default:
		return a.newAIMessage(unsupportedToolText, nil)
	}
}

// offlineReply is the deterministic heuristic used when no credential is
// configured: utterances mentioning jobs get the first few catalog jobs,
// everything else gets guidance naming the one working offline query.
func (a *Assistant) offlineReply(utterance string) *models.ChatMessage {
	if strings.Contains(strings.ToLower(utterance), "job") {
		count := offlineJobCount
		if count > len(a.catalog.Jobs) {
			count = len(a.catalog.Jobs)
		}
		jobs := a.catalog.Jobs[:count]
		if len(jobs) > 0 {
			return a.newAIMessage(offlineJobsReplyText, &models.ResultPayload{
				Kind: models.ItemKindJobs,
				Jobs: jobs,
			})
		}
	}
	return a.newAIMessage(offlineGuidanceText, nil)
}

func (a *Assistant) newAIMessage(text string, data *models.ResultPayload) *models.ChatMessage {
	return &models.ChatMessage{
		ID:   utils.GenerateMessageID(),
		Role: models.ChatRoleAI,
		Text: text,
		Data: data,
	}
}

func emptyJobsSummary(keywords string) string {
	return fmt.Sprintf("I couldn't find any jobs matching %q. Try searching for specific roles like \"Frontend\" or \"Backend\".", keywords)
}
