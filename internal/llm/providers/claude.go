package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/pkg/models"
)

// ClaudeProvider implements the model provider interface using Anthropic's
// Claude with tool use.
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Converse sends the utterance with tool declarations and returns the
// model's reply. Only the first tool_use block emitted by the model is kept.
func (cp *ClaudeProvider) Converse(ctx context.Context, req *models.ConverseRequest) (*models.ModelReply, error) {
	ctx, cancel := context.WithTimeout(ctx, cp.config.LLM.Timeout)
	defer cancel()

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       cp.model(),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		System: []anthropic.TextBlockParam{
			{Text: req.SystemInstruction},
		},
		Tools: toClaudeTools(req.Tools),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.Utterance},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	reply := &models.ModelReply{}

	var text strings.Builder
	for _, block := range response.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(b.Text)
		case anthropic.ToolUseBlock:
			if reply.Call != nil {
				cp.logger.Warn("Model emitted multiple tool_use blocks, honoring the first", map[string]interface{}{
					"name": b.Name,
				})
				continue
			}

			var args map[string]any
			if err := json.Unmarshal(b.Input, &args); err != nil {
				cp.logger.Warn("Failed to decode tool_use input", map[string]interface{}{
					"name":  b.Name,
					"error": err.Error(),
				})
				continue
			}

			reply.Call = &models.ToolCall{
				Name: b.Name,
				Args: stringArgs(args),
			}
		}
	}

	reply.Text = strings.TrimSpace(text.String())
	return reply, nil
}

// Complete sends a plain free-text prompt and returns the model's text
func (cp *ClaudeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cp.config.LLM.Timeout)
	defer cancel()

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       cp.model(),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var text strings.Builder
	for _, block := range response.Content {
		textContent := block.AsText()
		text.WriteString(textContent.Text)
	}

	output := strings.TrimSpace(text.String())
	if output == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	return output, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     cp.model(),
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}

func (cp *ClaudeProvider) model() anthropic.Model {
	if cp.config.LLM.Model != "" && !strings.HasPrefix(cp.config.LLM.Model, "gemini") {
		return anthropic.Model(cp.config.LLM.Model)
	}
	return anthropic.ModelClaude3_7SonnetLatest
}

func toClaudeTools(decls []models.ToolDecl) []anthropic.ToolUnionParam {
	tools := make([]anthropic.ToolUnionParam, 0, len(decls))
	for _, decl := range decls {
		properties := make(map[string]interface{}, len(decl.Params))
		var required []string
		for _, param := range decl.Params {
			properties[param.Name] = map[string]interface{}{
				"type":        "string",
				"description": param.Description,
			}
			if param.Required {
				required = append(required, param.Name)
			}
		}

		tools = append(tools, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        decl.Name,
				Description: anthropic.String(decl.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: properties,
					Required:   required,
				},
			},
		})
	}
	return tools
}
