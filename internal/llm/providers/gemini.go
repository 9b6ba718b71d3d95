package providers

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/pkg/models"
)

// GeminiProvider implements the model provider interface using Google's
// Gemini API with function calling.
type GeminiProvider struct {
	client *genai.Client
	config *config.Config
	logger logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Converse sends the utterance with tool declarations and returns the
// model's reply. Only the first function call emitted by the model is kept.
func (gp *GeminiProvider) Converse(ctx context.Context, req *models.ConverseRequest) (*models.ModelReply, error) {
	ctx, cancel := context.WithTimeout(ctx, gp.config.LLM.Timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(gp.config.LLM.Temperature),
		MaxOutputTokens:   int32(gp.config.LLM.MaxTokens),
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Tools:             toGenaiTools(req.Tools),
	}

	resp, err := gp.client.Models.GenerateContent(ctx, gp.config.LLM.Model, genai.Text(req.Utterance), genConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	reply := &models.ModelReply{Text: strings.TrimSpace(resp.Text())}

	if calls := resp.FunctionCalls(); len(calls) > 0 {
		call := calls[0]
		if len(calls) > 1 {
			gp.logger.Warn("Model emitted multiple function calls, honoring the first", map[string]interface{}{
				"count": len(calls),
				"name":  call.Name,
			})
		}
		reply.Call = &models.ToolCall{
			Name: call.Name,
			Args: stringArgs(call.Args),
		}
	}

	return reply, nil
}

// Complete sends a plain free-text prompt and returns the model's text
func (gp *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gp.config.LLM.Timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(gp.config.LLM.Temperature),
		MaxOutputTokens: int32(gp.config.LLM.MaxTokens),
	}

	resp, err := gp.client.Models.GenerateContent(ctx, gp.config.LLM.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}

	return text, nil
}

// IsHealthy checks if the Gemini provider is healthy and available
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	if gp.config.LLM.APIKey == "" {
		return fmt.Errorf("Gemini API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := gp.client.Models.GenerateContent(ctx, gp.config.LLM.Model, genai.Text("Hello"), nil)
	if err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}

func toGenaiTools(decls []models.ToolDecl) []*genai.Tool {
	if len(decls) == 0 {
		return nil
	}

	declarations := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, decl := range decls {
		properties := make(map[string]*genai.Schema, len(decl.Params))
		var required []string
		for _, param := range decl.Params {
			properties[param.Name] = &genai.Schema{
				Type:        genai.TypeString,
				Description: param.Description,
			}
			if param.Required {
				required = append(required, param.Name)
			}
		}

		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        decl.Name,
			Description: decl.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   required,
			},
		})
	}

	return []*genai.Tool{{FunctionDeclarations: declarations}}
}

func stringArgs(args map[string]any) map[string]string {
	out := make(map[string]string, len(args))
	for key, value := range args {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}
