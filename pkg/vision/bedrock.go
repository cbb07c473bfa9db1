package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// BedrockAPI is the subset of the Bedrock runtime client used by the
// provider.
type BedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockProvider implements CompletionProvider on top of a Bedrock
// multimodal model.
type BedrockProvider struct {
	Client  BedrockAPI
	ModelID string
}

// NewBedrockProvider creates a new BedrockProvider.
func NewBedrockProvider(client BedrockAPI, modelID string) *BedrockProvider {
	return &BedrockProvider{Client: client, ModelID: modelID}
}

// Make sure we conform to the interface
var _ CompletionProvider = (*BedrockProvider)(nil)

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	Messages         []bedrockMessage `json:"messages"`
}

type bedrockMessage struct {
	Role    string           `json:"role"`
	Content []bedrockContent `json:"content"`
}

type bedrockContent struct {
	Type   string         `json:"type"`
	Text   string         `json:"text,omitempty"`
	Source *bedrockSource `json:"source,omitempty"`
}

type bedrockSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type bedrockResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends the prompt and image to the model and returns the completion
// text with any markdown code fences stripped.
func (p *BedrockProvider) Complete(ctx context.Context, prompt string, image []byte) (string, error) {
	request := bedrockRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        1024,
		Messages: []bedrockMessage{{
			Role: "user",
			Content: []bedrockContent{
				{
					Type: "image",
					Source: &bedrockSource{
						Type:      "base64",
						MediaType: "image/jpeg",
						Data:      base64.StdEncoding.EncodeToString(image),
					},
				},
				{Type: "text", Text: prompt},
			},
		}},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal model request: %w", err)
	}

	result, err := p.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(p.ModelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("model invocation failed: %w", err)
	}

	var response bedrockResponse
	if err := json.Unmarshal(result.Body, &response); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(response.Content) == 0 {
		return "", fmt.Errorf("model returned empty response")
	}

	return stripCodeFences(response.Content[0].Text), nil
}

// stripCodeFences removes a surrounding markdown code block if the model
// wrapped its JSON in one.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
