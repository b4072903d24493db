package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"frontera-be/pkg/llm"
)

type geminiChatParts struct {
	Text string `json:"text"`
}

type geminiChatContent struct {
	Parts []*geminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"maxOutputTokens,omitempty"`
}

type geminiChatRequest struct {
	Contents         []*geminiChatContent    `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiChatCandidate struct {
	Content *geminiChatContent `json:"content"`
}

type geminiChatResponse struct {
	Candidates []*geminiChatCandidate `json:"candidates"`
}

// GeminiProvider calls the Google Generative Language REST API.
type GeminiProvider struct {
	apiKey       string
	defaultModel string
	client       *http.Client
}

func NewGeminiProvider(apiKey, defaultModel string) *GeminiProvider {
	if defaultModel == "" {
		defaultModel = "gemini-2.0-flash"
	}
	return &GeminiProvider{
		apiKey:       apiKey,
		defaultModel: defaultModel,
		client:       &http.Client{},
	}
}

// Gemini's chat API has no system role; system messages are folded into the
// first user turn.
func toGeminiContents(history []llm.Message) []*geminiChatContent {
	contents := make([]*geminiChatContent, 0, len(history))
	pendingSystem := ""
	for _, m := range history {
		switch m.Role {
		case "system":
			if pendingSystem != "" {
				pendingSystem += "\n\n"
			}
			pendingSystem += m.Content
			continue
		case "assistant":
			contents = append(contents, &geminiChatContent{
				Parts: []*geminiChatParts{{Text: m.Content}},
				Role:  "model",
			})
		default:
			text := m.Content
			if pendingSystem != "" {
				text = pendingSystem + "\n\n" + text
				pendingSystem = ""
			}
			contents = append(contents, &geminiChatContent{
				Parts: []*geminiChatParts{{Text: text}},
				Role:  "user",
			})
		}
	}
	if pendingSystem != "" {
		contents = append(contents, &geminiChatContent{
			Parts: []*geminiChatParts{{Text: pendingSystem}},
			Role:  "user",
		})
	}
	return contents
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{}
	for _, opt := range options {
		opt(opts)
	}

	model := p.defaultModel
	if opts.Model != "" {
		model = opts.Model
	}

	payload := geminiChatRequest{
		Contents: toGeminiContents(history),
	}
	if opts.Temperature > 0 || opts.MaxTokens > 0 {
		payload.GenerationConfig = &geminiGenerationConfig{
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
		}
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1/models/%s:generateContent", model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
