package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the DeepSeek API
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// DeepSeekGenerator handles interactions with the DeepSeek chat completions API
type DeepSeekGenerator struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewDeepSeekGenerator creates a new DeepSeekGenerator instance
func NewDeepSeekGenerator(apiKey, apiURL, model string) (*DeepSeekGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
	}
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}
	if model == "" {
		model = "deepseek-chat"
	}

	return &DeepSeekGenerator{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{},
	}, nil
}

// Generate sends prompt as the only user message and returns the first choice's content
func (g *DeepSeekGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := Request{
		Model: g.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[DeepSeek] API request failed with status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", errors.New("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
