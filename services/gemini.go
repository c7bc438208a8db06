package services

import (
	"context"
	"errors"
	"strings"

	"adhkari/config"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Global Gemini client instance
var geminiClient *genai.Client

// InitTranslationService initializes the Gemini client using the API key from
// the config
func InitTranslationService(cfg *config.Config) {
	var err error
	geminiClient, err = initGemini(cfg.Gemini.ApiKey)
	if err != nil {
		panic("Failed to initialize Gemini client: " + err.Error())
	}
}

func initGemini(apiKey string) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{}
	if apiKey != "" {
		clientConfig.APIKey = apiKey
	}
	return genai.NewClient(context.Background(), clientConfig)
}

func generateModelText(ctx context.Context, modelName, prompt string) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}
	resp, err := geminiClient.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return cleanModelOutput(resp.Text()), nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func generateDefaultModelText(ctx context.Context, prompt string) (string, error) {
	return generateModelText(ctx, defaultGeminiModel, prompt)
}
