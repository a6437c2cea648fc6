// Package generator implements the content generation port against a
// Gemini-style generateContent REST endpoint.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

const defaultHTTPTimeout = 60 * time.Second

// Config captures the settings for the external generation API.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// GeminiClient calls the generateContent endpoint and decodes the structured
// website JSON the model is instructed to return.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	log        zerolog.Logger
}

func NewGeminiClient(cfg Config, log zerolog.Logger) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		log:        log,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string  `json:"responseMimeType"`
		Temperature      float64 `json:"temperature"`
		MaxOutputTokens  int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// Generate asks the model for a complete website document. The response must
// be a single JSON object matching domain.WebsiteContent; anything else is an
// error for the caller to translate.
func (c *GeminiClient) Generate(ctx context.Context, businessType, industry string) (*domain.WebsiteContent, error) {
	req := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: buildPrompt(businessType, industry)}}}},
	}
	req.GenerationConfig.ResponseMimeType = "application/json"
	req.GenerationConfig.Temperature = 0.7
	req.GenerationConfig.MaxOutputTokens = 1500

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("generation API error")
		return nil, fmt.Errorf("generation API returned status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generation response contained no candidates")
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	var content domain.WebsiteContent
	if err := json.Unmarshal([]byte(sb.String()), &content); err != nil {
		c.log.Error().Err(err).Msg("generation response was not valid website JSON")
		return nil, fmt.Errorf("decode website content: %w", err)
	}

	return &content, nil
}

// buildPrompt mirrors the schema the frontend renderer expects. The model is
// told to always invent at least three service items so an empty services
// array can be treated as a hard failure.
func buildPrompt(businessType, industry string) string {
	return fmt.Sprintf(
		"Generate a detailed JSON structure for a website for a '%s' business in the '%s' industry. "+
			"The JSON must contain: title, hero_section{heading, subheading, image_description}, "+
			"about_section{heading, text}, services_section{heading, items[]} where each item has a "+
			"title and description and the array has at least 3 entries, "+
			"contact_section{heading, email, phone, address}, and theme{primary_color, secondary_color, "+
			"background_color, text_color, heading_color, font_family, section_bg_color, "+
			"service_item_bg_color, border_color, shadow_color} with colors in hexadecimal format. "+
			"Do not return an empty services array; if unsure, make up relevant sample services. "+
			"Make the content engaging and relevant to the business and industry. "+
			"The entire response MUST be a valid JSON object.",
		businessType, industry,
	)
}
