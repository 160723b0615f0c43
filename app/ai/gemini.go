package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider calls the Gemini REST API. Its embedding models emit a
// different vector width than OpenAI's, which is why the collection's vector
// size is configurable rather than assumed.
type GeminiProvider struct {
	apiKey     string
	model      string
	embedModel string
	baseURL    string
	http       *http.Client
}

func NewGeminiProvider(apiKey, model, embedModel string) *GeminiProvider {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if embedModel == "" {
		embedModel = "text-embedding-004"
	}
	return &GeminiProvider{
		apiKey:     apiKey,
		model:      model,
		embedModel: embedModel,
		baseURL:    defaultGeminiBaseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	body := map[string]interface{}{
		"model": "models/" + p.embedModel,
		"content": map[string]interface{}{
			"parts": []map[string]string{{"text": text}},
		},
	}
	var parsed struct {
		Embedding struct {
			Values []float32 `json:"values"`
		} `json:"embedding"`
	}

	path := fmt.Sprintf("/models/%s:embedContent", p.embedModel)
	if err := p.doJSON(ctx, path, body, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini embedding returned no values")
	}
	return parsed.Embedding.Values, nil
}

func (p *GeminiProvider) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return "", fmt.Errorf("failed to read audio: %v", err)
	}

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": "Transcribe this audio recording verbatim. Return only the transcript."},
					{
						"inline_data": map[string]string{
							"mime_type": mimeTypeForAudio(filename),
							"data":      base64.StdEncoding.EncodeToString(data),
						},
					},
				},
			},
		},
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	path := fmt.Sprintf("/models/%s:generateContent", p.model)
	if err := p.doJSON(ctx, path, body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini transcription returned no candidates")
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

func (p *GeminiProvider) doJSON(ctx context.Context, path string, in, out interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(in); err != nil {
		return fmt.Errorf("failed to encode gemini request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build gemini request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("gemini request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gemini response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode gemini response: %v", err)
	}
	return nil
}

func mimeTypeForAudio(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".wav"):
		return "audio/wav"
	case strings.HasSuffix(filename, ".mp3"):
		return "audio/mp3"
	case strings.HasSuffix(filename, ".ogg"):
		return "audio/ogg"
	default:
		return "audio/webm"
	}
}
