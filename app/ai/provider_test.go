package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AIConfig
		wantErr bool
		want    string
	}{
		{
			name: "openai with key",
			cfg:  config.AIConfig{Provider: "openai", OpenAIKey: "sk-test"},
			want: "openai",
		},
		{
			name: "gemini with key",
			cfg:  config.AIConfig{Provider: "gemini", GeminiKey: "g-test"},
			want: "gemini",
		},
		{
			name:    "openai without key",
			cfg:     config.AIConfig{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "gemini without key",
			cfg:     config.AIConfig{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     config.AIConfig{Provider: "anthropic", OpenAIKey: "sk-test"},
			wantErr: true,
		},
		{
			name:    "empty provider",
			cfg:     config.AIConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, provider.Name())
		})
	}
}

func TestOpenAIEmbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3]}]}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider("sk-test", "", "")
	p.baseURL = server.URL

	vec, err := p.Embed(context.Background(), "behavior note")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestOpenAIEmbedErrorSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider("sk-bad", "", "")
	p.baseURL = server.URL

	_, err := p.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestOpenAITranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		w.Write([]byte(`{"text":"how is Aisha doing in math"}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider("sk-test", "", "")
	p.baseURL = server.URL

	text, err := p.Transcribe(context.Background(), strings.NewReader("fake-audio-bytes"), "query.webm")
	require.NoError(t, err)
	assert.Equal(t, "how is Aisha doing in math", text)
}

func TestGeminiEmbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, ":embedContent")
		assert.Equal(t, "g-test", r.Header.Get("x-goog-api-key"))
		w.Write([]byte(`{"embedding":{"values":[0.4,0.5]}}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("g-test", "", "")
	p.baseURL = server.URL

	vec, err := p.Embed(context.Background(), "achievement note")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.4, 0.5}, vec)
}

func TestMimeTypeForAudio(t *testing.T) {
	assert.Equal(t, "audio/wav", mimeTypeForAudio("clip.wav"))
	assert.Equal(t, "audio/mp3", mimeTypeForAudio("clip.mp3"))
	assert.Equal(t, "audio/webm", mimeTypeForAudio("clip.webm"))
	assert.Equal(t, "audio/webm", mimeTypeForAudio("clip"))
}
