package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"roastapi/internal/config"
)

type fakeModels struct {
	calls    int
	model    string
	prompt   string
	deadline bool
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	_, f.deadline = ctx.Deadline()
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGemini_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns model text verbatim", func(t *testing.T) {
		f := &fakeModels{resp: textResponse("  Your resume has more buzzwords than a beehive.  ")}
		g := newGemini(f, config.DefaultModel, time.Second)

		out, err := g.Generate(ctx, "roast this")

		require.NoError(t, err)
		assert.Equal(t, "  Your resume has more buzzwords than a beehive.  ", out)
		assert.Equal(t, 1, f.calls)
		assert.Equal(t, config.DefaultModel, f.model)
		assert.Equal(t, "roast this", f.prompt)
		assert.True(t, f.deadline)
	})

	t.Run("upstream error is wrapped and not retried", func(t *testing.T) {
		cause := errors.New("quota exceeded")
		f := &fakeModels{err: cause}
		g := newGemini(f, "m", time.Second)

		_, err := g.Generate(ctx, "p")

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("empty candidates", func(t *testing.T) {
		g := newGemini(&fakeModels{resp: &genai.GenerateContentResponse{}}, "m", 0)
		_, err := g.Generate(ctx, "p")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("nil response", func(t *testing.T) {
		g := newGemini(&fakeModels{}, "m", 0)
		_, err := g.Generate(ctx, "p")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("no timeout leaves context untouched", func(t *testing.T) {
		f := &fakeModels{resp: textResponse("ok")}
		_, err := newGemini(f, "m", 0).Generate(ctx, "p")
		require.NoError(t, err)
		assert.False(t, f.deadline)
	})
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), config.GeminiConfig{Model: "m", TimeoutSec: 1})
	assert.Error(t, err)
}

func TestTracedClient(t *testing.T) {
	client := tracedClient()
	require.NotNil(t, client.Transport)
	assert.NotSame(t, http.DefaultTransport, client.Transport)
}
