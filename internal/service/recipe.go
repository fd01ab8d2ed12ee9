package service

import (
	"context"
	"errors"
	"iter"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"

	"github.com/pageza/recipestream/internal/logging"
	"github.com/pageza/recipestream/internal/types"
)

// DefaultChunkSize is the number of characters carried by each streamed chunk
const DefaultChunkSize = 2000

// Client-facing messages for responses that carry no usable recipe.
const (
	MsgNoCandidates = "No valid candidates in response."
	MsgNoRecipeText = "No valid recipe text found."
)

var (
	errNoCandidates = errors.New("no candidates in response")
	errNoRecipeText = errors.New("no text in first candidate")
)

// RecipeService turns one backend generation into a stream of events
type RecipeService struct {
	backend   ContentGenerator
	chunkSize int
	timeout   time.Duration
}

// NewRecipeService creates a RecipeService. A non-positive chunkSize selects
// DefaultChunkSize; a zero timeout leaves the backend call bounded only by ctx.
func NewRecipeService(backend ContentGenerator, chunkSize int, timeout time.Duration) *RecipeService {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &RecipeService{
		backend:   backend,
		chunkSize: chunkSize,
		timeout:   timeout,
	}
}

// StreamRecipe returns the event sequence for prompt. Nothing happens until the
// sequence is ranged over; the backend is then called exactly once with ctx.
// The sequence always ends with a single close event and can be consumed only
// once: ranging it again yields nothing.
func (s *RecipeService) StreamRecipe(ctx context.Context, prompt string) iter.Seq[types.StreamEvent] {
	var consumed atomic.Bool
	return func(yield func(types.StreamEvent) bool) {
		if !consumed.CompareAndSwap(false, true) {
			return
		}

		text, err := s.generate(ctx, prompt)
		if err != nil {
			yield(types.ErrorEvent(clientMessage(err)))
			return
		}

		chunks := SplitChunks(text, s.chunkSize)
		last := len(chunks) - 1
		for i, chunk := range chunks {
			if i == last {
				yield(types.CloseEvent(chunk))
				return
			}
			if !yield(types.ChunkEvent(chunk)) {
				return
			}
		}
	}
}

func (s *RecipeService) generate(ctx context.Context, prompt string) (string, error) {
	logger := logging.FromContext(ctx)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger.Debug("sending prompt to gemini", "prompt", prompt)
	start := time.Now()
	resp, err := s.backend.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Error("gemini request failed", "error", err, "duration", time.Since(start))
		return "", err
	}

	text, err := extractRecipeText(resp)
	if err != nil {
		logger.Warn("gemini response carried no recipe", "error", err, "duration", time.Since(start))
		return "", err
	}

	logger.Info("recipe generated",
		"characters", utf8.RuneCountInString(text),
		"duration", time.Since(start))
	return text, nil
}

// extractRecipeText returns the text parts of the first candidate, joined.
func extractRecipeText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", errNoRecipeText
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errNoRecipeText
	}
	return sb.String(), nil
}

// clientMessage maps a generation failure to the error text sent to the client
func clientMessage(err error) string {
	switch {
	case errors.Is(err, errNoCandidates):
		return MsgNoCandidates
	case errors.Is(err, errNoRecipeText):
		return MsgNoRecipeText
	default:
		return err.Error()
	}
}

// SplitChunks splits text into consecutive pieces of at most size characters.
// Splits fall on rune boundaries and joining the result yields text unchanged.
func SplitChunks(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/size+1)
	for len(text) > 0 {
		end, runes := 0, 0
		for end < len(text) && runes < size {
			_, width := utf8.DecodeRuneInString(text[end:])
			end += width
			runes++
		}
		chunks = append(chunks, text[:end])
		text = text[end:]
	}
	return chunks
}
