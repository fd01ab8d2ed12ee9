package service

import (
	"context"
	"iter"

	"github.com/pageza/recipestream/internal/types"
)

// IRecipeService defines the interface for recipe streaming
type IRecipeService interface {
	StreamRecipe(ctx context.Context, prompt string) iter.Seq[types.StreamEvent]
}

var (
	_ IRecipeService   = (*RecipeService)(nil)
	_ ContentGenerator = (*LLMService)(nil)
)
