package service

import (
	"strings"

	"github.com/pageza/recipestream/internal/types"
)

// BuildRecipePrompt renders the fixed recipe instruction template. Values are
// inserted verbatim, in a fixed order, each inside its own bracket marker.
func BuildRecipePrompt(req types.RecipeStreamRequest) string {
	parts := []string{
		"Generate a recipe based on the following details:",
		"[Ingredients: " + req.Ingredients + "]",
		"[Meal Type: " + req.MealType + "]",
		"[Cuisine Preference: " + req.Cuisine + "]",
		"[Cooking Time: " + req.CookingTime + "]",
		"[Complexity: " + req.Complexity + "]",
		"Provide the recipe in the following structured format and avoid adding notes, equipment, or serving methods:",
		"[Provide a creative and suitable name for the recipe on the first line]",
		"- Ingredients: [List all the ingredients in bullet points.]",
		"- Steps: [Provide a concise, numbered step-by-step guide for preparation and cooking.]",
		"Ensure the response is short and adheres strictly to this format.",
	}
	return strings.Join(parts, " ")
}
