package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipestream/internal/logging"
	"github.com/pageza/recipestream/internal/service"
	"github.com/pageza/recipestream/internal/types"
)

// RecipeHandler serves the recipe stream endpoint
type RecipeHandler struct {
	recipeService service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/recipeStream", h.StreamRecipe)
}

// StreamRecipe generates a recipe from the query parameters and streams it as
// server-sent events. The response is committed before the backend is called,
// so every outcome, failures included, is reported as a close event.
func (h *RecipeHandler) StreamRecipe(c *gin.Context) {
	ctx := c.Request.Context()
	logger := logging.FromContext(ctx)

	var req types.RecipeStreamRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("received recipe stream request",
		"ingredients", req.Ingredients,
		"meal_type", req.MealType,
		"cuisine", req.Cuisine,
		"cooking_time", req.CookingTime,
		"complexity", req.Complexity)

	startEventStream(c)

	prompt := service.BuildRecipePrompt(req)
	sent := 0
	for event := range h.recipeService.StreamRecipe(ctx, prompt) {
		if ctx.Err() != nil {
			logger.Info("client disconnected", "events_sent", sent)
			return
		}
		if err := writeEvent(c.Writer, event); err != nil {
			logger.Warn("failed to write stream event", "error", err, "events_sent", sent)
			return
		}
		sent++
		if event.IsTerminal() && event.Error != "" {
			logger.Warn("recipe stream closed with error", "error", event.Error)
		}
	}
	logger.Info("recipe stream closed", "events_sent", sent)
}
