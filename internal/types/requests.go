package types

// RecipeStreamRequest represents the query parameters of GET /recipeStream.
// Every field is optional free text and is passed to the prompt unmodified.
type RecipeStreamRequest struct {
	Ingredients string `form:"ingredients" json:"ingredients"`
	MealType    string `form:"mealType" json:"mealType"`
	Cuisine     string `form:"cuisine" json:"cuisine"`
	CookingTime string `form:"cookingTime" json:"cookingTime"`
	Complexity  string `form:"complexity" json:"complexity"`
}
