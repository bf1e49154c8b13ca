package handler

import (
	"github.com/gin-gonic/gin"

	"recipebox/webclient/internal/model"
	"recipebox/webclient/internal/service"
	"recipebox/webclient/pkg/response"
)

type RecipeHandler struct {
	recipeService service.RecipeService
	page          pageRenderer
}

func NewRecipeHandler(recipeService service.RecipeService, title string, showErrors bool) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		page:          pageRenderer{title: title, showErrors: showErrors},
	}
}

// Index is the page load: fetch the list, then render it.
func (h *RecipeHandler) Index(c *gin.Context) {
	err := h.recipeService.Refresh(c.Request.Context())
	h.page.render(c, h.recipeService.Recipes(), err)
}

// Create handles the add-recipe form. The page always comes back with empty
// fields, whether the create went through or not. On failure the list is the
// previous snapshot; nothing is re-fetched.
func (h *RecipeHandler) Create(c *gin.Context) {
	in := model.RecipeInput{
		Title:        c.PostForm("title"),
		ImageURL:     c.PostForm("image_url"),
		Instructions: c.PostForm("instructions"),
	}
	err := h.recipeService.Create(c.Request.Context(), in)
	h.page.render(c, h.recipeService.Recipes(), err)
}

// Delete handles a card's delete control. The id comes from the control's
// own action URL.
func (h *RecipeHandler) Delete(c *gin.Context) {
	id := model.RecipeID(c.Param("id"))
	err := h.recipeService.Delete(c.Request.Context(), id)
	h.page.render(c, h.recipeService.Recipes(), err)
}

// Snapshot returns the current store contents as JSON without fetching.
func (h *RecipeHandler) Snapshot(c *gin.Context) {
	response.Success(c, h.recipeService.Recipes())
}
