package view

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebox/webclient/internal/model"
)

func parse(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(buf)
	require.NoError(t, err)
	return doc
}

func sampleRecipes(n int) []model.Recipe {
	out := make([]model.Recipe, n)
	for i := range out {
		out[i] = model.Recipe{
			ID:           model.RecipeID(fmt.Sprint(i + 1)),
			Title:        fmt.Sprintf("Recipe %d", i+1),
			ImageURL:     fmt.Sprintf("https://img.example/%d.png", i+1),
			Instructions: fmt.Sprintf("Step %d", i+1),
		}
	}
	return out
}

func TestRenderRecipes_EmptyShowsPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRecipes(&buf, nil))

	doc := parse(t, &buf)
	items := doc.Find("#recipes > li")
	require.Equal(t, 1, items.Length())
	assert.Equal(t, EmptyPlaceholder, strings.TrimSpace(items.Text()))
	assert.Equal(t, 0, doc.Find("button").Length())
	assert.Equal(t, 0, doc.Find("form").Length())
}

func TestRenderRecipes_CardPerRecipeInOrder(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		t.Run(fmt.Sprintf("%d recipes", n), func(t *testing.T) {
			recipes := sampleRecipes(n)
			var buf bytes.Buffer
			require.NoError(t, RenderRecipes(&buf, recipes))

			cards := parse(t, &buf).Find("#recipes > li.recipe")
			require.Equal(t, n, cards.Length())
			cards.Each(func(i int, card *goquery.Selection) {
				want := recipes[i]
				assert.Equal(t, want.Title, card.Find("h2").Text())
				src, _ := card.Find("img").Attr("src")
				assert.Equal(t, want.ImageURL, src)
				alt, _ := card.Find("img").Attr("alt")
				assert.Equal(t, want.Title, alt)
				assert.Equal(t, want.Instructions, card.Find("p").Text())
				action, _ := card.Find("form.delete-recipe").Attr("action")
				assert.Equal(t, "/recipes/"+want.ID.String()+"/delete", action)
				assert.Equal(t, "Delete Recipe", card.Find("button").Text())
			})
		})
	}
}

func TestRenderRecipes_EscapesContent(t *testing.T) {
	recipes := []model.Recipe{{
		ID:           "a/b",
		Title:        `<script>alert("x")</script>`,
		ImageURL:     "javascript:alert(1)",
		Instructions: "<b>bold</b>",
	}}
	var buf bytes.Buffer
	require.NoError(t, RenderRecipes(&buf, recipes))

	doc := parse(t, &buf)
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, 0, doc.Find("p b").Length())
	assert.Equal(t, recipes[0].Title, doc.Find("h2").Text())
	src, _ := doc.Find("img").Attr("src")
	assert.NotContains(t, src, "javascript:")
	action, _ := doc.Find("form.delete-recipe").Attr("action")
	assert.Equal(t, "/recipes/a%2fb/delete", strings.ToLower(action))
}

func TestRenderPage_FormFieldsAreEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, PageData{Title: "Recipes", Recipes: sampleRecipes(2)}))

	doc := parse(t, &buf)
	form := doc.Find("form#addRecipe")
	require.Equal(t, 1, form.Length())
	for _, name := range []string{"title", "image_url"} {
		val, ok := form.Find(fmt.Sprintf(`input[name=%q]`, name)).Attr("value")
		assert.True(t, ok, name)
		assert.Empty(t, val, name)
	}
	assert.Empty(t, form.Find(`textarea[name="instructions"]`).Text())
	assert.Equal(t, 2, doc.Find("#recipes > li.recipe").Length())
	assert.Equal(t, 0, doc.Find(".error-banner").Length())
}

func TestRenderPage_ErrorBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, PageData{Title: "Recipes", Error: "Recipe could not be deleted."}))

	doc := parse(t, &buf)
	assert.Equal(t, "Recipe could not be deleted.", doc.Find(".error-banner").Text())
	assert.Equal(t, EmptyPlaceholder, strings.TrimSpace(doc.Find("#recipes > li").Text()))
}

func TestRenderRecipesTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRecipesTerminal(&buf, nil))
	assert.Contains(t, buf.String(), EmptyPlaceholder)

	buf.Reset()
	require.NoError(t, RenderRecipesTerminal(&buf, sampleRecipes(2)))
	out := buf.String()
	assert.Contains(t, out, "Recipe 1")
	assert.Contains(t, out, "Step 2")
	assert.Less(t, strings.Index(out, "Recipe 1"), strings.Index(out, "Recipe 2"))
	assert.NotContains(t, out, EmptyPlaceholder)
}

func TestRenderError(t *testing.T) {
	assert.Contains(t, RenderError(errors.New("boom")), "boom")
}
