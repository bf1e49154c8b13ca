// Package view projects recipe lists into HTML pages and terminal output.
// Every render rebuilds the whole list; nothing is diffed.
package view

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"recipebox/webclient/internal/model"
)

//go:embed templates/*.html
var tmplFS embed.FS

var tmpl = template.Must(template.New("views").Funcs(template.FuncMap{
	"pathEscape": func(id model.RecipeID) string { return url.PathEscape(id.String()) },
}).ParseFS(tmplFS, "templates/*.html"))

const EmptyPlaceholder = "No recipes found."

type PageData struct {
	Title   string
	Recipes []model.Recipe
	// Error is shown in a banner when non-empty. Handlers only set it when
	// error display is enabled.
	Error string
}

// RenderRecipes writes the #recipes list: one card per recipe in order, or a
// single placeholder item when the list is empty.
func RenderRecipes(w io.Writer, recipes []model.Recipe) error {
	return tmpl.ExecuteTemplate(w, "recipes", recipes)
}

// RenderPage writes the full document with an empty add-recipe form.
func RenderPage(w io.Writer, data PageData) error {
	return tmpl.ExecuteTemplate(w, "page", data)
}
