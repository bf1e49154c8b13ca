package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/webclient/internal/model"
	"recipebox/webclient/internal/view"
)

type pageRenderer struct {
	title      string
	showErrors bool
}

// render always answers 200: failures are logged by the service and only
// surface in the page when error display is switched on.
func (p pageRenderer) render(c *gin.Context, recipes []model.Recipe, opErr error) {
	data := view.PageData{Title: p.title, Recipes: recipes}
	if p.showErrors && opErr != nil {
		data.Error = opErr.Error()
	}

	var buf bytes.Buffer
	if err := view.RenderPage(&buf, data); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
