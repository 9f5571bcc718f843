package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiview/internal/form"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const indexTemplate = "index.tmpl"

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
}

// PageHandler serves the HTML form. Each request gets a fresh form.State;
// nothing is kept between page loads.
type PageHandler struct {
	analyzer form.Analyzer
}

func NewPageHandler(analyzer form.Analyzer) *PageHandler {
	return &PageHandler{analyzer: analyzer}
}

func (h *PageHandler) Index(c *gin.Context) {
	var state form.State
	c.HTML(http.StatusOK, indexTemplate, state.View())
}

func (h *PageHandler) Analyze(c *gin.Context) {
	var state form.State
	state.SetReview(c.PostForm("review"))
	state.Submit(c.Request.Context(), h.analyzer)

	c.HTML(http.StatusOK, indexTemplate, state.View())
}
