package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/ytcaptions/version"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageData feeds the embedded page templates.
type pageData struct {
	Version string
}

// renderPage renders an embedded template once; the pages are static per
// process so there is no need to re-execute on every request.
func renderPage(name string) []byte {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/"+name))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pageData{Version: version.GetShortVersion()}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

var (
	indexPage = renderPage("index.html")
	docsPage  = renderPage("documentation.html")
)

// Index handles GET / with the landing page.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

// Docs handles GET /docs with the API documentation page.
func (h *Handler) Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", docsPage)
}
