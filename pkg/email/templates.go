package email

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	// telLink "+90 555 111 22 33" -> "tel:+905551112233"
	"telLink": func(phone string) template.URL {
		return template.URL("tel:" + strings.Join(strings.Fields(phone), ""))
	},
}

// loadTemplates teklif e-postalarının şablonlarını yükler
func loadTemplates() (*template.Template, error) {
	return template.New("email").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}
