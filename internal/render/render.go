package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/UnknownOlympus/asclepius/internal/services/dashboard"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

//go:embed static/dashboard.css
var stylesheet []byte

// Templates holds the parsed dashboard page.
type Templates struct {
	page *template.Template
}

// PageData is what the layout template receives.
type PageData struct {
	View dashboard.View
	// Standalone inlines the stylesheet so the page works as a single file.
	Standalone bool
	AssetVer   string
}

// Load parses the embedded templates. The result is safe for concurrent use.
func Load() (*Templates, error) {
	page, err := template.New("asclepius").Funcs(funcMap()).ParseFS(templateFS,
		"templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Templates{page: page}, nil
}

// MustLoad is Load that panics, for start-up code.
func MustLoad() *Templates {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// Page renders the full dashboard document.
func (t *Templates) Page(w io.Writer, data PageData) error {
	if err := t.page.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}

// Stylesheet returns the dashboard CSS.
func Stylesheet() []byte {
	return stylesheet
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"pct": func(p int) string { return strconv.Itoa(p) + "%" },

		// Declarations are built here so html/template does not have to vet dynamic CSS.
		"place": func(left, top float64) template.CSS {
			return template.CSS(fmt.Sprintf("left: %s%%; top: %s%%;", coord(left), coord(top)))
		},
		"accent": func(color string) template.CSS {
			return template.CSS("--accent: " + color + ";")
		},
		"bar": func(width int) template.CSS {
			return template.CSS("width: " + strconv.Itoa(width) + "%;")
		},

		"markerData": func(m dashboard.Marker, inline bool) markerData {
			return markerData{Marker: m, Inline: inline}
		},
		"stylesheet": func() template.CSS { return template.CSS(stylesheet) }, //nolint:gosec // embedded asset
		"icon":       icon,
	}
}

type markerData struct {
	Marker dashboard.Marker
	Inline bool
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
