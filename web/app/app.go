// Package app serves the composer form: pick a template and tone, paste
// notes, and read back every view of the composed update.
package app

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/weekly/internal/updates"
	"github.com/JaimeStill/weekly/pkg/middleware"
	"github.com/JaimeStill/weekly/pkg/module"
	"github.com/JaimeStill/weekly/pkg/routes"
	"github.com/JaimeStill/weekly/pkg/web"
)

//go:embed templates static
var assets embed.FS

const layout = "layout"

var errInvalidForm = errors.New("invalid form body")

var (
	composeView  = web.ViewDef{Template: "compose.html", Title: "Weekly Update Composer"}
	notFoundView = web.ViewDef{Template: "not-found.html", Title: "Not Found"}
)

type view struct {
	Name string
	Text string
}

type result struct {
	Views   []view
	Preview template.HTML
}

type page struct {
	Templates []string
	Tones     []string
	Request   updates.Request
	Error     string
	Result    *result
}

type handler struct {
	sys         updates.System
	views       *web.TemplateSet
	logger      *slog.Logger
	maxBodySize int64
}

// NewModule creates the composer UI module mounted at basePath.
func NewModule(basePath string, sys updates.System, logger *slog.Logger, maxBodySize int64) (*module.Module, error) {
	views, err := web.NewTemplateSet(assets, "templates/*.html", "templates/views", basePath, composeView, notFoundView)
	if err != nil {
		return nil, err
	}

	h := &handler{
		sys:         sys,
		views:       views,
		logger:      logger.With("module", "app"),
		maxBodySize: maxBodySize,
	}

	mux := http.NewServeMux()
	routes.Register(mux,
		routes.Group{
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/{$}", Handler: h.form},
				{Method: "POST", Pattern: "/{$}", Handler: h.compose},
			},
		},
		web.PublicFileRoutes(assets, "static", "app.css"),
	)
	mux.HandleFunc("/", views.StatusHandler(layout, notFoundView, http.StatusNotFound))

	m := module.New(basePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(h.logger))
	return m, nil
}

func (h *handler) newPage() *page {
	info := h.sys.Catalog()
	return &page{
		Templates: info.Templates,
		Tones:     info.Tones,
		Request: updates.Request{
			Template: info.Templates[0],
			Tone:     info.Tones[0],
		},
	}
}

func (h *handler) form(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.newPage())
}

func (h *handler) compose(w http.ResponseWriter, r *http.Request) {
	p := h.newPage()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := r.ParseForm(); err != nil {
		status, formErr := http.StatusBadRequest, errInvalidForm
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status, formErr = http.StatusRequestEntityTooLarge, updates.ErrBodyTooLarge
		}
		h.logger.Warn("form rejected", "error", err)
		p.Error = formErr.Error()
		h.render(w, status, p)
		return
	}

	p.Request = updates.Request{
		Template: r.PostForm.Get("template"),
		Tone:     r.PostForm.Get("tone"),
		Notes:    r.PostForm.Get("notes"),
	}

	doc, err := h.sys.Compose(r.Context(), p.Request)
	if err != nil {
		h.logger.Warn("compose rejected", "error", err)
		p.Error = err.Error()
		h.render(w, updates.MapHTTPStatus(err), p)
		return
	}

	preview, err := doc.HTML()
	if err != nil {
		h.logger.Error("preview failed", "error", err)
	}

	p.Result = &result{
		Views: []view{
			{Name: "Bilingual", Text: doc.Bilingual},
			{Name: "Chinese", Text: doc.Chinese},
			{Name: "English", Text: doc.English},
			{Name: "Captions", Text: doc.Captions},
		},
		Preview: template.HTML(preview),
	}
	h.render(w, http.StatusOK, p)
}

func (h *handler) render(w http.ResponseWriter, status int, p *page) {
	if err := h.views.Render(w, status, layout, composeView, p); err != nil {
		h.logger.Error("render failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
