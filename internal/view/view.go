// Package view renders the dashboard pages from embedded html/template files.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageDashboard   = "dashboard"
	PagePartners    = "partners"
	PageOrders      = "orders"
	PageAssignments = "assignments"
)

var pages = []string{PageDashboard, PagePartners, PageOrders, PageAssignments}

// Page is the data every template receives. Content holds the page-specific model.
type Page struct {
	Title   string
	Active  string
	Content any
}

type NavLink struct {
	Name string
	Href string
}

var navLinks = []NavLink{
	{Name: "Dashboard", Href: "/" + PageDashboard},
	{Name: "Partners", Href: "/" + PagePartners},
	{Name: "Orders", Href: "/" + PageOrders},
	{Name: "Assignments", Href: "/" + PageAssignments},
}

type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	const op = "view.New"

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs()).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/components.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Render executes the page into a buffer first so a template error never
// leaves half a page on the wire.
func (r *Renderer) Render(w io.Writer, page string, data Page) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("view: unknown page %q", page)
	}
	if data.Active == "" {
		data.Active = page
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("view: render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

func Money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

func Percent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

func Title(s string) string {
	return titler.String(s)
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"money":   Money,
		"percent": Percent,
		"title":   Title,
		"fixed2":  func(v float64) string { return printer.Sprintf("%.2f", v) },
		"nav":     func() []NavLink { return navLinks },
	}
}
