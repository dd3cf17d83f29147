// Package views renderiza os painéis HTML do CRM.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page é o dado entregue ao layout; Dados é o view-model do painel.
type Page struct {
	Titulo string
	Ativo  string
	Dados  any
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer compila cada página junto com o layout. loc define o fuso de exibição dos horários.
func NewRenderer(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}

	funcs := template.FuncMap{
		"moeda":     formatMoney,
		"data":      formatDate,
		"datahora":  func(v any) string { return formatDateTime(v, loc) },
		"derefStr":  derefStr,
		"faseLabel": faseLabel,
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimPrefix(file, "templates/")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("erro ao compilar template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render executa em um buffer antes de escrever, para que um erro de template vire 500 e não meia página.
func (r *Renderer) Render(w http.ResponseWriter, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q não existe", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("erro ao renderizar %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// formatMoney aceita float64, *float64 e int; nil vira "-".
func formatMoney(v any) string {
	switch x := v.(type) {
	case float64:
		return report.FormatBRL(x)
	case *float64:
		if x == nil {
			return "-"
		}
		return report.FormatBRL(*x)
	case int:
		return report.FormatBRL(float64(x))
	default:
		return "-"
	}
}

func formatDate(v any) string {
	switch x := v.(type) {
	case entity.Date:
		if x.IsZero() {
			return "-"
		}
		return x.Format("02/01/2006")
	case *entity.Date:
		if x == nil {
			return "-"
		}
		return formatDate(*x)
	case time.Time:
		if x.IsZero() {
			return "-"
		}
		return x.Format("02/01/2006")
	default:
		return "-"
	}
}

func formatDateTime(v any, loc *time.Location) string {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return "-"
		}
		return x.In(loc).Format("02/01/2006 15:04")
	case *time.Time:
		if x == nil {
			return "-"
		}
		return formatDateTime(*x, loc)
	default:
		return "-"
	}
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func faseLabel(fase string) string {
	switch fase {
	case entity.FaseNovo:
		return "Novos"
	case entity.FaseEmProposta:
		return "Em proposta"
	case entity.FaseFechadoGanho:
		return "Fechados (ganhos)"
	case entity.FaseFechadoPerdido:
		return "Fechados (perdidos)"
	default:
		return fase
	}
}
