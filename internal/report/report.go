// Package report calcula os painéis do CRM a partir de fotografias das tabelas
// carregadas a cada requisição. Nada aqui acessa o banco nem guarda estado.
package report

import (
	"math"
	"time"

	"github.com/xavierca1/crm-api/internal/entity"
)

// Builder carrega o relógio e o fuso usados para transformar instantes em datas.
type Builder struct {
	Now      func() time.Time
	Location *time.Location
}

func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{Now: time.Now, Location: loc}
}

func (b *Builder) location() *time.Location {
	if b.Location == nil {
		return time.UTC
	}
	return b.Location
}

// Today é a data corrente no fuso configurado.
func (b *Builder) Today() entity.Date {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return entity.DateOf(now(), b.location())
}

func (b *Builder) dateOf(t time.Time) entity.Date {
	return entity.DateOf(t, b.location())
}

// percent devolve part/whole em porcentagem inteira; divisor zero vale 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// barWidth normaliza value em 0–100 em relação a max.
func barWidth(value, max float64) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(value * 100 / max))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
