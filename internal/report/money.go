package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBRL escreve no padrão brasileiro: 1234.5 vira "R$ 1.234,50".
func FormatBRL(v float64) string {
	cents := int64(math.Round(math.Abs(v) * 100))
	inteiro := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, ch := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}

	s := fmt.Sprintf("R$ %s,%02d", b.String(), cents%100)
	if v < 0 && cents > 0 {
		s = "-" + s
	}
	return s
}
