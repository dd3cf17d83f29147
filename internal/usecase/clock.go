package usecase

import "time"

// Clock devolve o instante corrente; os testes injetam um relógio fixo.
type Clock func() time.Time

// timestamp normaliza o instante para UTC com precisão de microssegundos, a mesma do Postgres.
func (c Clock) timestamp() time.Time {
	now := time.Now
	if c != nil {
		now = c
	}
	return now().UTC().Truncate(time.Microsecond)
}
