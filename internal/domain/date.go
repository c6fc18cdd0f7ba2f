package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout é o formato de calendário usado em toda a aplicação.
const dateLayout = "2006-01-02"

// Date representa uma data de calendário sem componente de hora.
type Date struct {
	time.Time
}

// NewDate cria uma Date truncando o componente de hora.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today retorna a data de hoje.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate interpreta uma data no formato AAAA-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// AddDays retorna uma nova data deslocada em n dias.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil retorna quantos dias faltam de now até a data (negativo se já passou).
func (d Date) DaysUntil(now time.Time) int {
	return int(d.Time.Sub(NewDate(now).Time).Hours() / 24)
}

// String devolve a data no formato AAAA-MM-DD.
func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

// FormatBR devolve a data no formato brasileiro DD/MM/AAAA.
func (d Date) FormatBR() string {
	return d.Time.Format("02/01/2006")
}

// IsZero informa se a data não foi definida.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// MarshalJSON serializa a data como "AAAA-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON aceita "AAAA-MM-DD" ou string vazia.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implementa sql.Scanner para colunas DATE.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implementa driver.Valuer para colunas DATE.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
