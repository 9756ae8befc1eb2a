package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de fecha calendario en JSON, CSV y parámetros de filtro.
const DateLayout = "2006-01-02"

// Date fecha calendario sin hora. Internamente se guarda a medianoche UTC,
// igual que interpreta el navegador un "YYYY-MM-DD".
type Date struct {
	t time.Time
}

// NewDate construye una fecha calendario.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca t a su día calendario en UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}

// Today devuelve el día actual en UTC.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate interpreta "YYYY-MM-DD". Un string vacío devuelve la fecha cero sin error.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParseDate como ParseDate pero entra en pánico; solo para datos semilla y tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero indica si la fecha no fue informada.
func (d Date) IsZero() bool { return d.t.IsZero() }

// StartOfDay devuelve 00:00:00.000 UTC del día.
func (d Date) StartOfDay() time.Time { return d.t }

// EndOfDay devuelve 23:59:59.999 UTC del día.
func (d Date) EndOfDay() time.Time { return d.t.Add(24*time.Hour - time.Millisecond) }

// Before indica si d es un día anterior a o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After indica si d es un día posterior a o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Year, Month y Day del calendario.
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// String devuelve "YYYY-MM-DD" o "" si la fecha es cero.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON serializa como "YYYY-MM-DD"; la fecha cero como null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta "YYYY-MM-DD", "" o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha debe ser string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
