// Package cnpj formatea y valida el CNPJ (cadastro nacional de pessoa jurídica)
// en la máscara XX.XXX.XXX/XXXX-XX. No calcula dígitos verificadores.
package cnpj

import (
	"regexp"
	"unicode"
)

// MaskedLength largo de un CNPJ con máscara completa.
const MaskedLength = 18

var maskedPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// pasos de la máscara, aplicados en orden y solo sobre la primera coincidencia,
// igual que la máscara de digitación del formulario.
var maskSteps = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`^(\d{2})(\d)`), "$1.$2"},
	{regexp.MustCompile(`^(\d{2}\.\d{3})(\d)`), "$1.$2"},
	{regexp.MustCompile(`^(\d{2}\.\d{3}\.\d{3})(\d)`), "$1/$2"},
	{regexp.MustCompile(`^(\d{2}\.\d{3}\.\d{3}/\d{4})(\d)`), "$1-$2"},
}

// Format descarta todo lo que no sea dígito y aplica la máscara progresivamente.
// Entradas parciales quedan parcialmente formateadas ("1234" → "12.34").
func Format(input string) string {
	s := string(extractDigits(input))
	for _, step := range maskSteps {
		s = replaceFirst(step.re, s, step.repl)
	}
	if r := []rune(s); len(r) > MaskedLength {
		s = string(r[:MaskedLength])
	}
	return s
}

// Valid indica si s ya está en la máscara completa XX.XXX.XXX/XXXX-XX.
func Valid(s string) bool {
	return maskedPattern.MatchString(s)
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var dst []byte
	dst = re.ExpandString(dst, repl, s, loc)
	return s[:loc[0]] + string(dst) + s[loc[1]:]
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
