package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format formatea un monto según el formato configurado.
// Ej. CLP: 1000000 → "$1.000.000"; con Decimals=2 y DecimalSep=",": "$1.000.000,50".
func (f MoneyFormat) Format(d decimal.Decimal) string {
	s := d.StringFixed(int32(f.Decimals))

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if f.Decimals > 0 {
		if i := strings.IndexByte(s, '.'); i >= 0 {
			intPart, fracPart = s[:i], s[i+1:]
		}
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(f.Symbol)
	b.WriteString(groupThousands(intPart, f.ThousandsSep))
	if fracPart != "" {
		b.WriteString(f.DecimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// groupThousands inserta el separador de miles en un string numérico.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s, sep string) string {
	n := len(s)
	if n <= 3 || sep == "" {
		return s
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// truncate recorta s a max caracteres (runas) y marca el exceso con "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// wrapText envuelve s en líneas de a lo más width caracteres, cortando por
// palabras. Palabras más largas que width quedan solas en su línea.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len([]rune(current))+1+len([]rune(w)) <= width {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
