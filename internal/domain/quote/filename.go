package quote

import "strings"

// Filename deriva el nombre del archivo descargable a partir del número de
// despliegue de la cotización: "Quote-<número>.pdf" (o la extensión dada).
// El número se sanitiza para el sistema de archivos: los caracteres reservados
// de ruta y los de control se reemplazan por "-"; espacios y el resto de la
// puntuación se conservan tal cual.
func Filename(number, ext string) string {
	return "Quote-" + sanitizeFilename(number) + ext
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		if r < 0x20 {
			return '-'
		}
		return r
	}, s)
}
