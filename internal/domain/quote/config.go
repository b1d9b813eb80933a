// Package quote implementa el motor de layout de la cotización: transforma una
// cotización + perfil de la funeraria en un documento paginado de geometría fija,
// listo para ser emitido a PDF o rasterizado a imagen.
//
// Layout de la página (unidades en mm, A4 por defecto):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Funeraria + dirección + contacto │ N° + fechas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | P.Unit | Desc% | Subtotal      │
//	│  (filas alternadas con fondo; descripción en sublínea)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA (19%) / TOTAL                      │
//	│  NOTAS: términos y condiciones (con salto de página previo) │
//	│                     Página X de Y                            │
//	└─────────────────────────────────────────────────────────────┘
//
// El motor es puro: no muta sus entradas, no hace I/O y no recalcula montos;
// los subtotales y totales son responsabilidad del caller.
package quote

// MoneyFormat define el formato de moneda del documento. El valor por defecto
// reproduce el peso chileno: símbolo $, separador de miles "." y sin decimales.
type MoneyFormat struct {
	Symbol       string
	ThousandsSep string
	DecimalSep   string
	Decimals     int
}

// Config agrupa las constantes de geometría y formato del documento. Todo lo
// que el layout necesita es configurable aquí; nada va embebido en el motor.
type Config struct {
	PageWidth  float64 // mm
	PageHeight float64 // mm

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	FontFamily string
	FontSize   float64 // pt, tamaño base

	RowHeight  float64 // mm, fila de ítem sin descripción
	DescExtra  float64 // mm extra cuando la fila lleva sublínea de descripción
	FooterSize float64 // mm reservados al pie "Página X de Y"

	// BreakThreshold es el umbral cercano al borde inferior: si el cursor
	// vertical lo supera después de emitir una fila, la siguiente fila abre
	// una página nueva. Una fila nunca se parte entre dos páginas.
	BreakThreshold float64

	NameBudget int // máx. caracteres del nombre del ítem
	DescBudget int // máx. caracteres de la descripción del ítem
	NotesWidth int // máx. caracteres por línea al envolver las notas

	// DefaultTaxPct se muestra cuando el subtotal es cero y el porcentaje de
	// impuesto no puede derivarse de TaxAmount/Subtotal.
	DefaultTaxPct int64

	FooterPattern string // fmt con dos %d: página actual y total

	Money MoneyFormat
}

// DefaultConfig devuelve la configuración de referencia: página A4, márgenes de
// 10 mm, IVA 19% por defecto y formato CLP.
func DefaultConfig() Config {
	return Config{
		PageWidth:      210,
		PageHeight:     297,
		MarginTop:      10,
		MarginBottom:   10,
		MarginLeft:     10,
		MarginRight:    10,
		FontFamily:     "helvetica",
		FontSize:       9,
		RowHeight:      7,
		DescExtra:      4,
		FooterSize:     8,
		BreakThreshold: 250,
		NameBudget:     40,
		DescBudget:     50,
		NotesWidth:     95,
		DefaultTaxPct:  19,
		FooterPattern:  "Página %d de %d",
		Money: MoneyFormat{
			Symbol:       "$",
			ThousandsSep: ".",
			DecimalSep:   ",",
			Decimals:     0,
		},
	}
}

// usableHeight devuelve la altura disponible para contenido en una página
// (sin márgenes ni la franja del pie).
func (c Config) usableHeight() float64 {
	return c.PageHeight - c.MarginTop - c.MarginBottom - c.FooterSize
}
