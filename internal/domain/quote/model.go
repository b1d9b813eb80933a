package quote

// Align alineación horizontal de una celda.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// RowKind clasifica la fila para el emisor (PDF u otro backend).
type RowKind int

const (
	RowHeader     RowKind = iota // banda de encabezado (funeraria | n° y fechas)
	RowSeparator                 // línea horizontal a lo ancho del contenido
	RowTableHead                 // cabecera de la tabla de ítems
	RowItem                      // línea de ítem (con sublínea de descripción opcional)
	RowTotals                    // línea del bloque de totales
	RowTotalsRule                // regla corta sobre el total
	RowNotes                     // bloque de notas/términos
	RowDisclaimer                // leyenda final (solo modo continuo)
	RowSpacer                    // espacio vertical sin contenido
)

// TextLine una línea de texto dentro de una celda. Size en pt; 0 = tamaño base.
type TextLine struct {
	Text  string
	Bold  bool
	Size  float64
	Muted bool
}

// Cell una celda sobre la grilla de 12 columnas. Una celda puede llevar varias
// líneas apiladas (ej. nombre del ítem + descripción) o una imagen (logo).
type Cell struct {
	Span  int
	Align Align
	Lines []TextLine
	Image []byte // PNG; solo en el encabezado
}

// Row una fila posicionada del documento, con altura fija en mm.
type Row struct {
	Kind   RowKind
	Height float64
	Shaded bool // fondo alternado de legibilidad (filas pares de la tabla)
	Cells  []Cell
}

// Page una página diagramada. Footer se estampa en la segunda pasada, cuando
// ya se conoce el total de páginas; vacío en modo continuo.
type Page struct {
	Rows   []Row
	Footer string
}

// Document es el resultado del layout: páginas listas para emitir más la
// geometría con que deben dibujarse. En modo continuo PageHeight es la altura
// real del contenido, no la de la página configurada.
type Document struct {
	Pages      []Page
	PageWidth  float64
	PageHeight float64
	Config     Config
	Filename   string
}
