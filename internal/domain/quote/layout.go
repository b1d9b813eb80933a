package quote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
)

// Layout diagrama la cotización en páginas de geometría fija. Las filas se
// emiten en orden de ingreso; cuando el cursor vertical supera el umbral
// configurado tras emitir una fila, la siguiente abre página nueva (una fila
// jamás se parte entre dos páginas). Al final, cada página recibe su pie
// "Página X de Y" en una segunda pasada.
func Layout(q *entity.Quote, items []*entity.QuoteItem, p *entity.Provider, cfg Config) (*Document, error) {
	if err := validateRenderInputs(q, p); err != nil {
		return nil, err
	}

	pg := &paginator{cfg: cfg}
	buildBody(pg, q, items, p, cfg)
	pg.flush()

	pages := pg.pages
	total := len(pages)
	for i := range pages {
		pages[i].Footer = fmt.Sprintf(cfg.FooterPattern, i+1, total)
	}

	return &Document{
		Pages:      pages,
		PageWidth:  cfg.PageWidth,
		PageHeight: cfg.PageHeight,
		Config:     cfg,
		Filename:   Filename(q.Number, ".pdf"),
	}, nil
}

// LayoutContinuous diagrama la cotización completa en una sola página cuya
// altura es la del contenido (para el export a imagen: una imagen alta, sin
// paginación). Lleva una leyenda final en vez de pie de página.
func LayoutContinuous(q *entity.Quote, items []*entity.QuoteItem, p *entity.Provider, cfg Config) (*Document, error) {
	if err := validateRenderInputs(q, p); err != nil {
		return nil, err
	}

	col := &collector{}
	buildBody(col, q, items, p, cfg)
	col.emit(Row{Kind: RowSpacer, Height: 4})
	col.emit(Row{Kind: RowDisclaimer, Height: 8, Cells: []Cell{{
		Span:  12,
		Align: AlignCenter,
		Lines: []TextLine{{
			Text:  "Documento generado electrónicamente. Los valores son referenciales y están sujetos a la validez indicada.",
			Size:  6.5,
			Muted: true,
		}},
	}}})

	height := cfg.MarginTop + cfg.MarginBottom
	for _, r := range col.rows {
		height += r.Height
	}

	return &Document{
		Pages:      []Page{{Rows: col.rows}},
		PageWidth:  cfg.PageWidth,
		PageHeight: height,
		Config:     cfg,
		Filename:   Filename(q.Number, ".jpg"),
	}, nil
}

// validateRenderInputs rechaza antes de diagramar cuando faltan los campos
// mínimos de identidad de la funeraria, en vez de producir un documento
// degradado con espacios en blanco.
func validateRenderInputs(q *entity.Quote, p *entity.Provider) error {
	if q == nil {
		return fmt.Errorf("%w: cotización", domain.ErrMissingRequiredField)
	}
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: nombre de la funeraria", domain.ErrMissingRequiredField)
	}
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("%w: dirección de la funeraria", domain.ErrMissingRequiredField)
	}
	return nil
}

// ── sink: destino de filas ────────────────────────────────────────────────────

// rowSink recibe filas ya diagramadas. paginator pagina; collector acumula todo
// en una sola página (modo continuo).
type rowSink interface {
	emit(Row)
	// startBlock toma la decisión de salto de página una sola vez, antes de un
	// bloque indivisible (las notas): si no cabe completo, abre página nueva.
	startBlock(height float64)
}

type paginator struct {
	cfg    Config
	pages  []Page
	rows   []Row
	cursor float64
}

func (p *paginator) emit(r Row) {
	p.rows = append(p.rows, r)
	p.cursor += r.Height
	if p.cursor > p.cfg.BreakThreshold {
		p.flush()
	}
}

func (p *paginator) startBlock(height float64) {
	if len(p.rows) > 0 && p.cursor+height > p.cfg.BreakThreshold {
		p.flush()
	}
}

func (p *paginator) flush() {
	if len(p.rows) == 0 {
		return
	}
	p.pages = append(p.pages, Page{Rows: p.rows})
	p.rows = nil
	p.cursor = 0
}

type collector struct {
	rows []Row
}

func (c *collector) emit(r Row)           { c.rows = append(c.rows, r) }
func (c *collector) startBlock(_ float64) {}

// ── cuerpo del documento ──────────────────────────────────────────────────────

func buildBody(sink rowSink, q *entity.Quote, items []*entity.QuoteItem, p *entity.Provider, cfg Config) {
	sink.emit(headerRow(q, p))
	sink.emit(Row{Kind: RowSeparator, Height: 2})

	sink.emit(tableHeadRow())
	sink.emit(Row{Kind: RowSeparator, Height: 1})
	for i, it := range items {
		sink.emit(itemRow(it, i, cfg))
	}

	sink.emit(Row{Kind: RowSpacer, Height: 2})
	for _, r := range totalsRows(q, cfg) {
		sink.emit(r)
	}

	if strings.TrimSpace(q.Notes) != "" {
		r := notesRow(q.Notes, cfg)
		sink.startBlock(r.Height)
		sink.emit(r)
	}
}

// headerRow: identidad de la funeraria a la izquierda (nombre grande, dirección,
// contacto) y a la derecha la etiqueta, número, fecha de emisión y validez
// opcional. Ambas bandas parten en el mismo offset vertical.
func headerRow(q *entity.Quote, p *entity.Provider) Row {
	left := []TextLine{
		{Text: p.Name, Bold: true, Size: 13},
		{Text: p.Address, Size: 9, Muted: true},
	}
	if contact := contactLine(p.Phone, p.Email); contact != "" {
		left = append(left, TextLine{Text: contact, Size: 8, Muted: true})
	}

	right := []TextLine{
		{Text: "COTIZACIÓN", Bold: true, Size: 8},
		{Text: q.Number, Bold: true, Size: 12},
		{Text: "Fecha: " + q.IssuedAt.Format("02/01/2006"), Size: 8, Muted: true},
	}
	if q.ValidUntil != nil {
		right = append(right, TextLine{
			Text:  "Válida hasta: " + q.ValidUntil.Format("02/01/2006"),
			Size:  8,
			Muted: true,
		})
	}

	cells := make([]Cell, 0, 3)
	if len(p.LogoPNG) > 0 {
		cells = append(cells,
			Cell{Span: 2, Image: p.LogoPNG},
			Cell{Span: 5, Align: AlignLeft, Lines: left},
		)
	} else {
		cells = append(cells, Cell{Span: 7, Align: AlignLeft, Lines: left})
	}
	cells = append(cells, Cell{Span: 5, Align: AlignRight, Lines: right})

	return Row{Kind: RowHeader, Height: 26, Cells: cells}
}

// contactLine une teléfono y email con " | " solo cuando ambos existen.
func contactLine(phone, email string) string {
	switch {
	case phone != "" && email != "":
		return phone + " | " + email
	case phone != "":
		return phone
	default:
		return email
	}
}

func tableHeadRow() Row {
	h := func(label string, span int, a Align) Cell {
		return Cell{Span: span, Align: a, Lines: []TextLine{{Text: label, Bold: true, Size: 8}}}
	}
	return Row{Kind: RowTableHead, Height: 8, Cells: []Cell{
		h("Descripción", 5, AlignLeft),
		h("Cant.", 1, AlignRight),
		h("Precio Unit.", 2, AlignRight),
		h("Desc.", 2, AlignRight),
		h("Subtotal", 2, AlignRight),
	}}
}

// itemRow: una fila por ítem, en orden de ingreso. Las filas pares (índice 0,
// 2, 4...) llevan fondo claro. La descripción, cuando existe, va bajo el nombre
// en fuente menor y atenuada, y suma altura extra a la fila.
func itemRow(it *entity.QuoteItem, idx int, cfg Config) Row {
	height := cfg.RowHeight
	nameLines := []TextLine{{Text: truncate(it.Name, cfg.NameBudget), Size: 8}}
	if it.Description != "" {
		nameLines = append(nameLines, TextLine{
			Text:  truncate(it.Description, cfg.DescBudget),
			Size:  7,
			Muted: true,
		})
		height += cfg.DescExtra
	}

	return Row{
		Kind:   RowItem,
		Height: height,
		Shaded: idx%2 == 0,
		Cells: []Cell{
			{Span: 5, Align: AlignLeft, Lines: nameLines},
			{Span: 1, Align: AlignRight, Lines: []TextLine{{Text: strconv.Itoa(it.Quantity), Size: 8}}},
			{Span: 2, Align: AlignRight, Lines: []TextLine{{Text: cfg.Money.Format(it.UnitPrice), Size: 8}}},
			{Span: 2, Align: AlignRight, Lines: []TextLine{{Text: it.DiscountPct.StringFixed(0) + "%", Size: 8}}},
			{Span: 2, Align: AlignRight, Lines: []TextLine{{Text: cfg.Money.Format(it.Subtotal), Size: 8, Bold: true}}},
		},
	}
}

// totalsRows: bloque de totales alineado a la derecha. El porcentaje del IVA se
// deriva de TaxAmount/Subtotal cuando el subtotal es positivo; si no, se
// muestra el porcentaje por defecto. El TOTAL va precedido por una regla y en
// fuente mayor.
func totalsRows(q *entity.Quote, cfg Config) []Row {
	totalLine := func(label, value string, size float64, bold bool) Row {
		return Row{Kind: RowTotals, Height: 6, Cells: []Cell{
			{Span: 7},
			{Span: 3, Align: AlignRight, Lines: []TextLine{{Text: label, Bold: true, Size: size}}},
			{Span: 2, Align: AlignRight, Lines: []TextLine{{Text: value, Bold: bold, Size: size}}},
		}}
	}

	return []Row{
		totalLine("Subtotal:", cfg.Money.Format(q.Subtotal), 9, false),
		totalLine(fmt.Sprintf("IVA (%d%%):", taxPercent(q, cfg)), cfg.Money.Format(q.TaxAmount), 9, false),
		{Kind: RowTotalsRule, Height: 1},
		totalLine("TOTAL:", cfg.Money.Format(q.Total), 11, true),
	}
}

// taxPercent deriva el porcentaje a mostrar: round(TaxAmount/Subtotal*100) si
// el subtotal es positivo, si no el porcentaje por defecto (19). Es solo
// presentación; el monto impreso es siempre el TaxAmount del caller.
func taxPercent(q *entity.Quote, cfg Config) int64 {
	if q.Subtotal.IsPositive() {
		return q.TaxAmount.Div(q.Subtotal).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}
	return cfg.DefaultTaxPct
}

// notesRow: bloque indivisible de notas/términos con encabezado en negrita y
// cuerpo envuelto por palabras al ancho configurado.
func notesRow(notes string, cfg Config) Row {
	lines := []TextLine{{Text: "Notas y condiciones", Bold: true, Size: 9}}
	for _, l := range wrapText(notes, cfg.NotesWidth) {
		lines = append(lines, TextLine{Text: l, Size: 8, Muted: true})
	}
	height := 6 + float64(len(lines)-1)*4 + 2
	return Row{Kind: RowNotes, Height: height, Cells: []Cell{
		{Span: 12, Align: AlignLeft, Lines: lines},
	}}
}
