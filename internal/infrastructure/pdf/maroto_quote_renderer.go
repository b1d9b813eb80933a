// Package pdf emite el documento de cotización ya diagramado
// (quote.Document) a bytes PDF usando Maroto v2. El emisor no toma
// ninguna decisión de layout: dibuja las páginas tal como vienen del
// motor y solo aporta estilo visual (paleta, fondos, reglas).
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/funeraria-api/internal/domain/quote"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 55, Green: 71, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorShade   = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoQuoteRenderer implementa quotes.PDFEmitter usando Maroto v2.
type MarotoQuoteRenderer struct{}

// NewMarotoQuoteRenderer construye el emisor.
func NewMarotoQuoteRenderer() *MarotoQuoteRenderer { return &MarotoQuoteRenderer{} }

// Emit dibuja el documento y devuelve los bytes del PDF.
func (r *MarotoQuoteRenderer) Emit(_ context.Context, doc *quote.Document) ([]byte, error) {
	lcfg := doc.Config
	cfg := config.NewBuilder().
		WithDimensions(doc.PageWidth, doc.PageHeight).
		WithLeftMargin(lcfg.MarginLeft).WithRightMargin(lcfg.MarginRight).
		WithTopMargin(lcfg.MarginTop).WithBottomMargin(lcfg.MarginBottom).
		WithDefaultFont(&props.Font{Family: lcfg.FontFamily, Size: lcfg.FontSize}).
		WithTitle("Cotización", true).
		Build()

	m := maroto.New(cfg)
	for _, p := range doc.Pages {
		m.AddPages(buildPage(p, doc))
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return generated.GetBytes(), nil
}

// buildPage dibuja las filas de una página y, si la página trae pie, lo estampa
// al fondo precedido por una fila de relleno que consume la altura sobrante.
func buildPage(p quote.Page, doc *quote.Document) core.Page {
	pg := page.New()
	used := 0.0
	for _, r := range p.Rows {
		pg.Add(buildRow(r, doc.Config))
		used += r.Height
	}

	if p.Footer != "" {
		lcfg := doc.Config
		usable := doc.PageHeight - lcfg.MarginTop - lcfg.MarginBottom - lcfg.FooterSize
		if filler := usable - used; filler > 0 {
			pg.Add(row.New(filler))
		}
		pg.Add(row.New(lcfg.FooterSize).Add(col.New(12).Add(
			text.New(p.Footer, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	return pg
}

// ── Filas ─────────────────────────────────────────────────────────────────────

func buildRow(r quote.Row, cfg quote.Config) core.Row {
	switch r.Kind {
	case quote.RowSeparator:
		return line.NewRow(r.Height, props.Line{Color: colorPrimary, Thickness: 0.4})
	case quote.RowSpacer:
		return row.New(r.Height)
	case quote.RowTotalsRule:
		// regla corta sobre el TOTAL, alineada con el bloque de totales
		return row.New(r.Height).Add(
			col.New(7),
			line.NewCol(5, props.Line{Color: colorPrimary, Thickness: 0.4}),
		)
	}

	cols := make([]core.Col, 0, len(r.Cells))
	for _, c := range r.Cells {
		cols = append(cols, buildCol(c, r.Kind, cfg))
	}
	out := row.New(r.Height).Add(cols...)

	switch {
	case r.Kind == quote.RowTableHead:
		out.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	case r.Shaded:
		out.WithStyle(&props.Cell{BackgroundColor: colorShade})
	}
	return out
}

// buildCol apila las líneas de texto de la celda con un avance vertical
// proporcional al tamaño de fuente; una celda con imagen dibuja el logo.
func buildCol(c quote.Cell, kind quote.RowKind, cfg quote.Config) core.Col {
	if len(c.Image) > 0 {
		return col.New(c.Span).Add(
			image.NewFromBytes(c.Image, extension.Png, props.Rect{Center: true, Percent: 90}),
		)
	}
	if len(c.Lines) == 0 {
		return col.New(c.Span)
	}

	comps := make([]core.Component, 0, len(c.Lines))
	top := 1.0
	for _, l := range c.Lines {
		size := l.Size
		if size == 0 {
			size = cfg.FontSize
		}
		t := props.Text{
			Size: size, Top: top, Left: 1, Right: 1,
			Align: mapAlign(c.Align),
		}
		if l.Bold {
			t.Style = fontstyle.Bold
		}
		switch {
		case kind == quote.RowTableHead:
			t.Color = colorWhite
		case l.Muted:
			t.Color = colorGray
		}
		comps = append(comps, text.New(l.Text, t))
		top += size * 0.5
	}
	return col.New(c.Span).Add(comps...)
}

func mapAlign(a quote.Align) align.Type {
	switch a {
	case quote.AlignCenter:
		return align.Center
	case quote.AlignRight:
		return align.Right
	default:
		return align.Left
	}
}
