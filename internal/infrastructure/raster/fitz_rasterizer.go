// Package raster rasteriza el PDF continuo de la cotización a una imagen JPEG
// alta (una sola página, sin cortes) usando MuPDF vía go-fitz.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"
)

// FitzRasterizer implementa quotes.Rasterizer. Scale multiplica los 72 DPI base
// del PDF; 2 produce una imagen al doble de resolución nominal.
type FitzRasterizer struct {
	Scale   int
	Quality int // calidad JPEG 1..100
}

// NewFitzRasterizer construye el rasterizador con escala 2x y calidad 90.
func NewFitzRasterizer() *FitzRasterizer {
	return &FitzRasterizer{Scale: 2, Quality: 90}
}

// Rasterize convierte la primera página del PDF en un JPEG con fondo blanco.
func (r *FitzRasterizer) Rasterize(_ context.Context, pdf []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return nil, fmt.Errorf("raster: abrir PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() < 1 {
		return nil, fmt.Errorf("raster: el PDF no tiene páginas")
	}

	scale := r.Scale
	if scale < 1 {
		scale = 1
	}
	img, err := doc.ImageDPI(0, float64(72*scale))
	if err != nil {
		return nil, fmt.Errorf("raster: renderizar página: %w", err)
	}

	// compone sobre blanco: JPEG no soporta alfa
	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)

	quality := r.Quality
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("raster: codificar JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
