package raster

import (
	"bufio"
	"image/png"
	"io"
	"os"

	"github.com/go-drift/valuebar/pkg/errors"
	"github.com/go-drift/valuebar/pkg/graphics"
)

// Painter paints itself onto a canvas.
type Painter interface {
	Paint(canvas graphics.Canvas)
}

// Render paints p onto a fresh transparent canvas of the given size.
func Render(p Painter, size graphics.Size) *Canvas {
	c := NewCanvas(size)
	p.Paint(c)
	return c
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return &errors.Error{Op: "raster.WritePNG", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// SavePNG writes the canvas to a PNG file at path, replacing any existing file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &errors.Error{Op: "raster.SavePNG", Kind: errors.KindRender, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &errors.Error{Op: "raster.SavePNG", Kind: errors.KindRender, Path: path, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, c.img); err != nil {
		return &errors.Error{Op: "raster.SavePNG", Kind: errors.KindRender, Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &errors.Error{Op: "raster.SavePNG", Kind: errors.KindRender, Path: path, Err: err}
	}
	return nil
}
