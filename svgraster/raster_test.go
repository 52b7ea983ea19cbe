package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/rcoan/airsoft-suitcase/svgicon"
)

const sample = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" width="100" height="50">
<rect x="10" y="10" width="30" height="30" fill="black"/>
<line x1="50" y1="25" x2="95" y2="25" stroke="#ff0000" stroke-width="4"/>
<text x="60" y="45" font-size="10" fill="blue">R1</text>
</svg>`

func renderSample(t *testing.T, opts *Options) *image.RGBA {
	img, err := RasterSVGToImage(strings.NewReader(sample), opts)
	if err != nil {
		t.Fatalf("can't raster image: %s", err)
	}
	return img
}

func isColor(c color.Color, r, g, b uint8) bool {
	cr, cg, cb, ca := c.RGBA()
	return ca == 0xffff && uint8(cr>>8) == r && uint8(cg>>8) == g && uint8(cb>>8) == b
}

func TestSize(t *testing.T) {
	img := renderSample(t, nil)
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("unexpected size %v", img.Bounds())
	}
	img = renderSample(t, &Options{DPI: 144})
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Errorf("unexpected size at 144 dpi %v", img.Bounds())
	}
}

func TestPixels(t *testing.T) {
	img := renderSample(t, &Options{DPI: 144, Background: color.White})
	if c := img.At(50, 50); !isColor(c, 0, 0, 0) {
		t.Errorf("expected black inside the rectangle, got %v", c)
	}
	if c := img.At(2, 2); !isColor(c, 0xff, 0xff, 0xff) {
		t.Errorf("expected white background, got %v", c)
	}
	if c := img.At(150, 50); !isColor(c, 0xff, 0, 0) {
		t.Errorf("expected red stroke, got %v", c)
	}

	// the label is painted as glyph outlines
	var blue int
	for y := 70; y < 92; y++ {
		for x := 118; x < 150; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); b > 0x8000 && r < 0x8000 && g < 0x8000 {
				blue++
			}
		}
	}
	if blue == 0 {
		t.Error("text was not rendered")
	}
}

func TestTransparent(t *testing.T) {
	img := renderSample(t, nil)
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
		t.Errorf("expected transparent background, got alpha %d", a)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, strings.NewReader(sample), &Options{DPI: 72}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid png: %s", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("unexpected size %v", img.Bounds())
	}
}

func TestEmptyViewBox(t *testing.T) {
	if _, err := RasterSVGIconToImage(&svgicon.SvgIcon{}, nil); err == nil {
		t.Error("expected error for empty view box")
	}
}
