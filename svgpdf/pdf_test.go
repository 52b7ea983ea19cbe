package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcoan/airsoft-suitcase/svgicon"
)

const sample = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50">
<rect x="10" y="10" width="30" height="30" fill="black" stroke="red" stroke-width="2"/>
<path d="M50,25 Q60,10 70,25 T90,25" fill="none" stroke="#0000ff" stroke-dasharray="3 1" opacity="0.5"/>
<text x="60" y="45" font-size="10">R1</text>
</svg>`

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, strings.NewReader(sample)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("invalid pdf header %q", buf.Bytes()[:8])
	}
}

func TestRenderSVGIconToPDF(t *testing.T) {
	icon, err := svgicon.ReadIconStream(strings.NewReader(sample), svgicon.StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "sample.pdf")
	if err := RenderSVGIconToPDF(icon, out); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(content) == 0 || !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Error("invalid pdf file")
	}
}

func TestEmptyViewBox(t *testing.T) {
	if err := WritePDF(new(bytes.Buffer), strings.NewReader(`<svg/>`)); err == nil {
		t.Error("expected error for empty view box")
	}
}

func TestNewPage(t *testing.T) {
	icon, err := svgicon.ReadIconStream(strings.NewReader(sample), svgicon.StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	page, err := newPage(icon)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Contents) != 1 || len(page.Contents[0].Content) == 0 {
		t.Error("missing page content")
	}
	if page.MediaBox == nil || page.MediaBox.Urx != 100 || page.MediaBox.Ury != 50 {
		t.Errorf("unexpected media box %v", page.MediaBox)
	}
	if page.Resources == nil {
		t.Error("missing page resources")
	}
}
