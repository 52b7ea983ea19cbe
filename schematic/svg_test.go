package schematic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcoan/airsoft-suitcase/svgicon"
)

func sampleDrawing() *Drawing {
	d := New()
	bat := d.Add(SourceV().Up().Label("11.1V LiPo\nBattery"))
	d.Add(Line().Right(d.Unit() * 1.5))
	d.Add(Resistor().Down().Label("4.7kΩ"))
	d.Add(Dot().Label("A&B"))
	d.Add(Line().To(bat.Start()))
	d.Add(Ground())
	return d
}

func TestWriteSVG(t *testing.T) {
	t.Parallel()

	d := sampleDrawing()
	var buf bytes.Buffer
	require.NoError(t, d.WriteSVG(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, out, `stroke="#000000"`)
	assert.Contains(t, out, "<circle")
	assert.Contains(t, out, ">A&amp;B</text>")
	assert.Contains(t, out, ">4.7kΩ</text>")
	// one text element per line
	assert.Contains(t, out, ">11.1V LiPo</text>")
	assert.Contains(t, out, ">Battery</text>")
	assert.NotContains(t, out, "dominant-baseline")

	// the output is understood by the SVG reader
	icon, err := svgicon.ReadIconStream(strings.NewReader(out), svgicon.StrictErrorMode)
	require.NoError(t, err)
	assert.Equal(t, []string{"11.1V LiPo", "Battery", "4.7kΩ", "A&B"}, icon.Texts)

	b := d.Bounds()
	ppu := d.Config().pointsPerUnit()
	assert.InDelta(t, (b.Width()+0.2)*ppu, icon.ViewBox.W, 0.01)
	assert.InDelta(t, (b.Height()+0.2)*ppu, icon.ViewBox.H, 0.01)
}

func TestSVGCoordinates(t *testing.T) {
	t.Parallel()

	d := NewWithConfig(Config{InchesPerUnit: 1, Margin: 1})
	d.Add(Line().Up(2))
	svg, err := d.SVG()
	require.NoError(t, err)

	// one unit is 72 points; y goes down
	assert.Contains(t, string(svg), `d="M72.000,216.000 L72.000,72.000"`)
	assert.Contains(t, string(svg), `width="144.00" height="288.00"`)
}

func TestSVGColor(t *testing.T) {
	t.Parallel()

	d := NewWithConfig(Config{Color: "navy"})
	d.Add(Line().Dot())
	svg, err := d.SVG()
	require.NoError(t, err)
	assert.Contains(t, string(svg), `stroke="#000080"`)
	assert.Contains(t, string(svg), `fill="#000080"`)

	d = NewWithConfig(Config{Color: "not a color"})
	d.Add(Line())
	_, err = d.SVG()
	assert.Error(t, err)
}

func TestEmptyDrawing(t *testing.T) {
	t.Parallel()

	svg, err := New().SVG()
	require.NoError(t, err)
	icon, err := svgicon.ReadIconStream(bytes.NewReader(svg), svgicon.StrictErrorMode)
	require.NoError(t, err)
	assert.Empty(t, icon.SVGPaths)
}
