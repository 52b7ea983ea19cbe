package circuits

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcoan/airsoft-suitcase/schematic"
	"github.com/rcoan/airsoft-suitcase/svgicon"
)

func TestDiagramsBuild(t *testing.T) {
	t.Parallel()

	for _, dg := range append(Airsoft(), Arduino()) {
		dg := dg
		t.Run(dg.Name, func(t *testing.T) {
			t.Parallel()

			d, err := dg.Build()
			require.NoError(t, err)
			assert.NotEmpty(t, d.Elements())
			b := d.Bounds()
			assert.Greater(t, b.Width(), 0.)
			assert.Greater(t, b.Height(), 0.)

			var buf bytes.Buffer
			require.NoError(t, d.WriteSVG(&buf))
			icon, err := svgicon.ReadIconStream(&buf, svgicon.StrictErrorMode)
			require.NoError(t, err)
			assert.NotEmpty(t, icon.SVGPaths)
		})
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	var names []string
	for _, dg := range Airsoft() {
		names = append(names, dg.Name)
	}
	assert.Equal(t, []string{
		"power_system", "arduino_pinout", "keypad_matrix", "lcd_i2c",
		"buzzer_led", "siren_relay", "system_overview",
	}, names)

	dg, ok := Lookup("arduino_uno")
	require.True(t, ok)
	assert.Equal(t, "arduino_uno", dg.Name)
	_, ok = Lookup("lcd_i2c")
	assert.True(t, ok)
	_, ok = Lookup("flux_capacitor")
	assert.False(t, ok)
}

func TestPowerSystem(t *testing.T) {
	t.Parallel()

	d, err := PowerSystem()
	require.NoError(t, err)

	bat := d.Element("BAT")
	require.NotNil(t, bat)
	assert.Equal(t, schematic.KindSourceV, bat.Kind())
	assert.Equal(t, 90., bat.Direction())

	gnd := d.Element("GND")
	require.NotNil(t, gnd)
	// the ground hangs below the battery
	assert.InDelta(t, bat.Start().X, gnd.Start().X, 1e-9)
	assert.InDelta(t, bat.Start().Y-1.5*d.Unit(), gnd.Start().Y, 1e-9)
	assert.Equal(t, []string{"5V Step-down\nConverter"}, d.Element("CONV").Labels())
}

func TestKeypadMatrix(t *testing.T) {
	t.Parallel()

	d, err := KeypadMatrix()
	require.NoError(t, err)
	assert.Equal(t, []string{"Row 3\nPin 8"}, d.Element("R3").Labels())
	assert.Equal(t, []string{"Col 1\nPin 2"}, d.Element("C1").Labels())

	kp := d.Element("KP")
	// rows on the left, columns on the right
	assert.Less(t, d.Element("R1").Start().X, kp.End().X)
	assert.Greater(t, d.Element("C1").Start().X, kp.End().X)
	assert.Less(t, d.Element("C4").Start().Y, d.Element("C1").Start().Y)
}

func TestArduinoUno(t *testing.T) {
	t.Parallel()

	d, err := ArduinoUno()
	require.NoError(t, err)
	assert.Equal(t, 11., d.Config().FontSize)
	assert.Equal(t, .4, d.Config().InchesPerUnit)

	q1 := d.Element("Q1")
	require.NotNil(t, q1)
	assert.Len(t, q1.Terminals(), 28)
	assert.Equal(t, []string{"ATMEGA328"}, q1.Labels())

	jp4 := d.Element("JP4")
	require.NotNil(t, jp4)
	want := q1.Pin("PB5").Offset(4, 1)
	assert.InDelta(t, want.X, jp4.Pin("pin6").X, 1e-9)
	assert.InDelta(t, want.Y, jp4.Pin("pin6").Y, 1e-9)

	jp1 := d.Element("JP1")
	require.NotNil(t, jp1)
	assert.Len(t, jp1.Terminals(), 6)

	// the DTR wire goes around the board, down to the reset button
	var wire *schematic.Element
	for _, e := range d.Elements() {
		if e.Kind() == schematic.KindWire && e.End() == d.Element("RST").Start() {
			wire = e
		}
	}
	require.NotNil(t, wire)
	path := wire.Conductors()[0]
	require.Len(t, path, 4)
	assert.InDelta(t, path[0].X-16, path[1].X, 1e-9)
	assert.Less(t, path[1].X, q1.Bounds().XMin)
}
