package circuits

import (
	"fmt"

	"github.com/rcoan/airsoft-suitcase/schematic"
)

// Atmega328 returns the microcontroller of the Arduino Uno, with its
// ports on the right and the power and clock pins on the left.
func Atmega328() *schematic.Element {
	pins := []schematic.IcPin{
		{Name: "PD0", Pin: "2", Side: "r", Slot: "1/22"},
		{Name: "PD1", Pin: "3", Side: "r", Slot: "2/22"},
		{Name: "PD2", Pin: "4", Side: "r", Slot: "3/22"},
		{Name: "PD3", Pin: "5", Side: "r", Slot: "4/22"},
		{Name: "PD4", Pin: "6", Side: "r", Slot: "5/22"},
		{Name: "PD5", Pin: "11", Side: "r", Slot: "6/22"},
		{Name: "PD6", Pin: "12", Side: "r", Slot: "7/22"},
		{Name: "PD7", Pin: "13", Side: "r", Slot: "8/22"},
		{Name: "PC0", Pin: "23", Side: "r", Slot: "10/22"},
		{Name: "PC1", Pin: "24", Side: "r", Slot: "11/22"},
		{Name: "PC2", Pin: "25", Side: "r", Slot: "12/22"},
		{Name: "PC3", Pin: "26", Side: "r", Slot: "13/22"},
		{Name: "PC4", Pin: "27", Side: "r", Slot: "14/22"},
		{Name: "PC5", Pin: "28", Side: "r", Slot: "15/22"},
		{Name: "PB0", Pin: "14", Side: "r", Slot: "17/22"},
		{Name: "PB1", Pin: "15", Side: "r", Slot: "18/22"},
		{Name: "PB2", Pin: "16", Side: "r", Slot: "19/22"},
		{Name: "PB3", Pin: "17", Side: "r", Slot: "20/22"},
		{Name: "PB4", Pin: "18", Side: "r", Slot: "21/22"},
		{Name: "PB5", Pin: "19", Side: "r", Slot: "22/22"},

		{Name: "RESET", Pin: "1", Side: "l", Slot: "22/22", Invert: true},
		{Name: "XTAL2", Pin: "10", Side: "l", Slot: "19/22"},
		{Name: "XTAL1", Pin: "9", Side: "l", Slot: "17/22"},
		{Name: "AREF", Pin: "21", Side: "l", Slot: "15/22"},
		{Name: "AVCC", Pin: "20", Side: "l", Slot: "14/22"},
		{Name: "AGND", Pin: "22", Side: "l", Slot: "13/22"},
		{Name: "VCC", Pin: "7", Side: "l", Slot: "11/22"},
		{Name: "GND", Pin: "8", Side: "l", Slot: "10/22"},
	}
	return schematic.Ic(5, pins...).Label("ATMEGA328", schematic.Bottom)
}

// ArduinoUno draws the Arduino Uno board: the ATMEGA328 with its
// headers, crystal, power decoupling and reset circuit.
func ArduinoUno() (*schematic.Drawing, error) {
	d := schematic.New()
	d.Configure(schematic.Config{FontSize: 11, InchesPerUnit: .4})
	u := d.Unit()

	q1 := d.Add(Atmega328().ID("Q1"))

	// headers
	jp4 := d.Add(schematic.Header(schematic.HeaderSpec{
		Rows:        10,
		ShowNumbers: true,
		PinsRight:   []string{"D8", "D9", "D10", "D11", "D12", "D13", "", "", "", ""},
	}).Flip().At(q1.Pin("PB5").Offset(4, 1)).Anchor("pin6").Label("JP4", schematic.FontSize(10)).ID("JP4"))

	jp3 := d.Add(schematic.Header(schematic.HeaderSpec{
		Rows:        6,
		ShowNumbers: true,
		PinsRight:   []string{"A0", "A1", "A2", "A3", "A4", "A5"},
	}).Flip().At(q1.Pin("PC5").Offset(4, 0)).Anchor("pin6").Label("JP3", schematic.FontSize(10)).ID("JP3"))

	jp2 := d.Add(schematic.Header(schematic.HeaderSpec{
		Rows:        8,
		ShowNumbers: true,
		PinsRight:   []string{"D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7"},
	}).Flip().At(q1.Pin("PD7").Offset(3, 0)).Anchor("pin8").Label("JP2", schematic.FontSize(10)).ID("JP2"))

	// digital and analog ports
	d.Add(schematic.OrthoLines(6).At(q1.Pin("PB5")).To(jp4.Pin("pin6")))
	d.Add(schematic.OrthoLines(6).At(q1.Pin("PC5")).To(jp3.Pin("pin6")))
	d.Add(schematic.OrthoLines(8).At(q1.Pin("PD7")).To(jp2.Pin("pin8")))

	// power and reference pins
	for i, name := range []string{"GND", "AREF", "AD4/SDA", "AD5/SCL"} {
		pin := jp4.Pin(fmt.Sprintf("pin%d", 7+i))
		d.Add(schematic.Line().Left(.9).At(pin).Label(name, schematic.Left))
	}

	// USB serial header
	jp1 := d.Add(schematic.Header(schematic.HeaderSpec{
		Rows:        6,
		ShowNumbers: true,
		PinsRight:   []string{"VCC", "RXD", "TXD", "DTR", "RTS", "GND"},
	}).Right().At(q1.Pin("PD0").Offset(4, -2)).Anchor("pin1").ID("JP1"))

	d.Add(schematic.Line().Left(u / 2).At(jp1.Pin("pin1")))
	d.Add(schematic.Vdd().Label("+5V"))
	d.Add(schematic.Line().Left().At(jp1.Pin("pin2")))
	d.Add(schematic.Line().ToY(q1.Pin("PD0")).Dot())
	d.Add(schematic.Line().Left(u + .6).At(jp1.Pin("pin3")))
	d.Add(schematic.Line().ToY(q1.Pin("PD1")).Dot())
	d.Add(schematic.Line().Left(u / 2).At(jp1.Pin("pin6")))
	d.Add(schematic.Ground())

	// crystal oscillator
	d.Add(schematic.Line().Left(u * 2).At(q1.Pin("XTAL2")).Dot())
	d.Push()
	d.Add(schematic.Capacitor().Left(u / 2).Scale(.75))
	d.Add(schematic.Line().ToY(q1.Pin("XTAL1")).Dot())
	d.Add(schematic.Ground())
	d.Add(schematic.Capacitor().Right(u / 2).Scale(.75).Dot())
	d.Pop()
	d.Add(schematic.Crystal().ToY(q1.Pin("XTAL1")).Label("16MHz", schematic.Bottom).ID("Y1"))
	d.Add(schematic.Line().ToX(q1.Pin("XTAL1")))

	// reference voltage and decoupling
	d.Add(schematic.Line().Left(u/3).At(q1.Pin("AREF")).Label("AREF", schematic.Left))
	d.Add(schematic.Line().Left(1.5 * u).At(q1.Pin("AVCC")))
	d.Add(schematic.Vdd().Label("+5V"))
	d.Add(schematic.Line().ToY(q1.Pin("VCC")).Dot().IDot())
	d.Add(schematic.Line().ToX(q1.Pin("VCC")).Hold())
	d.Add(schematic.Capacitor().Down().Label("100n"))
	gnd := d.Add(schematic.Ground().ID("GND"))

	// ground connections
	d.Add(schematic.Line().Left().At(q1.Pin("AGND")))
	d.Add(schematic.Line().ToY(q1.Pin("GND")).Dot())
	d.Add(schematic.Line().ToX(q1.Pin("GND")).Hold())
	d.Add(schematic.Wire("|-").To(gnd.Center()).Dot())

	// reset circuit
	d.Add(schematic.Line().Left().At(q1.Pin("RESET")).Dot())
	d.Push()
	d.Add(schematic.RBox().Up().Label("10K"))
	d.Add(schematic.Vdd().Label("+5V"))
	d.Pop()
	d.Add(schematic.Line().Left().Dot())
	d.Push()
	rst := d.Add(schematic.Button().Up().Label("Reset").ID("RST"))
	d.Add(schematic.Line().Left(u / 2))
	d.Add(schematic.Ground())
	d.Pop()

	// DTR auto reset
	d.Add(schematic.Capacitor().Left().At(jp1.Pin("pin4")).Label("100n", schematic.Bottom))
	d.Add(schematic.Wire("c", -16).To(rst.Start()))

	return d, d.Err()
}
