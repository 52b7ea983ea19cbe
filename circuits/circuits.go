// Package circuits holds the schematics of the airsoft suitcase:
// the wiring diagrams of the device and the Arduino Uno breakout.
// Each diagram is built by a plain function returning the drawing,
// ready to be exported.
package circuits

import "github.com/rcoan/airsoft-suitcase/schematic"

// Diagram is a named schematic builder. Name is also the base name
// of the exported files.
type Diagram struct {
	Name  string
	Build func() (*schematic.Drawing, error)
}

// Airsoft returns the wiring diagrams of the device, in generation order.
func Airsoft() []Diagram {
	return []Diagram{
		{"power_system", PowerSystem},
		{"arduino_pinout", ArduinoPinout},
		{"keypad_matrix", KeypadMatrix},
		{"lcd_i2c", LCDI2C},
		{"buzzer_led", BuzzerLED},
		{"siren_relay", SirenRelay},
		{"system_overview", SystemOverview},
	}
}

// Arduino returns the Arduino Uno breakout diagram.
func Arduino() Diagram { return Diagram{"arduino_uno", ArduinoUno} }

// Lookup finds a diagram by name, among all the known ones.
func Lookup(name string) (Diagram, bool) {
	for _, dg := range append(Airsoft(), Arduino()) {
		if dg.Name == name {
			return dg, true
		}
	}
	return Diagram{}, false
}
