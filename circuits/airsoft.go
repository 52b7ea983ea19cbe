package circuits

import (
	"fmt"

	"github.com/rcoan/airsoft-suitcase/schematic"
)

// PowerSystem shows the battery feeding the Arduino through the
// step-down converter.
func PowerSystem() (*schematic.Drawing, error) {
	d := schematic.New()

	bat := d.Add(schematic.SourceV().Label("11.1V LiPo\nBattery").Up().ID("BAT"))
	d.Add(schematic.Line().Right(d.Unit() * 1.5))

	d.Add(schematic.RBox().Label("5V Step-down\nConverter").Right().ID("CONV"))
	d.Add(schematic.Line().Right(d.Unit() * 0.5))

	arduino := d.Add(schematic.RBox().Label("Arduino Uno\n5V Input").Right().ID("ARDUINO"))

	// ground
	d.Add(schematic.Line().Down(d.Unit() * 1.5).At(bat.Start()))
	gnd := d.Add(schematic.Ground().ID("GND"))
	d.Add(schematic.Line().Right(d.Unit() * 4).At(gnd.Start()))
	d.Add(schematic.Line().Up(d.Unit() * 0.5).At(arduino.Start()))

	d.Add(schematic.Line().Label("+11.1V", schematic.Top).At(bat.End()))
	d.Add(schematic.Line().Label("+5V", schematic.Top).At(arduino.End()))
	d.Add(schematic.Line().Label("GND", schematic.Bottom).At(gnd.Start()))

	return d, d.Err()
}

// ArduinoPinout lists the Arduino pins used by the device.
func ArduinoPinout() (*schematic.Drawing, error) {
	d := schematic.New()

	arduino := d.Add(schematic.RBox().Label("Arduino Uno").Up().ID("ARDUINO"))

	// power
	d.Add(schematic.Line().Right(d.Unit() * 0.5).At(arduino.End()))
	d.Add(schematic.Dot().Label("5V").ID("VCC"))
	d.Add(schematic.Line().Right(d.Unit() * 0.5))
	d.Add(schematic.Dot().Label("GND").ID("GND_PIN"))

	// I2C for the LCD
	d.Add(schematic.Line().Down(d.Unit() * 0.3).At(arduino.End()))
	d.Add(schematic.Line().Right(d.Unit() * 1.5))
	d.Add(schematic.Dot().Label("A4 (SDA)").ID("SDA"))
	d.Add(schematic.Line().Right(d.Unit() * 0.5))
	d.Add(schematic.Dot().Label("A5 (SCL)").ID("SCL"))

	// outputs
	d.Add(schematic.Line().Down(d.Unit() * 0.6).At(arduino.End()))
	d.Add(schematic.Line().Right(d.Unit() * 0.5))
	d.Add(schematic.Dot().Label("Pin 12\n(Relay)").ID("PIN12"))
	d.Add(schematic.Line().Right(d.Unit() * 0.5))
	d.Add(schematic.Dot().Label("Pin 13\n(Buzzer/LED)").ID("PIN13"))

	// keypad
	pinRow(d, arduino.End(), 0.9, []string{"2", "3", "4", "5"}, "Col")
	pinRow(d, arduino.End(), 1.2, []string{"6", "7", "8", "9"}, "Row")

	return d, d.Err()
}

// pinRow draws a row of labelled pin dots, below from by drop units.
func pinRow(d *schematic.Drawing, from schematic.Point, drop float64, pins []string, role string) {
	d.Add(schematic.Line().Down(d.Unit() * drop).At(from))
	for i, pin := range pins {
		d.Add(schematic.Line().Right(d.Unit() * 0.5))
		d.Add(schematic.Dot().Label(fmt.Sprintf("Pin %s\n(%s%d)", pin, role, i+1)).ID("PIN" + pin))
	}
}

// KeypadMatrix shows the keypad rows and columns with their pins.
func KeypadMatrix() (*schematic.Drawing, error) {
	d := schematic.New()

	kp := d.Add(schematic.RBox().Label("4x4 Keypad Matrix").Up().ID("KP"))

	d.Add(schematic.Line().Left(d.Unit() * 1).At(kp.End()))
	for i := 1; i <= 4; i++ {
		if i > 1 {
			d.Add(schematic.Line().Down(d.Unit() * 0.3))
		}
		d.Add(schematic.Dot().Label(fmt.Sprintf("Row %d\nPin %d", i, i+5)).ID(fmt.Sprintf("R%d", i)))
	}

	d.Add(schematic.Line().Right(d.Unit() * 1).At(kp.End()))
	for i := 1; i <= 4; i++ {
		if i > 1 {
			d.Add(schematic.Line().Down(d.Unit() * 0.3))
		}
		d.Add(schematic.Dot().Label(fmt.Sprintf("Col %d\nPin %d", i, i+1)).ID(fmt.Sprintf("C%d", i)))
	}

	return d, d.Err()
}

// LCDI2C shows the I2C bus between the Arduino and the LCD, with its
// pull-up resistors.
func LCDI2C() (*schematic.Drawing, error) {
	d := schematic.New()

	arduino := d.Add(schematic.RBox().Label("Arduino").Left().ID("ARDUINO"))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	sda := d.Add(schematic.Dot().Label("A4 (SDA)").ID("SDA_PIN"))
	d.Add(schematic.Line().Right(d.Unit() * 0.5))
	scl := d.Add(schematic.Dot().Label("A5 (SCL)").ID("SCL_PIN"))

	// bus
	d.Add(schematic.Line().Down(d.Unit() * 0.5).At(sda.Start()))
	d.Add(schematic.Line().Right(d.Unit() * 2))
	d.Add(schematic.Line().Up(d.Unit() * 0.5))

	d.Add(schematic.RBox().Label("16x2 LCD\nI2C (0x27)").Right().ID("LCD"))

	// power
	d.Add(schematic.Line().Down(d.Unit() * 1).At(arduino.End()))
	vcc := d.Add(schematic.Dot().Label("5V").ID("VCC"))
	d.Add(schematic.Line().Right(d.Unit() * 2))
	d.Add(schematic.Line().Up(d.Unit() * 0.5))
	d.Add(schematic.Dot().Label("GND").ID("GND"))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	d.Add(schematic.Line().Up(d.Unit() * 0.5))

	// pull-ups
	for i, pin := range []*schematic.Element{sda, scl} {
		d.Add(schematic.Line().Up(d.Unit() * 0.3).At(pin.Start()))
		d.Add(schematic.Resistor().Up().Label("4.7kΩ").ID(fmt.Sprintf("R%d", i+1)))
		d.Add(schematic.Line().Right(d.Unit() * 0.5))
		d.Add(schematic.Line().To(vcc.Start()))
	}

	return d, d.Err()
}

// BuzzerLED shows the buzzer and the LED driven by pin 13.
func BuzzerLED() (*schematic.Drawing, error) {
	d := schematic.New()

	d.Add(schematic.RBox().Label("Arduino\nPin 13").Left().ID("ARDUINO"))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	pin13 := d.Add(schematic.Dot().Label("Pin 13").ID("PIN13"))

	// buzzer
	d.Add(schematic.Line().Down(d.Unit() * 0.5))
	d.Add(schematic.Speaker().Right().Label("Buzzer\n5V").ID("BUZZER"))
	d.Add(schematic.Line().Down(d.Unit() * 0.5))
	gnd1 := d.Add(schematic.Ground().ID("GND1"))

	// LED and its resistor
	d.Add(schematic.Line().Up(d.Unit() * 0.5).At(pin13.Start()))
	d.Add(schematic.Resistor().Right().Label("220Ω").ID("RESISTOR"))
	d.Add(schematic.LED().Right().Label("Red LED").ID("LED"))
	d.Add(schematic.Line().Down(d.Unit() * 0.5))
	d.Add(schematic.Ground().ID("GND2"))

	// common ground
	d.Add(schematic.Line().Left(d.Unit() * 1).At(gnd1.Start()))
	d.Add(schematic.Line().Up(d.Unit() * 1))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	d.Add(schematic.Line().Down(d.Unit() * 0.5))

	return d, d.Err()
}

// SirenRelay shows the relay switching the siren on the battery.
func SirenRelay() (*schematic.Drawing, error) {
	d := schematic.New()

	d.Add(schematic.RBox().Label("Arduino\nPin 12").Left().ID("ARDUINO"))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	d.Add(schematic.Dot().Label("Pin 12").ID("PIN12"))

	// relay module
	d.Add(schematic.Line().Down(d.Unit() * 0.5))
	relay := d.Add(schematic.RBox().Label("5V Relay\nModule").Right().ID("RELAY"))

	d.Add(schematic.Line().Right(d.Unit() * 1).At(relay.End()))
	com := d.Add(schematic.Dot().Label("COM").ID("COM"))
	d.Add(schematic.Line().Down(d.Unit() * 0.3))
	d.Add(schematic.Dot().Label("NC").ID("NC"))
	d.Add(schematic.Line().Down(d.Unit() * 0.3))
	d.Add(schematic.Dot().Label("NO").ID("NO"))

	// siren circuit
	d.Add(schematic.Line().Right(d.Unit() * 1).At(com.Start()))
	d.Add(schematic.SourceV().Label("11.1V\nLiPo").Up().ID("BATTERY"))
	d.Add(schematic.Line().Left(d.Unit() * 0.5))
	d.Add(schematic.Line().Down(d.Unit() * 0.5))
	d.Add(schematic.Speaker().Right().Label("Siren\n11.1V").ID("SIREN"))
	d.Add(schematic.Line().Down(d.Unit() * 0.5))
	d.Add(schematic.Ground().ID("GND"))

	// relay control power
	d.Add(schematic.Line().Up(d.Unit() * 0.5).At(relay.Start()))
	d.Add(schematic.Dot().Label("5V").ID("VCC"))
	d.Add(schematic.Line().Down(d.Unit() * 0.3))
	ctrl := d.Add(schematic.Dot().Label("GND").ID("GND_CTRL"))

	d.Add(schematic.Line().Left(d.Unit() * 1).At(ctrl.Start()))
	d.Add(schematic.Line().Down(d.Unit() * 0.5))
	d.Add(schematic.Line().Right(d.Unit() * 2))
	d.Add(schematic.Line().Up(d.Unit() * 0.5))

	return d, d.Err()
}

// SystemOverview shows every module of the device around the Arduino.
func SystemOverview() (*schematic.Drawing, error) {
	d := schematic.New()

	battery := d.Add(schematic.SourceV().Label("11.1V LiPo").Up().ID("BATTERY"))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	d.Add(schematic.RBox().Label("5V\nConverter").Right().ID("CONVERTER"))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	arduino := d.Add(schematic.RBox().Label("Arduino\nUno").Right().ID("ARDUINO"))

	// ground
	d.Add(schematic.Line().Down(d.Unit() * 1.5).At(battery.Start()))
	gnd := d.Add(schematic.Ground().ID("GND"))
	d.Add(schematic.Line().Right(d.Unit() * 3).At(gnd.Start()))
	d.Add(schematic.Line().Up(d.Unit() * 0.5))

	d.Add(schematic.Line().Up(d.Unit() * 0.5).At(arduino.End()))
	d.Add(schematic.RBox().Label("4x4\nKeypad").Right().ID("KEYPAD"))

	d.Add(schematic.Line().Down(d.Unit() * 0.5).At(arduino.End()))
	d.Add(schematic.RBox().Label("16x2 LCD\nI2C").Right().ID("LCD"))

	d.Add(schematic.Line().Down(d.Unit() * 0.5).At(arduino.End()))
	d.Add(schematic.Speaker().Right().Label("Buzzer\n+ LED").ID("BUZZER"))

	d.Add(schematic.Line().Down(d.Unit() * 0.5).At(arduino.End()))
	d.Add(schematic.RBox().Label("5V\nRelay").Right().ID("RELAY"))
	d.Add(schematic.Line().Right(d.Unit() * 1))
	d.Add(schematic.Speaker().Right().Label("Siren\n11.1V").ID("SIREN"))

	// siren power from the battery
	d.Add(schematic.Line().Left(d.Unit() * 2))
	d.Add(schematic.Line().Up(d.Unit() * 1))
	d.Add(schematic.Line().Left(d.Unit() * 1))
	d.Add(schematic.Line().To(battery.End()))

	return d, d.Err()
}
