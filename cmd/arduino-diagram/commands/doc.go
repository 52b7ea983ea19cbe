// Package commands defines the arduino-diagram CLI, which writes the
// Arduino Uno schematic as arduino_uno.svg in the current directory.
package commands
