// Package commands defines the generate-diagrams CLI, which writes the
// wiring diagrams of the airsoft suitcase.
//
// Commands
//
//   - (root)  Generate the diagrams into --out
//   - list    Print the diagram names
//
// Without flags, every diagram is written as SVG and PNG (300 dpi) in
// the diagrams directory, created if needed.
package commands
