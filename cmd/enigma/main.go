// enigma is the command-line front end of the cipher engine.
//
// Usage:
//
//	enigma encrypt [machine flags] [--text T | --file F] [--group N]
//	enigma trace   [machine flags] [--text T | --file F] [--format table|markdown|json|yaml]
//	enigma batch   [machine flags] [--file F] [--parallel N] [--format table|markdown|json|yaml]
//	enigma session [machine flags]
//	enigma catalog [--format table|markdown]
//
// Machine flags: --config FILE, --rotors III:A:A,II:A:A,I:A:A (fast first),
// --reflector B, --plugboard "AV BS", --stepping simplified|double-step.
// Input defaults to stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "enigma:", err)
		os.Exit(1)
	}
}
