package main

import (
	"trunc/cmd"
	"trunc/pkg/crash"
)

func main() {
	// Globaler Crash-Handler - fängt alle unbehandelten Panics ab
	// und schreibt einen Report nach stderr
	defer crash.Handler()

	cmd.Execute()
}
