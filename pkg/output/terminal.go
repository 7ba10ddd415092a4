package output

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal prüft ob die Datei ein interaktives Terminal ist
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StdinIsTerminal prüft ob stdin ein Terminal ist (also nichts gepiped wird)
func StdinIsTerminal() bool {
	return IsTerminal(os.Stdin)
}

// StdoutIsTerminal prüft ob stdout ein Terminal ist
// Nur dann werden Marker farbig dargestellt
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout)
}
