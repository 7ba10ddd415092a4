package output

import (
	"fmt"
	"unicode/utf8"
)

// TruncateLine kürzt eine einzelne Zeile auf die ersten und letzten width Zeichen.
// Dazwischen steht ein Marker "[... N chars ...]" mit der Anzahl entfernter Zeichen
// (Transparenz-Prinzip: der Leser sieht wie viel fehlt).
//
// Gezählt wird in Unicode-Codepoints, nicht in Bytes. width == 0 deaktiviert die Kürzung.
// Das Ergebnis ist nie länger als das Original: spart der Marker keinen Platz,
// bleibt die Zeile unverändert.
func TruncateLine(line string, width int) string {
	if width <= 0 {
		return line
	}

	n := utf8.RuneCountInString(line)
	if n <= 2*width {
		return line
	}

	removed := n - 2*width
	marker := fmt.Sprintf("[... %d chars ...]", removed)

	// Marker ist reines ASCII, Länge in Bytes == Länge in Zeichen
	if 2*width+len(marker) >= n {
		return line
	}

	return line[:byteOffset(line, width)] + marker + line[byteOffset(line, n-width):]
}

// byteOffset liefert den Byte-Index des Zeichens Nummer idx (0-basiert).
// Ungültige UTF-8-Bytes zählen wie utf8.RuneCountInString je als ein Zeichen
// und bleiben unverändert erhalten.
func byteOffset(s string, idx int) int {
	off := 0
	for i := 0; i < idx && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
