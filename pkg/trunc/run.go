package trunc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readBufferSize ist die Puffergröße für den Eingabe-Reader
const readBufferSize = 64 * 1024

// Run liest Zeilen aus r, gibt sie an die Engine weiter und schließt sie am Eingabeende.
// Zeilen werden an '\n' getrennt, ein '\r' direkt davor wird entfernt (CRLF). Eine letzte
// Zeile ohne Zeilenende zählt ebenfalls. Die Zeilenlänge ist nicht begrenzt.
//
// Bei einem Lesefehler bricht Run ab. Bereits geflushte Ausgabe (z.B. der Kopf)
// bleibt beim Konsumenten - das ist die Kehrseite der Stream-Ausgabe.
func Run(r io.Reader, e *Engine) error {
	br := bufio.NewReaderSize(r, readBufferSize)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if pushErr := e.Push(line); pushErr != nil {
				return pushErr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	return e.Close()
}
