package output

import (
	"bufio"
	"io"

	"github.com/fatih/color"
)

// Writer schreibt Zeilen und Marker gepuffert auf einen io.Writer.
// Sichtbar wird die Ausgabe erst nach Flush - der Aufrufer entscheidet,
// welche Zeilen sofort beim Konsumenten ankommen müssen.
type Writer struct {
	w      *bufio.Writer
	marker *color.Color
}

// NewWriter erstellt einen Writer. Mit colored werden Marker abgeschwächt
// dargestellt (nur sinnvoll wenn out ein Terminal ist).
func NewWriter(out io.Writer, colored bool) *Writer {
	marker := color.New(color.Faint)
	if colored {
		marker.EnableColor()
	} else {
		marker.DisableColor()
	}
	return &Writer{
		w:      bufio.NewWriter(out),
		marker: marker,
	}
}

// Line schreibt eine Datenzeile
func (w *Writer) Line(text string) error {
	if _, err := w.w.WriteString(text); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Marker schreibt eine synthetische Marker-Zeile
func (w *Writer) Marker(text string) error {
	if _, err := w.w.WriteString(w.marker.Sprint(text)); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush macht alle gepufferten Zeilen sichtbar
func (w *Writer) Flush() error {
	return w.w.Flush()
}
