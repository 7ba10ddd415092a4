// Package trunc verdichtet lange Eingaben auf Kopf, Ende und - im Pattern-Modus -
// eine begrenzte Zahl von Treffern mit Kontext aus der Mitte.
//
// Die Engine arbeitet zeilenweise im Stream: Kopfzeilen und Treffer werden sofort
// ausgegeben und geflusht, nur das Ende (Tail) wartet auf das Eingabeende.
// Jeder ausgelassene Abschnitt wird durch einen Marker mit exakter Zeilenzahl ersetzt:
//
//	line 1
//	...
//	line 10
//	[... 36 lines truncated, match 1 shown ...]
//	line 47
//	...
//	line 53
//	[... 37 lines truncated ...]
//	line 91
//	...
//	line 100
package trunc

import (
	"errors"
	"fmt"

	"trunc/pkg/output"
)

// ErrClosed wird zurückgegeben wenn nach Close noch Zeilen kommen
var ErrClosed = errors.New("engine already closed")

// Line ist eine Eingabezeile mit ihrer 1-basierten Zeilennummer
type Line struct {
	Number int
	Text   string
}

// Sink nimmt die Ausgabe der Engine entgegen
type Sink interface {
	Line(text string) error
	Marker(text string) error
	Flush() error
}

// Stats fasst einen Durchlauf zusammen
type Stats struct {
	Lines        int // gelesene Zeilen
	Emitted      int // ausgegebene Datenzeilen (ohne Marker)
	Blocks       int // zusammenhängende Blöcke ausgegebener Zeilen
	TotalMatches int // alle Treffer in der Mitte
	ShownMatches int // davon angezeigt
}

type phase int

const (
	phaseHead phase = iota // erste First Zeilen, sofort ausgegeben
	phaseHold              // Mitte, aber Kürzung noch nicht sicher
	phaseScan              // Mitte, Kürzung sicher, Treffer werden live gesucht
	phaseDone              // Eingabeende verarbeitet
)

// Engine ist die Zustandsmaschine für einen Durchlauf.
// Nicht für parallele Nutzung gedacht.
type Engine struct {
	cfg  Config
	sink Sink

	phase   phase
	total   int
	tail    *window
	context *window
	emitted Ranges

	shown        int
	totalMatches int
	after        int // ausstehende Kontextzeilen nach dem letzten angezeigten Treffer
	lineCount    int
	dirty        bool // ungeflushte Ausgabe im Sink
}

// New erstellt eine Engine. Die Konfiguration wird vorher validiert.
func New(cfg Config, sink Sink) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:     cfg,
		sink:    sink,
		tail:    newWindow(cfg.Last),
		context: newWindow(cfg.Context),
	}, nil
}

// Push verarbeitet die nächste Eingabezeile (ohne Zeilenende).
// Alles was dabei endgültig entschieden wird, ist danach beim Sink geflusht.
func (e *Engine) Push(text string) error {
	if e.phase == phaseDone {
		return ErrClosed
	}

	e.total++
	l := Line{Number: e.total, Text: text}

	if l.Number <= e.cfg.First {
		if err := e.emitLine(l); err != nil {
			return err
		}
		return e.flush()
	}

	if e.cfg.Pattern != nil {
		if err := e.enterMiddle(); err != nil {
			return err
		}
	}

	e.tail.Push(l)

	if e.phase == phaseScan {
		if err := e.scan(l); err != nil {
			return err
		}
	}
	return e.flush()
}

// enterMiddle entscheidet beim Übergang in die Mitte, ob schon gesucht wird.
// Solange total <= First+Last kann noch alles ins Tail passen; die Zeilen bleiben
// dann nur im Tail-Puffer. Sobald die Kürzung feststeht, werden sie nachträglich
// in Reihenfolge durchsucht.
func (e *Engine) enterMiddle() error {
	if e.phase == phaseScan {
		return nil
	}
	if e.total <= e.cfg.First+e.cfg.Last {
		e.phase = phaseHold
		return nil
	}

	e.phase = phaseScan
	for _, held := range e.tail.Lines() {
		if err := e.scan(held); err != nil {
			return err
		}
	}
	return nil
}

// scan wendet die Treffer-Regeln auf eine Zeile der Mitte an
func (e *Engine) scan(l Line) error {
	if e.after > 0 {
		if !e.emitted.Contains(l.Number) {
			if err := e.emitLine(l); err != nil {
				return err
			}
		}
		e.after--
	}

	if e.cfg.Pattern.Match(l.Text) {
		e.totalMatches++
		if e.shown < e.cfg.MaxMatches {
			if err := e.showMatch(l); err != nil {
				return err
			}
		}
	}

	// Erst nach dem Test puffern: der Kontext-Puffer enthält nur Zeilen vor l
	e.context.Push(l)
	return nil
}

// showMatch gibt Marker, Vor-Kontext und Trefferzeile aus
func (e *Engine) showMatch(l Line) error {
	e.shown++

	start := max(1, l.Number-e.cfg.Context)
	last := e.emitted.Last()
	gap := max(0, start-(last+1))

	// Zwischen Kopf und erster Treffergruppe steht immer ein Marker
	if gap > 0 || e.shown == 1 {
		if err := e.emitMarker(e.matchMarker(gap)); err != nil {
			return err
		}
	}

	for _, c := range e.context.Lines() {
		if c.Number <= last || c.Number >= l.Number || e.emitted.Contains(c.Number) {
			continue
		}
		if err := e.emitLine(c); err != nil {
			return err
		}
	}

	if !e.emitted.Contains(l.Number) {
		if err := e.emitLine(l); err != nil {
			return err
		}
	}

	e.after = e.cfg.Context
	return nil
}

func (e *Engine) matchMarker(gap int) string {
	label := fmt.Sprintf("match %d shown", e.shown)
	if e.shown == e.cfg.MaxMatches {
		label = fmt.Sprintf("match %d/%d shown", e.shown, e.cfg.MaxMatches)
	}
	return fmt.Sprintf("[... %d lines truncated, %s ...]", gap, label)
}

// Close signalisiert das Eingabeende: Abschluss-Marker und Tail werden ausgegeben.
// Weitere Aufrufe sind wirkungslos.
func (e *Engine) Close() error {
	if e.phase == phaseDone {
		return nil
	}
	e.phase = phaseDone

	if e.total == 0 {
		return nil
	}

	if marker := e.summaryMarker(); marker != "" {
		if err := e.emitMarker(marker); err != nil {
			return err
		}
	}

	for _, l := range e.tail.Lines() {
		if l.Number <= e.cfg.First || e.emitted.Contains(l.Number) {
			continue
		}
		if err := e.emitLine(l); err != nil {
			return err
		}
	}
	return e.flush()
}

// summaryMarker liefert den Marker vor dem Tail ("" = kein Marker)
func (e *Engine) summaryMarker() string {
	hidden := e.total - e.cfg.First - e.cfg.Last
	truncated := hidden > 0

	if e.cfg.Pattern == nil {
		if truncated {
			return fmt.Sprintf("[... %d lines truncated ...]", hidden)
		}
		return ""
	}

	if e.shown == 0 {
		if truncated {
			return fmt.Sprintf("[... %d lines truncated, 0 matches found ...]", hidden)
		}
		return ""
	}

	tailStart := max(1, e.total-e.cfg.Last+1)
	gap := max(0, tailStart-(e.emitted.Last()+1))
	remaining := e.totalMatches - e.shown

	switch {
	case remaining > 0:
		return fmt.Sprintf("[... %d lines and %d matches truncated (%d total) ...]", gap, remaining, e.totalMatches)
	case gap > 0:
		return fmt.Sprintf("[... %d lines truncated ...]", gap)
	}
	return ""
}

// Stats gibt den aktuellen Stand des Durchlaufs zurück
func (e *Engine) Stats() Stats {
	return Stats{
		Lines:        e.total,
		Emitted:      e.lineCount,
		Blocks:       len(e.emitted.Spans()),
		TotalMatches: e.totalMatches,
		ShownMatches: e.shown,
	}
}

func (e *Engine) emitLine(l Line) error {
	if err := e.sink.Line(output.TruncateLine(l.Text, e.cfg.Width)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	e.emitted.Add(l.Number)
	e.lineCount++
	e.dirty = true
	return nil
}

func (e *Engine) emitMarker(text string) error {
	if err := e.sink.Marker(text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	e.dirty = true
	return nil
}

func (e *Engine) flush() error {
	if !e.dirty {
		return nil
	}
	e.dirty = false
	if err := e.sink.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
