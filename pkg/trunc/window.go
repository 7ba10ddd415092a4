package trunc

// maxPrealloc begrenzt die Vorab-Allokation bei sehr großen Fenstern (-l 1000000)
const maxPrealloc = 1024

// window ist ein Ringpuffer der letzten capacity Zeilen.
// Bei vollem Puffer wird die älteste Zeile verdrängt.
type window struct {
	capacity int
	lines    []Line
	start    int // Index der ältesten Zeile sobald der Puffer voll ist
}

func newWindow(capacity int) *window {
	return &window{
		capacity: capacity,
		lines:    make([]Line, 0, min(capacity, maxPrealloc)),
	}
}

// Push fügt eine Zeile hinzu
func (w *window) Push(l Line) {
	if w.capacity == 0 {
		return
	}
	if len(w.lines) < w.capacity {
		w.lines = append(w.lines, l)
		return
	}
	w.lines[w.start] = l
	w.start = (w.start + 1) % w.capacity
}

// Lines gibt die gepufferten Zeilen in Ankunftsreihenfolge zurück
func (w *window) Lines() []Line {
	out := make([]Line, 0, len(w.lines))
	out = append(out, w.lines[w.start:]...)
	out = append(out, w.lines[:w.start]...)
	return out
}
