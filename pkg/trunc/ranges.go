package trunc

import "sort"

// Range ist ein geschlossenes Intervall von Zeilennummern [Start, End]
type Range struct {
	Start int
	End   int
}

// Ranges merkt sich welche Zeilennummern bereits ausgegeben wurden.
// Die Intervalle sind aufsteigend sortiert, disjunkt und nie benachbart
// (benachbarte Intervalle werden sofort zusammengelegt).
type Ranges struct {
	spans []Range
}

// Add markiert eine Zeilennummer als ausgegeben
func (r *Ranges) Add(n int) {
	// Erstes Intervall das n enthält, direkt an n grenzt oder dahinter liegt
	i := sort.Search(len(r.spans), func(i int) bool { return r.spans[i].End >= n-1 })

	if i == len(r.spans) || r.spans[i].Start > n+1 {
		r.spans = append(r.spans, Range{})
		copy(r.spans[i+1:], r.spans[i:])
		r.spans[i] = Range{Start: n, End: n}
		return
	}

	s := &r.spans[i]
	switch {
	case n == s.End+1:
		s.End = n
		// Lücke zum Nachfolger geschlossen?
		if i+1 < len(r.spans) && r.spans[i+1].Start == n+1 {
			s.End = r.spans[i+1].End
			r.spans = append(r.spans[:i+1], r.spans[i+2:]...)
		}
	case n == s.Start-1:
		s.Start = n
	}
}

// Contains prüft ob n bereits ausgegeben wurde
func (r *Ranges) Contains(n int) bool {
	i := sort.Search(len(r.spans), func(i int) bool { return r.spans[i].End >= n })
	return i < len(r.spans) && r.spans[i].Start <= n
}

// Last gibt die höchste ausgegebene Zeilennummer zurück (0 wenn noch nichts ausgegeben)
func (r *Ranges) Last() int {
	if len(r.spans) == 0 {
		return 0
	}
	return r.spans[len(r.spans)-1].End
}

// Spans gibt eine Kopie der Intervalle zurück
func (r *Ranges) Spans() []Range {
	out := make([]Range, len(r.spans))
	copy(out, r.spans)
	return out
}
