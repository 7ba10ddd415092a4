package filter

import "regexp"

// Matcher prüft Zeilen gegen ein einmal kompiliertes Regex-Pattern.
// Gesucht wird wie bei grep: ein Treffer irgendwo in der Zeile genügt,
// die Zeile muss nicht vollständig passen.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// Compile kompiliert das Pattern. Ein ungültiges Pattern liefert einen ValidationError.
func Compile(pattern string) (*Matcher, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// MustCompile wie Compile, löst bei ungültigem Pattern aber einen Panic aus
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Match meldet ob die Zeile das Pattern enthält
func (m *Matcher) Match(line string) bool {
	return m.re.MatchString(line)
}

// String gibt das ursprüngliche Pattern zurück
func (m *Matcher) String() string {
	return m.pattern
}
