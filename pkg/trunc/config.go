package trunc

import "fmt"

// Standardwerte der Konfiguration
const (
	DefaultFirst      = 10
	DefaultLast       = 10
	DefaultMaxMatches = 5
	DefaultContext    = 3
	DefaultWidth      = 100
)

// Matcher entscheidet ob eine Zeile ein Treffer ist
type Matcher interface {
	Match(line string) bool
}

// Config enthält alle Werte für einen Durchlauf. Wird einmal erstellt und
// danach nicht mehr verändert.
type Config struct {
	First      int     // Zeilen vom Anfang
	Last       int     // Zeilen vom Ende
	MaxMatches int     // Maximal angezeigte Treffer
	Context    int     // Kontextzeilen vor und nach jedem Treffer
	Width      int     // Zeichen am Anfang/Ende langer Zeilen (0 = keine Kürzung)
	Pattern    Matcher // nil = kein Pattern-Modus
}

// DefaultConfig liefert die Standard-Konfiguration ohne Pattern
func DefaultConfig() Config {
	return Config{
		First:      DefaultFirst,
		Last:       DefaultLast,
		MaxMatches: DefaultMaxMatches,
		Context:    DefaultContext,
		Width:      DefaultWidth,
	}
}

// ConfigError beschreibt einen ungültigen Konfigurationswert
type ConfigError struct {
	Field   string
	Value   int
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Message)
}

// Validate prüft die Konfiguration, bevor Eingabe gelesen wird
func (c Config) Validate() error {
	nonNegative := []struct {
		field string
		value int
	}{
		{"first", c.First},
		{"last", c.Last},
		{"context", c.Context},
		{"width", c.Width},
	}
	for _, v := range nonNegative {
		if v.value < 0 {
			return ConfigError{Field: v.field, Value: v.value, Message: "must not be negative"}
		}
	}
	if c.MaxMatches < 1 {
		return ConfigError{Field: "matches", Value: c.MaxMatches, Message: "must be at least 1"}
	}
	return nil
}
