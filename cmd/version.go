package cmd

import "fmt"

// Version enthält die aktuelle Version von trunc
// Wird beim Kompilieren via ldflags gesetzt
var Version = "0.1.0"

// BuildDate wird beim Kompilieren gesetzt (optional, via ldflags)
var BuildDate string = "unknown"

// GitCommit wird beim Kompilieren gesetzt (optional, via ldflags)
var GitCommit string = "unknown"

// versionText formatiert die Ausgabe von --version
func versionText() string {
	text := fmt.Sprintf("trunc v%s\n", Version)
	if BuildDate != "unknown" {
		text += fmt.Sprintf("Build date: %s\n", BuildDate)
	}
	if GitCommit != "unknown" {
		text += fmt.Sprintf("Git commit: %s\n", GitCommit)
	}
	return text
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(versionText())
}
