// Package crash bietet globales Panic-Recovery für trunc.
// Der Report geht nach stderr; stdout bleibt der Datenausgabe vorbehalten.
package crash

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ExitCode ist der Exit-Code nach einem Panic (1 ist normalen Fehlern vorbehalten)
const ExitCode = 2

// CrashInfo enthält Informationen über einen Crash
type CrashInfo struct {
	Time       time.Time
	Error      interface{}
	StackTrace string
	GoVersion  string
	OS         string
	Arch       string
	MemStats   runtime.MemStats
}

// output ist das Ziel für Crash-Reports
var output io.Writer = os.Stderr

// exit beendet den Prozess (in Tests ersetzbar)
var exit = os.Exit

// Handler ist der globale Crash-Handler, der als defer in main() verwendet wird
func Handler() {
	if r := recover(); r != nil {
		handleCrash(r)
	}
}

// handleCrash verarbeitet einen abgefangenen Panic
func handleCrash(r interface{}) {
	info := collect(r)
	printCrashMessage(output, info)
	exit(ExitCode)
}

// collect sammelt Laufzeitinformationen zum Panic
func collect(r interface{}) CrashInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return CrashInfo{
		Time:       time.Now(),
		Error:      r,
		StackTrace: string(debug.Stack()),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		MemStats:   memStats,
	}
}

// FormatReport formatiert einen Crash-Report
func FormatReport(info CrashInfo) string {
	var sb strings.Builder

	sb.WriteString("================================================================================\n")
	sb.WriteString(fmt.Sprintf("CRASH REPORT - %s\n", info.Time.Format("2006-01-02 15:04:05")))
	sb.WriteString("================================================================================\n")
	sb.WriteString(fmt.Sprintf("Error: %v\n", info.Error))
	sb.WriteString(fmt.Sprintf("Go Version: %s\n", info.GoVersion))
	sb.WriteString(fmt.Sprintf("OS/Arch: %s/%s\n", info.OS, info.Arch))
	sb.WriteString(fmt.Sprintf("HeapAlloc: %s\n", formatBytes(info.MemStats.HeapAlloc)))
	sb.WriteString("\n--- Stack Trace ---\n")
	sb.WriteString(info.StackTrace)
	sb.WriteString("================================================================================\n")

	return sb.String()
}

// formatBytes formatiert Bytes in lesbare Form
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// printCrashMessage gibt Kurzmeldung und Report aus
func printCrashMessage(w io.Writer, info CrashInfo) {
	color.New(color.FgRed, color.Bold).Fprintf(w, "trunc crashed unexpectedly: %v\n", info.Error)
	fmt.Fprint(w, FormatReport(info))
	fmt.Fprintln(w, "Output above this point may be incomplete.")
}
