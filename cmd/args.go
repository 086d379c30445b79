package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"pasnav/model"
	"pasnav/report"
)

// initLogLevel initializes the global reporter from the log level
// selector argument.
func initLogLevel(selector string) {
	switch selector {
	case "silent":
		report.InitReporter(report.LogLevelSilent)
	case "error":
		report.InitReporter(report.LogLevelError)
	case "warn":
		report.InitReporter(report.LogLevelWarn)
	default:
		report.InitReporter(report.LogLevelVerbose)
	}
}

// parsePos splits a path:row:col position argument.  The path is split
// off from the right so paths containing colons keep working.
func parsePos(arg string) (string, int, int) {
	parts := strings.Split(arg, ":")
	if len(parts) < 3 {
		report.ReportFatal("position must be of the form path:row:col")
	}

	row, rowErr := strconv.Atoi(parts[len(parts)-2])
	col, colErr := strconv.Atoi(parts[len(parts)-1])
	if rowErr != nil || colErr != nil || row < 1 || col < 1 {
		report.ReportFatal("position must be of the form path:row:col")
	}

	return strings.Join(parts[:len(parts)-2], ":"), row, col
}

// formatDecl renders a declaration for terminal display.
func formatDecl(d *Driver, decl *model.Declaration) string {
	return fmt.Sprintf("%s %s at %s:%d:%d",
		decl.Kind, decl.Name, d.Rel(decl.Loc.Path), decl.Loc.Row, decl.Loc.Col)
}
