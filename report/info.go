package report

import (
	"fmt"
	"time"
)

// NOTE: All the functions below are "aesthetic" reporting functions that only
// run at the verbose log level.  They provide additional information about the
// analysis process so as to make the tool friendlier to use interactively.

// ReportLoadHeader reports the pre-load header: the root being analyzed and
// the number of candidate source files.
func ReportLoadHeader(rootPath string, fileCount int) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		InfoStyleBG.Print(" pasnav ")
		fmt.Printf(" analyzing %d source files under %s\n\n", fileCount, rootPath)
	}
}

// ReportLoadFinished reports the concluding message of a project load: counts
// of files, recorded symbols, and source lines, along with the elapsed time.
func ReportLoadFinished(fileCount, symCount, sloc int, elapsed time.Duration) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		if rep.isErr {
			WarnStyleBG.Print(" done ")
			WarnColorFG.Printf(" %d files, %d symbols, %d sloc in %s (with errors)\n", fileCount, symCount, sloc, elapsed.Round(time.Millisecond))
		} else {
			SuccessStyleBG.Print(" done ")
			SuccessColorFG.Printf(" %d files, %d symbols, %d sloc in %s\n", fileCount, symCount, sloc, elapsed.Round(time.Millisecond))
		}
	}
}

// DisplayInfoMessage displays a tagged informational message regardless of
// log level.  It is used for direct responses to user commands: query
// results, version output, etc.
func DisplayInfoMessage(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	InfoStyleBG.Print(" " + tag + " ")
	fmt.Println(" " + msg)
}
