package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// The console styles used for the different kinds of messages.
var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// The labels used to prefix source messages.
const (
	msgLabelError   = "error"
	msgLabelWarning = "warning"
)

// displayICE displays an internal error message.
func displayICE(message string) {
	ErrorStyleBG.Print(" internal error ")
	ErrorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on the issue tracker.\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print(" fatal ")
	ErrorColorFG.Println(" " + message)
}

// displaySourceMessage displays a source error or warning.  The label is the
// string to prefix the message with: eg. if we want to display an error, the
// label is "error".
func displaySourceMessage(label, absPath, reprPath string, span *TextSpan, message string) {
	color := ErrorColorFG
	if label == msgLabelWarning {
		color = WarnColorFG
	}

	if span == nil {
		fmt.Printf("%s: ", reprPath)
		color.Print(label)
		fmt.Printf(": %s\n\n", message)
	} else {
		fmt.Printf("%s:%d:%d: ", reprPath, span.StartLine, span.StartCol)
		color.Print(label)
		fmt.Printf(": %s\n\n", message)
		displaySourceText(absPath, span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Printf("%s: ", reprPath)
	ErrorColorFG.Print(msgLabelError)
	fmt.Printf(": %s\n\n", err)
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(absPath string, span *TextSpan) {
	// Open the file so we can read the desired source text.
	file, err := os.Open(absPath)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.  Tabs are
	// replaced by single spaces to keep the caret columns aligned with the
	// lexer's column accounting.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 1; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", " "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and separator bar.
		fmt.Printf(lineNumFmtStr, i+span.StartLine)

		// Print the source text with the leading indent trimmed off.
		fmt.Println(line[minIndent:])

		// Print the bar used for the line's caret underlining.
		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// The number of columns to skip before underlining begins.  For any
		// line which is not the starting line this is always zero since the
		// underlining continues from the previous line.
		var caretPrefixCount int
		if i == 0 {
			caretPrefixCount = span.StartCol - 1 - minIndent
		}

		// The number of characters at the end of the source line that should
		// not be underlined.  Non-zero only on the last line: underlining on
		// earlier lines spans to the end of the line.
		var caretSuffixCount int
		if i == len(lines)-1 {
			caretSuffixCount = len(line) - (span.EndCol - 1)
		}

		caretCount := len(line) - caretSuffixCount - caretPrefixCount - minIndent
		if caretPrefixCount < 0 || caretCount < 0 {
			fmt.Println()
			continue
		}

		fmt.Print(strings.Repeat(" ", caretPrefixCount))
		fmt.Println(strings.Repeat("^", caretCount))
	}

	fmt.Println()
}
