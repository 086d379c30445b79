package cmd

import (
	"fmt"
	"os"

	"pasnav/report"

	"github.com/ComedicChimera/olive"
)

// PasnavVersion is the version string displayed by the version command.
const PasnavVersion = "pasnav 0.1.0"

// Execute is the main entry point for the `pasnav` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("pasnav", "pasnav analyzes and navigates Pascal source trees", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	scanCmd := cli.AddSubcommand("scan", "analyze a source tree and summarize it", true)
	scanCmd.AddPrimaryArg("root-path", "the path to the source tree root", true)

	defCmd := cli.AddSubcommand("def", "show the declaration referenced at a position", true)
	defCmd.AddPrimaryArg("root-path", "the path to the source tree root", true)
	defCmd.AddStringArg("pos", "p", "the queried position as path:row:col", true)

	refsCmd := cli.AddSubcommand("refs", "list all references to the declaration at a position", true)
	refsCmd.AddPrimaryArg("root-path", "the path to the source tree root", true)
	refsCmd.AddStringArg("pos", "p", "the queried position as path:row:col", true)

	watchCmd := cli.AddSubcommand("watch", "reload the analysis whenever sources change", true)
	watchCmd.AddPrimaryArg("root-path", "the path to the source tree root", true)

	cli.AddSubcommand("version", "print the pasnav version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	initLogLevel(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "scan":
		execScanCommand(subResult)
	case "def":
		execDefCommand(subResult)
	case "refs":
		execRefsCommand(subResult)
	case "watch":
		execWatchCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Pasnav Version", PasnavVersion)
	}
}

// execScanCommand loads the project once and summarizes its health.
func execScanCommand(result *olive.ArgParseResult) {
	rootPath, _ := result.PrimaryArg()

	d := NewDriver(rootPath)
	proj := d.Load()

	report.DisplayInfoMessage("scan", fmt.Sprintf(
		"%d files, %d symbols, %d sloc, %d diagnostics",
		proj.FileCount(), proj.SymCount(), proj.Sloc, len(proj.Diagnostics),
	))
}

// execDefCommand answers a declaration-at-position query.
func execDefCommand(result *olive.ArgParseResult) {
	rootPath, _ := result.PrimaryArg()
	file, row, col := parsePos(result.Arguments["pos"].(string))

	d := NewDriver(rootPath)
	d.Load()

	decl := d.DeclAt(file, row, col)
	if decl == nil {
		report.DisplayInfoMessage("declaration", "no resolved name at the given position")
		return
	}

	report.DisplayInfoMessage("declaration", formatDecl(d, decl))
}

// execRefsCommand lists every recorded reference to the declaration
// referenced at a position.
func execRefsCommand(result *olive.ArgParseResult) {
	rootPath, _ := result.PrimaryArg()
	file, row, col := parsePos(result.Arguments["pos"].(string))

	d := NewDriver(rootPath)
	d.Load()

	decl := d.DeclAt(file, row, col)
	if decl == nil {
		report.DisplayInfoMessage("references", "no resolved name at the given position")
		return
	}

	report.DisplayInfoMessage("references", fmt.Sprintf(
		"%s is referenced %d times; declared %s",
		decl.Name, decl.RefCount(), formatDecl(d, decl),
	))

	for _, path := range decl.RefFiles() {
		for _, sym := range decl.RefsIn(path) {
			fmt.Printf("  %s:%d:%d\n", d.Rel(path), sym.Loc.Row, sym.Loc.Col)
		}
	}
}
