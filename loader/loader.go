// Package loader drives a whole project analysis: it registers the
// discovered source files, analyzes them in dependency order, and
// assembles the resulting code model.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"pasnav/filesys"
	"pasnav/model"
	"pasnav/report"
	"pasnav/syntax"
	"pasnav/walk"
)

// Load analyzes every program and unit under the file system's root and
// returns the assembled project.  Diagnostics never abort a load: the
// project always comes back populated as far as the sources allow.
func Load(fs *filesys.FileSystem) *model.Project {
	ld := &loader{fs: fs, proj: model.NewProject()}

	// Register all analyzable files up front so dependency resolution can
	// hand out file objects before those files have been analyzed.
	for _, src := range fs.Sources() {
		kind := model.FileProgram
		if src.Kind == filesys.KindUnit {
			kind = model.FileUnit
		}

		ld.proj.AddFile(&model.CodeFile{Path: src.Path, Name: src.Stem(), Kind: kind})
	}

	ld.convertFolder(fs.Root(), ld.proj.Root)

	for _, src := range fs.Sources() {
		ld.analyze(ld.proj.FileAt(src.Path))
	}

	ld.proj.Root.Sort()
	return ld.proj
}

// loader carries the state of one load pass.
type loader struct {
	fs   *filesys.FileSystem
	proj *model.Project
}

// analyze runs the full analysis of one file: dependencies first, then
// parse and bind.  The state check makes the function memoizing and is
// what breaks uses cycles: the file leaves the unparsed state before its
// dependencies recurse, so a cycle's re-entrant edge finds the file
// already claimed and returns instead of looping forever.
func (ld *loader) analyze(file *model.CodeFile) {
	if file == nil || !file.StartAnalysis() {
		return
	}
	defer file.FinishAnalysis()

	searchDir := filepath.Dir(file.Path)

	// Dependencies are analyzed post-order, so every import that resolves
	// is fully bound by the time this file's own binding reaches into its
	// interface.  A file on a cycle sees its partner only partially bound;
	// whatever was declared up to that point resolves, the rest misses.
	for _, name := range ld.scanUses(file.Path) {
		imp := &model.Import{Name: name}
		file.Imports = append(file.Imports, imp)

		dep := ld.fs.FindModule(searchDir, name)
		if dep == nil {
			ld.report(file.Path, nil, "cannot resolve referenced unit '%s'", name)
			continue
		}

		depFile := ld.proj.FileAt(dep.Path)
		ld.analyze(depFile)
		imp.Resolved = depFile
	}

	root := ld.parse(file)
	walk.WalkFile(file, root, ld.fs.Config().ResolveAcrossUnits)
}

// scanUses pre-scans a file's uses clause.  An unreadable file yields no
// dependencies; the parse step reports the condition.
func (ld *loader) scanUses(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	return syntax.ScanUses(bufio.NewReader(f))
}

// parse parses the file, converts a parse failure into a diagnostic, and
// wraps the include directives the lexer surfaced.  The returned tree may
// be nil or hold only a prefix of the file; the binder copes with both.
func (ld *loader) parse(file *model.CodeFile) *syntax.Node {
	f, err := os.Open(file.Path)
	if err != nil {
		report.ReportStdError(ld.fs.Rel(file.Path), err)
		ld.proj.Report(file.Path, 0, 0, err.Error())
		return nil
	}
	defer f.Close()

	p := syntax.NewParser(bufio.NewReader(f))
	root, perr := p.Parse()
	if perr != nil {
		ld.report(file.Path, perr.Span, "%s", perr.Message)
	}

	for _, dir := range p.Includes() {
		file.Includes = append(file.Includes, ld.wrapInclude(file, dir))
	}

	file.Sloc = p.Sloc()
	ld.proj.Sloc += p.Sloc()

	return root
}

// wrapInclude resolves an include directive's target against the include
// search rules.  An unresolved target keeps its raw spelling and causes
// no diagnostic: includes are navigation hints, never spliced.
func (ld *loader) wrapInclude(file *model.CodeFile, dir syntax.IncludeDirective) *model.IncludeRef {
	ref := &model.IncludeRef{
		Target: dir.Target,
		Loc: model.Loc{
			Path: file.Path,
			Row:  dir.Span.StartLine,
			Col:  dir.Span.StartCol,
		},
	}

	if inc := ld.fs.FindInclude(filepath.Dir(file.Path), dir.Target); inc != nil {
		ref.Path = inc.Path
	}

	return ref
}

// report records a diagnostic on the project and mirrors it to the
// console reporter.  A nil span yields a position free diagnostic.
func (ld *loader) report(path string, span *report.TextSpan, msg string, args ...interface{}) {
	report.ReportSourceError(path, ld.fs.Rel(path), span, msg, args...)

	row, col := 0, 0
	if span != nil {
		row, col = span.StartLine, span.StartCol
	}

	ld.proj.Report(path, row, col, fmt.Sprintf(msg, args...))
}

// convertFolder mirrors the on-disk folder hierarchy into the model,
// attaching each registered file to its directory entry.  Include and
// unclassifiable files stay out of the model tree; include directives are
// surfaced per file instead.
func (ld *loader) convertFolder(src *filesys.Folder, dst *model.CodeFolder) {
	for _, sub := range src.Subs {
		ld.convertFolder(sub, dst.Sub(sub.Name))
	}

	for _, f := range src.Files {
		if file := ld.proj.FileAt(f.Path); file != nil {
			dst.AddFile(file)
		}
	}
}
