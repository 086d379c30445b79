// Package filesys enumerates a project source tree.  It classifies each
// candidate file by its heading keyword, keeps the directory structure,
// and resolves unit and include references to files.  Nothing here parses
// beyond the first token; full analysis belongs to the loader.
package filesys

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pasnav/syntax"
)

// FileKind classifies an enumerated file.
type FileKind int

const (
	// KindUnknown marks files that could not be read or start with no
	// recognizable heading token.
	KindUnknown FileKind = iota

	// KindProgram marks files opening with the `program` keyword.
	KindProgram

	// KindUnit marks files opening with the `unit` keyword.
	KindUnit

	// KindInclude marks readable source files with neither heading; they
	// are only ever targets of include directives.
	KindInclude
)

// SourceFile is one enumerated source file.
type SourceFile struct {
	// Path is the absolute path of the file.
	Path string

	// Kind is the heading classification.
	Kind FileKind
}

// Stem returns the lowercased base name without extension, the key unit
// resolution matches against.
func (f *SourceFile) Stem() string {
	base := filepath.Base(f.Path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Folder is one directory of the enumerated tree.
type Folder struct {
	// Name is the directory name, empty for the root.
	Name string

	// Parent is the containing folder, nil for the root.
	Parent *Folder

	// Subs holds subfolders that contain at least one source file.
	Subs []*Folder

	// Files holds the source files directly inside the folder.
	Files []*SourceFile
}

func (f *Folder) sub(name string) *Folder {
	for _, s := range f.Subs {
		if s.Name == name {
			return s
		}
	}

	s := &Folder{Name: name, Parent: f}
	f.Subs = append(f.Subs, s)
	return s
}

// FileSystem is the enumerated source tree of one project root.
type FileSystem struct {
	rootPath string
	cfg      Config
	root     *Folder

	files   map[string]*SourceFile
	byDir   map[string][]*SourceFile
	ordered []*SourceFile
}

// Load enumerates the tree under rootPath with the given configuration.
// Excluded paths are skipped entirely; unreadable files are kept with an
// unknown classification so the tree still shows them.
func Load(rootPath string, cfg Config) (*FileSystem, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	fs := &FileSystem{
		rootPath: absRoot,
		cfg:      cfg,
		root:     &Folder{},
		files:    make(map[string]*SourceFile),
		byDir:    make(map[string][]*SourceFile),
	}

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		rel, rerr := filepath.Rel(absRoot, path)
		if rerr != nil {
			return nil
		}

		if info.IsDir() {
			if path != absRoot && fs.cfg.Excluded(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !fs.cfg.SourceExt(filepath.Ext(path)) || fs.cfg.Excluded(rel) {
			return nil
		}

		sf := &SourceFile{Path: path, Kind: classify(path)}
		fs.files[path] = sf
		fs.byDir[filepath.Dir(path)] = append(fs.byDir[filepath.Dir(path)], sf)
		fs.folderFor(rel).Files = append(fs.folderFor(rel).Files, sf)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, group := range fs.byDir {
		sortByBase(group)
	}

	fs.ordered = make([]*SourceFile, 0, len(fs.files))
	for _, sf := range fs.files {
		fs.ordered = append(fs.ordered, sf)
	}
	sort.Slice(fs.ordered, func(i, j int) bool {
		return fs.ordered[i].Path < fs.ordered[j].Path
	})

	return fs, nil
}

// folderFor returns the folder node for the file's root relative path,
// creating the intermediate folders.
func (fs *FileSystem) folderFor(relFile string) *Folder {
	cur := fs.root
	dir := filepath.Dir(relFile)
	if dir == "." {
		return cur
	}

	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		cur = cur.sub(part)
	}

	return cur
}

// classify reads the first token of the file to decide what it is.
func classify(path string) FileKind {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown
	}
	defer f.Close()

	l := syntax.NewLexer(bufio.NewReader(f))
	tok, err := l.NextToken()
	if err != nil {
		return KindUnknown
	}

	switch tok.Kind {
	case syntax.TOK_PROGRAM:
		return KindProgram
	case syntax.TOK_UNIT:
		return KindUnit
	default:
		return KindInclude
	}
}

func sortByBase(files []*SourceFile) {
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i].Path)) < strings.ToLower(filepath.Base(files[j].Path))
	})
}

// RootPath returns the absolute project root.
func (fs *FileSystem) RootPath() string { return fs.rootPath }

// Root returns the root folder of the enumerated tree.
func (fs *FileSystem) Root() *Folder { return fs.root }

// Config returns the configuration the tree was enumerated with.
func (fs *FileSystem) Config() Config { return fs.cfg }

// Rel returns the root relative slash separated form of an absolute path,
// for display.
func (fs *FileSystem) Rel(path string) string {
	rel, err := filepath.Rel(fs.rootPath, path)
	if err != nil {
		return path
	}

	return filepath.ToSlash(rel)
}

// FindFile returns the enumerated file with the given absolute path, or
// nil.
func (fs *FileSystem) FindFile(path string) *SourceFile {
	return fs.files[path]
}

// Sources returns every program and unit file in deterministic path
// order.
func (fs *FileSystem) Sources() []*SourceFile {
	var sources []*SourceFile
	for _, sf := range fs.ordered {
		if sf.Kind == KindProgram || sf.Kind == KindUnit {
			sources = append(sources, sf)
		}
	}

	return sources
}

// FindModule resolves a referenced unit name to its defining file: a unit
// whose stem matches the lowercased name.  The directory of the referring
// file is searched first, then the whole project in path order.
func (fs *FileSystem) FindModule(searchDir, name string) *SourceFile {
	name = strings.ToLower(name)

	for _, sf := range fs.byDir[searchDir] {
		if sf.Kind == KindUnit && sf.Stem() == name {
			return sf
		}
	}

	for _, sf := range fs.ordered {
		if sf.Kind == KindUnit && sf.Stem() == name {
			return sf
		}
	}

	return nil
}

// FindInclude resolves an include directive target.  The target's base
// name is matched case insensitively against enumerated files, first in
// the including file's directory, then in the configured include
// directories, then across the project.
func (fs *FileSystem) FindInclude(searchDir, target string) *SourceFile {
	base := strings.ToLower(filepath.Base(filepath.FromSlash(target)))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	match := func(sf *SourceFile) bool {
		fileBase := strings.ToLower(filepath.Base(sf.Path))
		if fileBase == base {
			return true
		}

		return strings.TrimSuffix(fileBase, filepath.Ext(fileBase)) == stem
	}

	for _, sf := range fs.byDir[searchDir] {
		if match(sf) {
			return sf
		}
	}

	for _, dir := range fs.cfg.IncludeDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(fs.rootPath, dir)
		}

		for _, sf := range fs.byDir[dir] {
			if match(sf) {
				return sf
			}
		}
	}

	for _, sf := range fs.ordered {
		if match(sf) {
			return sf
		}
	}

	return nil
}
