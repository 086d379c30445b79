package model

import (
	"sort"
	"strings"
)

// CodeFolder is one directory of the project tree.
type CodeFolder struct {
	// Name is the directory name, empty for the root folder.
	Name string

	// Parent is the containing folder, nil for the root.
	Parent *CodeFolder

	// Subs holds the subfolders.
	Subs []*CodeFolder

	// Files holds the source files directly inside the folder.
	Files []*CodeFile
}

func (f *CodeFolder) ThingKind() Kind { return KindFolder }

// Sub returns the subfolder with the given name, creating it if needed.
func (f *CodeFolder) Sub(name string) *CodeFolder {
	for _, sub := range f.Subs {
		if sub.Name == name {
			return sub
		}
	}

	sub := &CodeFolder{Name: name, Parent: f}
	f.Subs = append(f.Subs, sub)
	return sub
}

// AddFile attaches a file to the folder.
func (f *CodeFolder) AddFile(file *CodeFile) {
	file.Folder = f
	f.Files = append(f.Files, file)
}

// Sort orders the whole folder tree for display: subfolders before files,
// each alphabetically ignoring case.
func (f *CodeFolder) Sort() {
	sort.Slice(f.Subs, func(i, j int) bool {
		return strings.ToLower(f.Subs[i].Name) < strings.ToLower(f.Subs[j].Name)
	})
	sort.Slice(f.Files, func(i, j int) bool {
		return strings.ToLower(f.Files[i].BaseName()) < strings.ToLower(f.Files[j].BaseName())
	})

	for _, sub := range f.Subs {
		sub.Sort()
	}
}

// Walk visits every file under the folder in sorted order.
func (f *CodeFolder) Walk(visit func(*CodeFile)) {
	for _, sub := range f.Subs {
		sub.Walk(visit)
	}

	for _, file := range f.Files {
		visit(file)
	}
}
