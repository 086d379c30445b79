package model

import "strings"

// Scope is an ordered sequence of declarations plus a link to the scope
// searched after it.  Interface and implementation scopes are owned by a
// file; body scopes are owned by the procedure or function declaration
// they belong to.
type Scope struct {
	// Kind is KindInterface, KindImplementation, or KindBody.
	Kind Kind

	// Owner is the entity the scope belongs to, either a *CodeFile or a
	// *Declaration.
	Owner Thing

	// Outer is the enclosing scope, nil at the top of a chain.
	Outer *Scope

	// Decls holds the declarations in the order they were appended.
	Decls []*Declaration

	// cache memoizes folded name lookups.  It is built on first use and
	// dropped whenever a declaration is appended.
	cache map[string]*Declaration
}

func (s *Scope) ThingKind() Kind { return s.Kind }

// AddDecl appends a declaration to the scope and wires its owner.  A name
// already present is appended anyway; lookups always answer with the
// earliest one.
func (s *Scope) AddDecl(d *Declaration) *Declaration {
	d.Owner = s
	s.Decls = append(s.Decls, d)
	s.cache = nil
	return d
}

// Find returns the earliest declaration matching name in this scope alone,
// ignoring case, or nil.
func (s *Scope) Find(name string) *Declaration {
	if s.cache == nil {
		s.cache = make(map[string]*Declaration, len(s.Decls))
		for _, d := range s.Decls {
			folded := strings.ToLower(d.Name)
			if _, ok := s.cache[folded]; !ok {
				s.cache[folded] = d
			}
		}
	}

	return s.cache[strings.ToLower(name)]
}

// Lookup resolves name through the scope chain, innermost first.  When
// withImports is true and the chain is exhausted, the interface scopes of
// the owning file's resolved imports are searched next, in import order
// and without following their imports in turn.
func (s *Scope) Lookup(name string, withImports bool) *Declaration {
	for cur := s; cur != nil; cur = cur.Outer {
		if d := cur.Find(name); d != nil {
			return d
		}
	}

	if !withImports {
		return nil
	}

	file := s.File()
	if file == nil {
		return nil
	}

	for _, imp := range file.Imports {
		if imp.Resolved == nil || imp.Resolved.Intf == nil {
			continue
		}

		if d := imp.Resolved.Intf.Find(name); d != nil {
			return d
		}
	}

	return nil
}

// File returns the source file the scope ultimately belongs to, following
// declaration owners upward for nested body scopes.
func (s *Scope) File() *CodeFile {
	switch owner := s.Owner.(type) {
	case *CodeFile:
		return owner
	case *Declaration:
		return owner.File()
	default:
		return nil
	}
}
