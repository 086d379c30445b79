package model

// Symbol is one resolved occurrence of a name in a source file.  Its width
// in columns equals the width of the declared name.
type Symbol struct {
	// Decl is the declaration the occurrence resolved to.
	Decl *Declaration

	// Loc is where the occurrence appears.
	Loc Loc
}

// Len returns the column width of the occurrence.
func (s *Symbol) Len() int { return s.Decl.Len() }
