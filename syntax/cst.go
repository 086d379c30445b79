package syntax

import "pasnav/report"

// The concrete syntax tree is a generic labeled tree: every node carries a
// rule or token tag, the token that introduced it, and an ordered list of
// children.  Leaves are token nodes; interior nodes are rule nodes.  Consumers
// dispatch purely on the tag, so adding a grammar construct means adding a
// rule kind and emitting it from the parser.

// ruleBase offsets the rule kinds away from the token kinds so both can share
// one tag space.
const ruleBase = 512

// Enumeration of rule kinds.
const (
	R_PROGRAM = ruleBase + iota
	R_UNIT
	R_USES_CLAUSE
	R_UNIT_REF

	R_INTERFACE_PART
	R_IMPLEMENTATION_PART
	R_BLOCK

	R_LABEL_PART
	R_CONST_PART
	R_CONST_DECL
	R_TYPE_PART
	R_TYPE_DECL
	R_VAR_PART
	R_VAR_DECL
	R_IDENT_LIST

	R_TYPE_IDENT
	R_SUBRANGE_TYPE
	R_ENUM_TYPE
	R_STRING_TYPE
	R_POINTER_TYPE
	R_ARRAY_TYPE
	R_RECORD_TYPE
	R_SET_TYPE
	R_FILE_TYPE
	R_CLASS_TYPE

	R_PROC_DECL
	R_FUNC_DECL
	R_PROC_HEADING
	R_FUNC_HEADING
	R_FORMAL_PARAMS
	R_PARAM_SECTION

	R_COMPOUND
	R_ASSIGN_OR_CALL
	R_IF
	R_WHILE
	R_REPEAT
	R_FOR
	R_CASE
	R_CASE_LIMB
	R_WITH
	R_GOTO

	R_EXPR
	R_SIMPLE_EXPR
	R_TERM
	R_NOT_FACTOR
	R_SET_CONSTRUCTOR
	R_DESIGNATOR
	R_FIELD
	R_INDEX
	R_ACTUALS
)

// Node is a single node of the concrete syntax tree.
type Node struct {
	// The rule or token kind tagging this node.
	Kind int

	// The token this node was built from.  For leaves this is the token
	// itself; for rule nodes it is the first token of the production.
	Tok *Token

	// The ordered child nodes.  Always empty for leaves.
	Children []*Node
}

// newRuleNode creates a new rule node introduced by the given token.
func newRuleNode(kind int, tok *Token) *Node {
	return &Node{Kind: kind, Tok: tok}
}

// newLeaf creates a new leaf node wrapping the given token.
func newLeaf(tok *Token) *Node {
	return &Node{Kind: tok.Kind, Tok: tok}
}

// IsRule returns whether the node is a rule node as opposed to a token leaf.
func (n *Node) IsRule() bool {
	return n.Kind >= ruleBase
}

// Span returns the text span covering the node: for leaves the token span,
// for rule nodes the span from the first to the last descendant token.
func (n *Node) Span() *report.TextSpan {
	if len(n.Children) == 0 {
		return n.Tok.Span
	}

	last := n.Children[len(n.Children)-1].Span()
	if n.Tok != nil {
		return report.NewSpanOver(n.Tok.Span, last)
	}

	return report.NewSpanOver(n.Children[0].Span(), last)
}

// addChild appends a child to the node and returns the node.
func (n *Node) addChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Child returns the first direct child with the given kind, or nil.
func (n *Node) Child(kind int) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}

	return nil
}

// ChildrenOf returns all direct children with the given kind.
func (n *Node) ChildrenOf(kind int) []*Node {
	var nodes []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			nodes = append(nodes, child)
		}
	}

	return nodes
}

// IdentTok returns the token of the first direct identifier leaf, or nil.
func (n *Node) IdentTok() *Token {
	if leaf := n.Child(TOK_IDENT); leaf != nil {
		return leaf.Tok
	}

	return nil
}

// LastIdentTok returns the token of the last direct identifier leaf, or nil.
func (n *Node) LastIdentTok() *Token {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i].Kind == TOK_IDENT {
			return n.Children[i].Tok
		}
	}

	return nil
}
