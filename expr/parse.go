package expr

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// ParseJava parses Java source code and returns a tree-sitter tree. The
// caller owns the tree and must Close it.
func ParseJava(source []byte) *tree_sitter.Tree {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_java.Language()))
	return parser.Parse(source, nil)
}

// statementSource turns a single expression into a statement the Java
// grammar accepts at the top level.
func statementSource(expression string) []byte {
	trimmed := strings.TrimSpace(expression)
	if !strings.HasSuffix(trimmed, ";") {
		trimmed += ";"
	}
	return []byte(trimmed)
}

// IterateChildren iterates over all children of a node and calls fn for each
func IterateChildren(node *tree_sitter.Node, fn func(child *tree_sitter.Node)) {
	cursor := node.Walk()
	defer cursor.Close()
	children := node.Children(cursor)
	for _, child := range children {
		fn(&child)
	}
}

// findError returns the first ERROR or MISSING node below node, or nil.
func findError(node *tree_sitter.Node) *tree_sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	var found *tree_sitter.Node
	IterateChildren(node, func(child *tree_sitter.Node) {
		if found == nil {
			found = findError(child)
		}
	})
	return found
}

// expressionOf returns the single expression held by a parsed program.
func expressionOf(root *tree_sitter.Node, source []byte) (*tree_sitter.Node, error) {
	if bad := findError(root); bad != nil {
		pos := bad.StartPosition()
		if bad.IsMissing() {
			return nil, fmt.Errorf("%w: missing %s at column %d", ErrSyntax, bad.Kind(), pos.Column+1)
		}
		return nil, fmt.Errorf("%w: unexpected %q at column %d", ErrSyntax, bad.Utf8Text(source), pos.Column+1)
	}

	var statements []*tree_sitter.Node
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		switch child.Kind() {
		// ignored
		case "line_comment":
		case "block_comment":
		default:
			statements = append(statements, child)
		}
	}
	if len(statements) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	if len(statements) > 1 {
		return nil, fmt.Errorf("%w: expected a single expression, got %d statements", ErrSyntax, len(statements))
	}
	statement := statements[0]
	if statement.Kind() != "expression_statement" || statement.NamedChildCount() == 0 {
		return nil, fmt.Errorf("%w: expected an expression, got %s", ErrSyntax, statement.Kind())
	}
	return statement.NamedChild(0), nil
}
