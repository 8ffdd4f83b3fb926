// Package expr evaluates Java-syntax expressions over fractions and
// rectangles, e.g. "Rectangle(2, 4) + Rectangle(3, 6)" or
// "new Fraction(1, 2) * 2".
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/heshanpadmasiri/valueops/fraction"
	"github.com/heshanpadmasiri/valueops/order"
	"github.com/heshanpadmasiri/valueops/rectangle"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrUnsupported = errors.New("unsupported")
)

// EvalContext holds settings and collected errors for a batch of evaluations
type EvalContext struct {
	Tolerance      rectangle.Tolerance
	FloatPrecision int
	StrictMode     bool        // If true, the first failing expression stops the batch
	Errors         []EvalError // Failures collected in non-strict mode
	source         []byte
}

// EvalError represents a failed evaluation
type EvalError struct {
	Line     int    // 1-based line in the batch, 0 for single expressions
	Source   string // The expression text that failed
	SExpr    string // The S-expression of the failing node
	NodeKind string // Type of node (for debugging)
	Err      error
}

func (e *EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// NewEvalContext creates an EvalContext with the default rectangle tolerance
func NewEvalContext(strictMode bool) *EvalContext {
	return &EvalContext{
		Tolerance:      rectangle.DefaultTolerance,
		FloatPrecision: -1,
		StrictMode:     strictMode,
		Errors:         []EvalError{},
	}
}

// Eval parses and evaluates a single expression. Errors are *EvalError.
func (ctx *EvalContext) Eval(expression string) (Value, error) {
	source := statementSource(expression)
	tree := ParseJava(source)
	defer tree.Close()

	ctx.source = source
	defer func() { ctx.source = nil }()

	root := tree.RootNode()
	node, err := expressionOf(root, source)
	if err != nil {
		return nil, &EvalError{
			Source:   strings.TrimSpace(expression),
			SExpr:    root.ToSexp(),
			NodeKind: root.Kind(),
			Err:      err,
		}
	}
	return ctx.evalExpression(node)
}

func (ctx *EvalContext) fail(node *tree_sitter.Node, err error) error {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvalError{
		Source:   node.Utf8Text(ctx.source),
		SExpr:    node.ToSexp(),
		NodeKind: node.Kind(),
		Err:      err,
	}
}

func (ctx *EvalContext) evalExpression(expression *tree_sitter.Node) (Value, error) {
	text := expression.Utf8Text(ctx.source)
	switch expression.Kind() {
	case "parenthesized_expression":
		return ctx.evalExpression(expression.NamedChild(0))
	case "binary_expression":
		return ctx.evalBinaryExpression(expression)
	case "unary_expression":
		return ctx.evalUnaryExpression(expression)
	case "method_invocation":
		return ctx.evalMethodInvocation(expression)
	case "object_creation_expression":
		return ctx.evalObjectCreation(expression)
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		n, err := parseIntLiteral(text)
		if err != nil {
			return nil, ctx.fail(expression, err)
		}
		return fraction.Int(n), nil
	case "decimal_floating_point_literal":
		f, err := parseFloatLiteral(text)
		if err != nil {
			return nil, ctx.fail(expression, err)
		}
		return f, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, ctx.fail(expression, fmt.Errorf("%w expression kind: %s", ErrUnsupported, expression.Kind()))
	}
}

func parseIntLiteral(text string) (int64, error) {
	text = strings.ReplaceAll(text, "_", "")
	text = strings.TrimRight(text, "lL")
	// Java octal literals are a bare leading zero.
	if len(text) > 1 && text[0] == '0' && text[1] >= '0' && text[1] <= '9' {
		text = "0o" + text[1:]
	}
	return strconv.ParseInt(text, 0, 64)
}

func parseFloatLiteral(text string) (float64, error) {
	text = strings.ReplaceAll(text, "_", "")
	text = strings.TrimRight(text, "fFdD")
	return strconv.ParseFloat(text, 64)
}

func (ctx *EvalContext) evalArgumentList(argList *tree_sitter.Node) ([]Value, error) {
	var args []Value
	var firstErr error
	IterateChildren(argList, func(child *tree_sitter.Node) {
		if firstErr != nil {
			return
		}
		switch child.Kind() {
		// ignored
		case "(":
		case ")":
		case ",":
		case "line_comment":
		case "block_comment":
		default:
			value, err := ctx.evalExpression(child)
			if err != nil {
				firstErr = err
				return
			}
			args = append(args, value)
		}
	})
	return args, firstErr
}

func (ctx *EvalContext) evalUnaryExpression(expression *tree_sitter.Node) (Value, error) {
	operator := expression.ChildByFieldName("operator").Utf8Text(ctx.source)
	operand, err := ctx.evalExpression(expression.ChildByFieldName("operand"))
	if err != nil {
		return nil, err
	}
	switch v := operand.(type) {
	case fraction.Int:
		switch operator {
		case "-":
			return -v, nil
		case "+":
			return v, nil
		}
	case float64:
		switch operator {
		case "-":
			return -v, nil
		case "+":
			return v, nil
		}
	case fraction.Fraction:
		switch operator {
		case "-":
			negated, err := v.MulExact(fraction.Int(-1))
			if err != nil {
				return nil, ctx.fail(expression, err)
			}
			return negated, nil
		case "+":
			return v, nil
		}
	case bool:
		if operator == "!" {
			return !v, nil
		}
	}
	return nil, ctx.fail(expression, fmt.Errorf("%w operand type for unary %s: %s", ErrUnsupported, operator, TypeName(operand)))
}

func (ctx *EvalContext) evalBinaryExpression(expression *tree_sitter.Node) (Value, error) {
	left, err := ctx.evalExpression(expression.ChildByFieldName("left"))
	if err != nil {
		return nil, err
	}
	right, err := ctx.evalExpression(expression.ChildByFieldName("right"))
	if err != nil {
		return nil, err
	}
	var operator string
	IterateChildren(expression, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "||", "&&", "==", "!=", "<", "<=", ">", ">=", "+", "-", "*", "/", "%":
			operator = child.Utf8Text(ctx.source)
		}
	})
	if operator == "" {
		return nil, ctx.fail(expression, fmt.Errorf("%w operator", ErrUnsupported))
	}
	value, err := ctx.applyBinary(operator, left, right)
	if err != nil {
		return nil, ctx.fail(expression, err)
	}
	return value, nil
}

func (ctx *EvalContext) applyBinary(operator string, left, right Value) (Value, error) {
	unsupported := fmt.Errorf("%w operand types for %s: %s and %s", ErrUnsupported, operator, TypeName(left), TypeName(right))
	// Values of unrelated kinds are never equal.
	mismatch := func() (Value, error) {
		switch operator {
		case "==":
			return false, nil
		case "!=":
			return true, nil
		}
		return nil, unsupported
	}

	// Booleans
	if l, ok := left.(bool); ok {
		r, ok := right.(bool)
		if !ok {
			return mismatch()
		}
		switch operator {
		case "&&":
			return l && r, nil
		case "||":
			return l || r, nil
		case "==":
			return l == r, nil
		case "!=":
			return l != r, nil
		}
		return nil, unsupported
	}

	// Rectangles
	lr, lok := left.(rectangle.Rectangle)
	rr, rok := right.(rectangle.Rectangle)
	switch {
	case lok && rok:
		if operator == "+" {
			return lr.Add(rr)
		}
		return relation(operator, tolerantRectangle{lr, ctx.Tolerance}, tolerantRectangle{rr, ctx.Tolerance}, unsupported)
	case lok && operator == "*":
		if n, ok := asFloat(right); ok {
			return lr.Scale(n)
		}
		return nil, unsupported
	case rok && operator == "*":
		switch n := left.(type) {
		case fraction.Int:
			return rectangle.Times(n, rr)
		case float64:
			return rectangle.Times(n, rr)
		}
		return nil, unsupported
	case lok || rok:
		return mismatch()
	}

	// Integers
	li, lok := left.(fraction.Int)
	ri, rok := right.(fraction.Int)
	if lok && rok {
		switch operator {
		case "+":
			return li + ri, nil
		case "-":
			return li - ri, nil
		case "*":
			return li * ri, nil
		case "/":
			// Integer division produces an exact fraction.
			return fraction.New(li, ri)
		}
		return relation(operator, integer(li), integer(ri), unsupported)
	}

	// Fractions, with integers promoted
	lf, lok := asOperand(left)
	rf, rok := asOperand(right)
	if lok && rok {
		f := lf.AsFraction()
		switch operator {
		case "+":
			return f.AddExact(rf)
		case "-":
			return f.SubExact(rf)
		case "*":
			return f.MulExact(rf)
		}
		return relation(operator, f, rf, unsupported)
	}

	// Floating point, with integers widened
	lx, lok := asFloat(left)
	rx, rok := asFloat(right)
	if lok && rok {
		switch operator {
		case "+":
			return lx + rx, nil
		case "-":
			return lx - rx, nil
		case "*":
			return lx * rx, nil
		case "/":
			return lx / rx, nil
		}
		return relation(operator, number(lx), number(rx), unsupported)
	}

	return mismatch()
}

type integer int64

func (i integer) Equal(other integer) bool { return i == other }
func (i integer) Less(other integer) bool  { return i < other }

type number float64

func (n number) Equal(other number) bool { return n == other }
func (n number) Less(other number) bool  { return n < other }

func relation[T order.Ordered[O], O any](operator string, a T, b O, unsupported error) (Value, error) {
	switch operator {
	case "==":
		return a.Equal(b), nil
	case "!=":
		return order.NotEqual(a, b), nil
	case "<":
		return a.Less(b), nil
	case "<=":
		return order.LessOrEqual(a, b), nil
	case ">":
		return order.Greater(a, b), nil
	case ">=":
		return order.GreaterOrEqual(a, b), nil
	}
	return nil, unsupported
}

func (ctx *EvalContext) evalObjectCreation(expression *tree_sitter.Node) (Value, error) {
	typeName := expression.ChildByFieldName("type").Utf8Text(ctx.source)
	args, err := ctx.evalArgumentList(expression.ChildByFieldName("arguments"))
	if err != nil {
		return nil, err
	}
	value, err := construct(typeName, args)
	if err != nil {
		return nil, ctx.fail(expression, err)
	}
	return value, nil
}

func (ctx *EvalContext) evalMethodInvocation(expression *tree_sitter.Node) (Value, error) {
	name := expression.ChildByFieldName("name").Utf8Text(ctx.source)
	args, err := ctx.evalArgumentList(expression.ChildByFieldName("arguments"))
	if err != nil {
		return nil, err
	}

	objectNode := expression.ChildByFieldName("object")
	var value Value
	switch {
	case objectNode == nil:
		value, err = construct(name, args)
	case objectNode.Kind() == "identifier" && objectNode.Utf8Text(ctx.source) == "Rectangle":
		value, err = callStatic(name, args)
	default:
		var object Value
		object, err = ctx.evalExpression(objectNode)
		if err != nil {
			return nil, err
		}
		value, err = callAccessor(object, name, args)
	}
	if err != nil {
		return nil, ctx.fail(expression, err)
	}
	return value, nil
}

func checkArity(name string, args []Value, expected int) error {
	if len(args) != expected {
		return fmt.Errorf("%w: %s expects %d arguments, got %d", ErrSyntax, name, expected, len(args))
	}
	return nil
}

func construct(typeName string, args []Value) (Value, error) {
	switch typeName {
	case "Rectangle":
		if err := checkArity(typeName, args, 2); err != nil {
			return nil, err
		}
		width, wok := asFloat(args[0])
		height, hok := asFloat(args[1])
		if !wok || !hok {
			return nil, fmt.Errorf("%w: Rectangle dimensions must be numbers, got %s and %s", ErrUnsupported, TypeName(args[0]), TypeName(args[1]))
		}
		return rectangle.New(width, height)
	case "Fraction", "ProperFraction":
		if err := checkArity(typeName, args, 2); err != nil {
			return nil, err
		}
		return fraction.FromValues(args[0], args[1])
	}
	return nil, fmt.Errorf("%w type: %s", ErrUnsupported, typeName)
}

func callStatic(name string, args []Value) (Value, error) {
	if name != "fromArea" {
		return nil, fmt.Errorf("%w method: Rectangle.%s", ErrUnsupported, name)
	}
	if err := checkArity(name, args, 1); err != nil {
		return nil, err
	}
	area, ok := asFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: area must be a number, got %s", ErrUnsupported, TypeName(args[0]))
	}
	return rectangle.FromArea(area)
}

func callAccessor(object Value, name string, args []Value) (Value, error) {
	if err := checkArity(name, args, 0); err != nil {
		return nil, err
	}
	switch v := object.(type) {
	case rectangle.Rectangle:
		switch name {
		case "area":
			return v.Area(), nil
		case "width":
			return v.Width(), nil
		case "height":
			return v.Height(), nil
		}
	case fraction.Fraction:
		switch name {
		case "numerator":
			return fraction.Int(v.Numerator()), nil
		case "denominator":
			return fraction.Int(v.Denominator()), nil
		case "doubleValue":
			return v.Float64(), nil
		}
	}
	return nil, fmt.Errorf("%w method: %s.%s", ErrUnsupported, TypeName(object), name)
}
