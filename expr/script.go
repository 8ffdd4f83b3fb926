package expr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heshanpadmasiri/valueops/diagnostics"
)

// EvalScript evaluates one expression per line of r and writes one result
// per line to w. Blank lines and // comments are skipped. In strict mode the
// first failure is returned; otherwise failures are warned about, collected
// in ctx.Errors, and evaluation continues. Lines have no length limit.
func EvalScript(ctx *EvalContext, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	line := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if readErr == io.EOF && raw == "" {
			return nil
		}
		line++
		text := strings.TrimSpace(raw)
		if text != "" && !strings.HasPrefix(text, "//") {
			if err := evalLine(ctx, line, text, w); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

// EvalAll evaluates each expression in order, numbering them from 1.
func EvalAll(ctx *EvalContext, expressions []string, w io.Writer) error {
	for i, text := range expressions {
		if err := evalLine(ctx, i+1, text, w); err != nil {
			return err
		}
	}
	return nil
}

func evalLine(ctx *EvalContext, line int, text string, w io.Writer) error {
	value, err := ctx.Eval(text)
	if err != nil {
		var evalErr *EvalError
		if !errors.As(err, &evalErr) {
			evalErr = &EvalError{Source: text, Err: err}
		}
		evalErr.Line = line
		if ctx.StrictMode {
			return evalErr
		}
		ctx.Errors = append(ctx.Errors, *evalErr)
		diagnostics.Warn("evaluation failed", evalErr)
		return nil
	}
	_, err = fmt.Fprintln(w, FormatValue(value, ctx.FloatPrecision))
	return err
}
