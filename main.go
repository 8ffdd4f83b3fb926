package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/heshanpadmasiri/valueops/diagnostics"
	"github.com/heshanpadmasiri/valueops/expr"
)

const usage = `usage:
  valueops demo [rectangle|fraction|all]
  valueops eval [-Werror] [-f file] [expression ...]
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch args[0] {
	case "demo":
		name := "all"
		if len(args) > 1 {
			name = args[1]
		}
		diagnostics.Fatal("demo failed", runDemo(name, os.Stdout))
	case "eval":
		failed, err := runEval(loadConfig(), args[1:], os.Stdin, os.Stdout)
		diagnostics.Fatal("evaluation failed", err)
		if failed > 0 {
			fmt.Fprintf(os.Stderr, "%d expression(s) failed\n", failed)
			os.Exit(1)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// runEval evaluates expressions from args, the -f file, or stdin, in that
// order of preference. It returns the number of expressions that failed in
// non-strict mode.
func runEval(c config, args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	werror := fs.Bool("Werror", false, "treat the first failing expression as fatal")
	file := fs.String("f", "", "read expressions from file, one per line")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	ctx := expr.NewEvalContext(c.Strict || *werror)
	ctx.Tolerance = c.Tolerance
	ctx.FloatPrecision = c.FloatPrecision

	var err error
	switch {
	case fs.NArg() > 0:
		err = expr.EvalAll(ctx, fs.Args(), stdout)
	case *file != "":
		var f *os.File
		f, err = os.Open(*file)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		err = expr.EvalScript(ctx, f, stdout)
	default:
		err = expr.EvalScript(ctx, stdin, stdout)
	}
	return len(ctx.Errors), err
}
