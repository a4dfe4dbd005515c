package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"eddy/interpreter-go/pkg/ast"
	"eddy/interpreter-go/pkg/driver"
	"eddy/interpreter-go/pkg/interpreter"
	"eddy/interpreter-go/pkg/parser"
	"eddy/interpreter-go/pkg/runtime"
)

const cliToolVersion = "eddy-cli 0.1.0"

var errColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("eddy", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }
	expr := fs.String("e", "", "evaluate one expression and exit")
	envPath := fs.String("env", "", "session manifest preloading bindings")
	timeout := fs.Duration("timeout", 0, "per-evaluation wall-clock bound (0 = none)")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *version {
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	}

	env, err := sessionEnvironment(*envPath)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}

	switch {
	case *expr != "":
		return evalAndPrint(*expr, env, *timeout)
	case fs.NArg() > 0:
		return runFile(fs.Arg(0), env, *timeout)
	default:
		return runRepl(env, *timeout)
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  eddy [-env manifest.yaml] [-timeout 5s] -e '(+ 3 4)'")
	fmt.Fprintln(os.Stderr, "  eddy [-env manifest.yaml] [-timeout 5s] script.eddy")
	fmt.Fprintln(os.Stderr, "  eddy [-env manifest.yaml]            # interactive REPL")
	fs.PrintDefaults()
}

func sessionEnvironment(path string) (*runtime.Environment, error) {
	if path == "" {
		return runtime.NewEnvironment(nil), nil
	}
	manifest, err := driver.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return manifest.Environment()
}

func evalAndPrint(src string, env *runtime.Environment, timeout time.Duration) int {
	node, err := parser.Parse(src)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}
	val, err := evaluate(node, env, timeout)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(os.Stdout, val)
	return 0
}

func runFile(path string, env *runtime.Environment, timeout time.Duration) int {
	src, err := os.ReadFile(path)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}
	nodes, err := parser.ParseProgram(string(src))
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}
	for _, node := range nodes {
		val, err := evaluate(node, env, timeout)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprintln(os.Stdout, val)
	}
	return 0
}

// evaluate runs one evaluation pass, optionally bounded by a deadline. The
// core itself has no cancellation primitive, so the bound lives here: a
// timed-out evaluation goroutine is abandoned and its result discarded.
func evaluate(node ast.Node, env *runtime.Environment, timeout time.Duration) (runtime.Value, error) {
	if timeout <= 0 {
		return interpreter.Evaluate(node, env)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	type result struct {
		val runtime.Value
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := interpreter.Evaluate(node, env)
		done <- result{val: val, err: err}
	}()
	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("evaluation timed out after %s", timeout)
	}
}
