package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"eddy/interpreter-go/pkg/parser"
	"eddy/interpreter-go/pkg/runtime"
)

const (
	historyFile = ".eddy_history"
	promptMain  = "eddy> "
	promptCont  = "  ... "
)

func runRepl(env *runtime.Environment, timeout time.Duration) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := filepath.Join(os.TempDir(), historyFile)
	if home, err := os.UserHomeDir(); err == nil {
		historyPath = filepath.Join(home, historyFile)
	}
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println(cliToolVersion + " REPL. Ctrl+D or :quit exits.")
	for {
		src, quit := readExpression(line)
		if quit {
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)

		node, err := parser.Parse(src)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			continue
		}
		val, err := evaluate(node, env, timeout)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(val)
	}
}

// readExpression collects input lines until the parens balance, so multi-line
// expressions work naturally at the prompt.
func readExpression(line *liner.State) (src string, quit bool) {
	prompt := promptMain
	var parts []string
	for {
		text, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return "", false
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return "", true
			}
			errColor.Fprintln(os.Stderr, err)
			return "", true
		}
		if strings.TrimSpace(text) == ":quit" {
			return "", true
		}
		parts = append(parts, text)
		src = strings.Join(parts, "\n")
		if parenDepth(src) <= 0 {
			return src, false
		}
		prompt = promptCont
	}
}

// parenDepth counts unclosed parens outside strings and comments.
func parenDepth(src string) int {
	depth := 0
	inStr := false
	inComment := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			}
		case inStr:
			if c == '\\' {
				i++
			} else if c == '"' {
				inStr = false
			}
		case c == '"':
			inStr = true
		case c == '#':
			inComment = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		}
	}
	return depth
}
