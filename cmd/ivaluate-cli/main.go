// Command ivaluate-cli is a small interactive demonstrator for the
// implicit-surface evaluator: type an infix expression in x, y, z, then
// drive eval_point / eval_interval / derivs_batch / push / pop / utilization
// against it from the prompt.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/eval"
	"github.com/isurf/ivaluate/interval"
	"github.com/isurf/ivaluate/tree"
)

func main() {
	color.Cyan("ivaluate-cli — implicit surface REPL")
	fmt.Println(`type "expr <infix>" to load a field, "help" for commands, "quit" to exit`)

	session := &session{c: cache.NewCache()}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.New(color.FgHiBlack).Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := session.dispatch(line); err != nil {
			color.Red("error: %v", err)
		}
	}
}

// session holds the cache, current evaluator and REPL state across lines.
type session struct {
	c  *cache.Cache
	ev *eval.Evaluator
}

func (s *session) dispatch(line string) error {
	fields := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(fields[0])
	rest := ""
	if len(fields) == 2 {
		rest = strings.TrimSpace(fields[1])
	}

	switch cmd {
	case "help":
		printHelp()
		return nil
	case "quit", "exit":
		os.Exit(0)
		return nil
	case "expr":
		return s.loadExpression(rest)
	case "point":
		return s.evalPoint(rest)
	case "deriv":
		return s.evalDeriv(rest)
	case "interval":
		return s.evalInterval(rest)
	case "push":
		return s.push()
	case "pop":
		return s.pop()
	case "util":
		return s.utilization()
	default:
		return fmt.Errorf("unknown command %q (try \"help\")", cmd)
	}
}

func printHelp() {
	fmt.Println(`commands:
  expr <infix>               compile e.g. "sqrt(x*x+y*y+z*z) - 1"
  point <x> <y> <z>          evaluate the field at one point
  deriv <x> <y> <z>          evaluate value and gradient at one point
  interval <xlo> <xhi> <ylo> <yhi> <zlo> <zhi>
                             evaluate the field's interval over a box
  push                       disable subtrees the last interval proved irrelevant
  pop                        restore the state from the matching push
  util                       report current row utilization
  quit                       exit`)
}

func (s *session) requireEvaluator() error {
	if s.ev == nil {
		return fmt.Errorf("no expression loaded; use \"expr <infix>\" first")
	}
	return nil
}

func (s *session) loadExpression(src string) error {
	if src == "" {
		return fmt.Errorf("expr requires an expression, e.g. \"expr x*x+y*y-1\"")
	}
	root, err := parseExpression(s.c, src)
	if err != nil {
		return err
	}
	ev, err := eval.New(tree.New(s.c, root))
	if err != nil {
		return err
	}
	s.ev = ev
	color.Green("compiled: rank %d", s.c.Rank(root))
	return nil
}

func parseFloats(rest string, want int) ([]float64, error) {
	fields := strings.Fields(rest)
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d number(s), got %d", want, len(fields))
	}
	out := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

func (s *session) evalPoint(rest string) error {
	if err := s.requireEvaluator(); err != nil {
		return err
	}
	vals, err := parseFloats(rest, 3)
	if err != nil {
		return err
	}
	v := s.ev.EvalPoint(vals[0], vals[1], vals[2])
	color.Green("%g", v)
	return nil
}

func (s *session) evalDeriv(rest string) error {
	if err := s.requireEvaluator(); err != nil {
		return err
	}
	vals, err := parseFloats(rest, 3)
	if err != nil {
		return err
	}
	s.ev.SetPoints([]float64{vals[0]}, []float64{vals[1]}, []float64{vals[2]})
	f, dx, dy, dz := s.ev.DerivsBatch(false)
	color.Green("value=%g grad=(%g, %g, %g)", f[0], dx[0], dy[0], dz[0])
	return nil
}

func (s *session) evalInterval(rest string) error {
	if err := s.requireEvaluator(); err != nil {
		return err
	}
	vals, err := parseFloats(rest, 6)
	if err != nil {
		return err
	}
	ix := interval.Interval{Lo: vals[0], Hi: vals[1]}
	iy := interval.Interval{Lo: vals[2], Hi: vals[3]}
	iz := interval.Interval{Lo: vals[4], Hi: vals[5]}
	s.ev.SetInterval(ix, iy, iz)
	result, err := s.ev.EvalInterval()
	if err != nil {
		return err
	}
	color.Green("[%g, %g]", result.Lo, result.Hi)
	return nil
}

func (s *session) push() error {
	if err := s.requireEvaluator(); err != nil {
		return err
	}
	s.ev.Push()
	color.Green("pushed; utilization=%g", s.ev.Utilization())
	return nil
}

func (s *session) pop() error {
	if err := s.requireEvaluator(); err != nil {
		return err
	}
	if err := s.ev.Pop(); err != nil {
		return err
	}
	color.Green("popped; utilization=%g", s.ev.Utilization())
	return nil
}

func (s *session) utilization() error {
	if err := s.requireEvaluator(); err != nil {
		return err
	}
	color.Green("%g", s.ev.Utilization())
	return nil
}
