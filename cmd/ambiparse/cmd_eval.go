package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/clarete/ambiparse/examples/arith"
)

var errNoCompleteParse = errors.New("no complete parse")

type evalResult struct {
	lines []string
	err   error
}

func newEvalCmd(a *app) *cobra.Command {
	var showTree bool
	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions, one per line from stdin if none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				inputs = lines
			}

			name := a.cfg.GetString("parse.grammar")
			grammar, err := grammarByName(name)
			if err != nil {
				return err
			}
			workers := a.cfg.GetInt("parse.workers")
			if workers < 1 {
				return fmt.Errorf("parse.workers must be at least 1, got %d", workers)
			}
			all := a.cfg.GetBool("parse.all")

			// the grammar is shared by all the workers
			results := make([]evalResult, len(inputs))
			sem := semaphore.NewWeighted(int64(workers))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, input := range inputs {
				i, input := i, input
				if err := sem.Acquire(ctx, 1); err != nil {
					_ = g.Wait()
					return err
				}
				g.Go(func() error {
					defer sem.Release(1)
					a.log.Debug().Str("grammar", name).Str("input", input).Msg("evaluating")
					lines, err := evaluate(grammar, input, all, showTree)
					results[i] = evalResult{lines: lines, err: err}
					return ctx.Err()
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			out := cmd.OutOrStdout()
			for i, r := range results {
				if r.err != nil {
					failed++
					a.log.Error().Err(r.err).Str("input", inputs[i]).Msg("evaluation failed")
					fmt.Fprintf(out, "%s: %s\n", inputs[i], r.err)
					continue
				}
				for _, line := range r.lines {
					fmt.Fprintln(out, line)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(inputs))
			}
			return nil
		},
	}
	cmd.Flags().String("grammar", "precedence", "grammar used to read the expressions (precedence, ambiguous)")
	cmd.Flags().Bool("all", false, "show every complete parse instead of requiring a single one")
	cmd.Flags().Int("workers", 4, "max number of expressions evaluated at the same time")
	cmd.Flags().BoolVar(&showTree, "tree", false, "print the tree of each parse")
	return cmd
}

// evaluate returns one `tree = value` line per parse of `input`
func evaluate(grammar arith.Parser, input string, all, showTree bool) ([]string, error) {
	tokens, err := arith.Tokenize(input)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	var exprs []arith.Expr
	if all {
		exprs = grammar.ParseAll(tokens)
		if len(exprs) == 0 {
			return nil, errNoCompleteParse
		}
	} else {
		e, err := grammar.ParseUnambiguous(tokens)
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		exprs = []arith.Expr{e}
	}

	lines := make([]string, 0, len(exprs))
	for _, e := range exprs {
		v, err := e.Eval()
		if err != nil {
			return nil, fmt.Errorf("eval %s: %w", e, err)
		}
		lines = append(lines, fmt.Sprintf("%s = %d", e, v))
		if showTree {
			lines = append(lines, arith.Tree(e))
		}
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
