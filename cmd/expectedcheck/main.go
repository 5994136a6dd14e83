package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/WinPooh32/expected/unhandled"
)

type argSet []string

func (a *argSet) String() string {
	return strings.Join(*a, ", ")
}

func (a *argSet) Set(s string) error {
	*a = strings.Split(s, ",")
	return nil
}

type flags struct {
	jobs     int
	dir      string
	patterns argSet
}

func main() {
	var flags flags

	flag.IntVar(&flags.jobs, "jobs", 0, "parallel jobs number")
	flag.StringVar(&flags.dir, "dir", "", "go module dir")
	flag.Var(&flags.patterns, "pattern", "list of package patterns")
	flag.Parse()

	if len(flags.patterns) == 0 {
		flags.patterns = []string{"./..."}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	findings, err := check(ctx, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, f := range findings {
		fmt.Println(f)
	}

	if len(findings) > 0 {
		os.Exit(1)
	}
}

func check(ctx context.Context, flags flags) ([]unhandled.Finding, error) {
	chk, err := unhandled.NewChecker()
	if err != nil {
		return nil, fmt.Errorf("new checker: %w", err)
	}

	if _, err := chk.Load(ctx, flags.dir, flags.patterns...); err != nil {
		return nil, fmt.Errorf("load source files to the checker: %w", err)
	}

	findings, err := chk.Check(ctx, flags.jobs)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	return findings, nil
}
