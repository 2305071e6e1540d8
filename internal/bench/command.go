package bench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Command is the CLI entry point of the benchmark.
// Flags override the values of Config, which is usually loaded from the environment.
type Command struct {
	Operations string `flag:"ops" desc:"comma separated list of operations: append, prepend, unshift, shift, pop"`
	N          int    `flag:"n" desc:"number of measured operations per subject"`
	Size       int    `flag:"size" desc:"number of elements in a subject before measuring"`

	Config Config
}

func (cmd Command) Summary() string {
	return "compare linked list and slice throughput"
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	c := cmd.config()
	results, err := Run(ctx, c)
	if errors.Is(err, ErrInvalidConfig) {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(w, err.Error())
		return
	}
	if err != nil {
		logger.Error(ctx, "benchmark failed", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}
	if err := cli.FPrintTable(w, table(results)); err != nil {
		cli.HandleError(w, r, err)
	}
}

func (cmd Command) config() Config {
	c := cmd.Config
	if cmd.Operations != "" {
		c.Operations = nil
		for _, op := range strings.Split(cmd.Operations, ",") {
			if op = strings.TrimSpace(op); op != "" {
				c.Operations = append(c.Operations, op)
			}
		}
	}
	if cmd.N != 0 {
		c.N = cmd.N
	}
	if cmd.Size != 0 {
		c.Size = cmd.Size
	}
	return c
}

func table(results []Result) [][]string {
	rows := [][]string{{"OPERATION", "SUBJECT", "OPS", "ELAPSED", "NS/OP"}}
	for _, r := range results {
		rows = append(rows, []string{
			r.Operation,
			r.Subject,
			strconv.Itoa(r.Ops),
			r.Elapsed.String(),
			strconv.FormatFloat(r.NsPerOp(), 'f', 1, 64),
		})
	}
	return rows
}
