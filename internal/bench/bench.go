// Package bench measures how the linked list performs against a plain slice
// for the operations where their complexity differs.
package bench

import (
	"context"
	"time"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/clock"
)

const (
	OpAppend  = "append"
	OpPrepend = "prepend"
	OpUnshift = "unshift"
	OpShift   = "shift"
	OpPop     = "pop"
)

type Result struct {
	Operation string
	Subject   string
	Ops       int
	Elapsed   time.Duration
}

func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

// Run measures every configured operation on both a linked list and a slice.
func Run(ctx context.Context, c Config) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	// removals need N elements on top of the initial Size
	payload := makePayload(c.Size + c.N)
	var results []Result
	for _, op := range c.Operations {
		for _, sub := range subjects() {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res := measure(op, sub, payload, c)
			logger.Info(logging.ContextWith(ctx,
				logging.Field("operation", res.Operation),
				logging.Field("subject", res.Subject),
			), "benchmark finished",
				logging.Field("ops", res.Ops),
				logging.Field("elapsed", res.Elapsed.String()),
				logging.Field("ns_per_op", res.NsPerOp()))
			results = append(results, res)
		}
	}
	return results, nil
}

func measure(op string, sub subject, payload []string, c Config) Result {
	size := c.Size
	if op == OpShift || op == OpPop {
		size += c.N
	}
	sub.Fill(payload[:size])
	var (
		fn    = operationOf(sub, op)
		start = clock.Now()
	)
	for i := 0; i < c.N; i++ {
		fn(payload[i%len(payload)])
	}
	return Result{
		Operation: op,
		Subject:   sub.Name(),
		Ops:       c.N,
		Elapsed:   clock.Now().Sub(start),
	}
}

func makePayload(n int) []string {
	payload := make([]string, n)
	for i := range payload {
		payload[i] = randomdata.SillyName()
	}
	return payload
}
