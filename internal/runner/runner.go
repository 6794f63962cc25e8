package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.lepovirta.org/boundq/internal/container"
	"go.lepovirta.org/boundq/internal/scenario"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCancelled = errors.New("cancelled by context")
)

// Result is the outcome of running a single scenario.
type Result struct {
	// Name is the name of the scenario.
	Name string

	// Steps is the number of steps that were executed.
	Steps int

	// Err joins every failed expectation, or the reason the scenario
	// could not be completed. Nil when the scenario passed.
	Err error
}

func (this *Result) Passed() bool {
	return this.Err == nil
}

// target adapts both containers to a single insert/remove interface.
type target interface {
	insert(value int) bool
	remove() (int, bool)
	Len() int
}

type stackTarget struct{ *container.Stack }

func (this stackTarget) insert(value int) bool { return this.Push(value) }
func (this stackTarget) remove() (int, bool)   { return this.Pop() }

type queueTarget struct{ *container.Queue }

func (this queueTarget) insert(value int) bool { return this.Enqueue(value) }
func (this queueTarget) remove() (int, bool)   { return this.Dequeue() }

func newTarget(kind scenario.Kind, capacity int) (target, error) {
	switch kind {
	case scenario.KindStack:
		return stackTarget{container.NewStack(capacity)}, nil
	case scenario.KindQueue:
		return queueTarget{container.NewQueue(capacity)}, nil
	default:
		return nil, fmt.Errorf("unsupported container kind %s", kind)
	}
}

// Run executes the steps of s against a new container in order.
// Execution continues past failed expectations so that all of them
// end up in the result.
func Run(ctx context.Context, s *scenario.Scenario) Result {
	log := zerolog.Ctx(ctx).With().Str("scenario", s.Name).Logger()
	result := Result{Name: s.Name}

	c, err := newTarget(s.Container, s.Capacity)
	if err != nil {
		result.Err = err
		return result
	}

	var errs []error
	for i := range s.Steps {
		if ctx.Err() != nil {
			errs = append(errs, ErrCancelled)
			break
		}

		step := &s.Steps[i]
		got, err := execute(c, step)
		if err != nil {
			errs = append(errs, err)
			break
		}
		result.Steps += 1

		log.Debug().
			Int("step", i).
			Stringer("op", step.Op).
			Int("input", step.Value).
			Bool("ok", got.ok).
			Int("value", got.value).
			Int("len", c.Len()).
			Msg("step executed")

		if mismatch := got.check(s.Name, i, step); mismatch != nil {
			log.Debug().Err(mismatch).Msg("expectation failed")
			errs = append(errs, mismatch)
		}
	}

	result.Err = errors.Join(errs...)
	return result
}

type outcome struct {
	ok    bool
	value int
}

func execute(c target, step *scenario.Step) (outcome, error) {
	if step.Op.IsInsert() {
		return outcome{ok: c.insert(step.Value)}, nil
	}
	switch step.Op {
	case scenario.OpPop, scenario.OpDequeue:
		value, ok := c.remove()
		return outcome{ok: ok, value: value}, nil
	default:
		return outcome{}, fmt.Errorf("unsupported operation %s", step.Op)
	}
}

func (this outcome) check(name string, index int, step *scenario.Step) *ExpectationError {
	wantOk := !step.Fails
	if this.ok != wantOk {
		return &ExpectationError{
			scenario: name,
			step:     index,
			op:       step.Op,
			wantOk:   wantOk,
			gotOk:    this.ok,
			gotValue: this.value,
		}
	}
	if this.ok && step.Want != nil && *step.Want != this.value {
		return &ExpectationError{
			scenario:  name,
			step:      index,
			op:        step.Op,
			wantOk:    true,
			gotOk:     true,
			wantValue: step.Want,
			gotValue:  this.value,
		}
	}
	return nil
}

// RunAll runs the scenarios with at most parallel scenarios running at
// the same time. Each scenario gets containers of its own. Results are
// returned in the same order as the scenarios.
func RunAll(ctx context.Context, scenarios []scenario.Scenario, parallel int) []Result {
	results := make([]Result, len(scenarios))

	var eg errgroup.Group
	eg.SetLimit(max(parallel, 1))
	for i := range scenarios {
		eg.Go(func() error {
			results[i] = Run(ctx, &scenarios[i])
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// ExpectationError describes a step whose outcome differs from the script.
type ExpectationError struct {
	scenario  string
	step      int
	op        scenario.Op
	wantOk    bool
	gotOk     bool
	wantValue *int
	gotValue  int
}

func (this *ExpectationError) Scenario() string {
	return this.scenario
}

func (this *ExpectationError) Step() int {
	return this.step
}

func (this *ExpectationError) Op() scenario.Op {
	return this.op
}

func (this *ExpectationError) Error() string {
	if this.wantOk != this.gotOk {
		return fmt.Sprintf(
			"step %d (%s): expected %s but got %s",
			this.step, this.op,
			describeOk(this.wantOk), describeOk(this.gotOk),
		)
	}
	return fmt.Sprintf(
		"step %d (%s): expected value %d but got %d",
		this.step, this.op, *this.wantValue, this.gotValue,
	)
}

func describeOk(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
