package recipe

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/0xalexb/objectops"
	"github.com/0xalexb/objectops/dotpath"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// valueVar is the only variable visible to transform expressions.
const valueVar = "value"

// Program is a compiled Recipe. It is immutable and safe for concurrent use:
// set values are copied from the recipe when compiled and again into every
// document, so no run shares a map or slice with the program or another run.
type Program struct {
	name   string
	atomic bool
	steps  []compiledStep
}

type compiledStep struct {
	Step

	program *vm.Program
	patch   []byte
}

// Compile validates r and prepares its expressions and patches.
func Compile(r *Recipe) (*Program, error) {
	r.SetDefaults()

	err := r.Validate()
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", r.Name, err)
	}

	steps := make([]compiledStep, 0, len(r.Steps))

	for i, step := range r.Steps {
		compiled := compiledStep{Step: step}

		switch step.Op {
		case OpTransform:
			compiled.program, err = CompileExpr(step.Expr)
		case OpPatch:
			compiled.patch, err = json.Marshal(step.Patch)
		case OpSet:
			compiled.Value, err = dotpath.CopyValue(step.Value)
		case OpMove, OpRemove:
		}

		if err != nil {
			return nil, fmt.Errorf("recipe %q: step %d (%s): %w", r.Name, i, step.Op, err)
		}

		steps = append(steps, compiled)
	}

	return &Program{name: r.Name, atomic: r.Atomic, steps: steps}, nil
}

// CompileExpr compiles a transform expression over the variable value.
func CompileExpr(source string) (*vm.Program, error) {
	program, err := expr.Compile(source, expr.Env(map[string]any{valueVar: nil}))
	if err != nil {
		return nil, fmt.Errorf("compiling expression %q: %w", source, err)
	}

	return program, nil
}

// Evaluator adapts a compiled expression to the callback taken by
// objectops.Ops.TryTransform.
func Evaluator(program *vm.Program) func(any) (any, error) {
	return func(old any) (any, error) {
		out, err := expr.Run(program, map[string]any{valueVar: old})
		if err != nil {
			return nil, fmt.Errorf("evaluating expression: %w", err)
		}

		return out, nil
	}
}

// Name returns the recipe name.
func (p *Program) Name() string {
	return p.name
}

// Atomic reports whether Run leaves its input untouched on failure.
func (p *Program) Atomic() bool {
	return p.atomic
}

// Len returns the number of steps.
func (p *Program) Len() int {
	return len(p.steps)
}

// Apply runs every step against ops, stopping at the first failure.
// The returned error names the failing step.
func (p *Program) Apply(ops *objectops.Ops) error {
	err := ops.Err()
	if err != nil {
		return fmt.Errorf("recipe %q: %w", p.name, err)
	}

	for i, step := range p.steps {
		err = step.apply(ops)
		if err != nil {
			return fmt.Errorf("recipe %q: step %d (%s): %w", p.name, i, step.Op, err)
		}
	}

	return nil
}

func (s compiledStep) apply(ops *objectops.Ops) error {
	switch s.Op {
	case OpMove:
		ops.Move(s.From, s.To)
	case OpRemove:
		ops.Remove(s.Paths...)
	case OpTransform:
		ops.TryTransform(s.Path, Evaluator(s.program))
	case OpSet:
		value, err := dotpath.CopyValue(s.Value)
		if err != nil {
			return err //nolint:wrapcheck // wrapped with the step by Apply
		}

		ops.Set(s.Path, value)
	case OpPatch:
		ops.Patch(s.patch)
	}

	return ops.Err() //nolint:wrapcheck // wrapped with the step by Apply
}

// Run applies the program to doc. Without atomic, doc is edited in place and
// may be partially edited when an error is returned. An atomic program edits a
// deep copy and leaves doc untouched on failure. The edited document is
// returned in both cases.
func (p *Program) Run(doc map[string]any, opts ...objectops.Option) (map[string]any, error) {
	if !p.atomic {
		return doc, p.Apply(objectops.Edit(doc, opts...))
	}

	ops := objectops.Wrap(doc, append(opts, objectops.WithRollback())...).Clone()

	err := p.Apply(ops)
	if err != nil {
		slog.Debug("recipe rolled back", slog.String("recipe", p.name), slog.Any("error", err))

		return doc, err
	}

	return ops.Document(), nil
}
