package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/objectops/codec"
	"github.com/0xalexb/objectops/recipe"
)

var errMissingAssignment = errors.New("expected path=value")

// stepFlag is a repeatable flag that appends one recipe step per occurrence
// to a list shared by all edit flags, keeping command-line order.
type stepFlag struct {
	op    recipe.Op
	steps *[]recipe.Step
}

func (f stepFlag) String() string {
	return ""
}

func (f stepFlag) Set(value string) error {
	step, err := parseStep(f.op, value)
	if err != nil {
		return err
	}

	*f.steps = append(*f.steps, step)

	return nil
}

func parseStep(op recipe.Op, value string) (recipe.Step, error) {
	if op == recipe.OpRemove {
		return recipe.Step{Op: op, Paths: []string{value}}, nil
	}

	left, right, ok := strings.Cut(value, "=")
	if !ok || left == "" {
		return recipe.Step{}, fmt.Errorf("%w: %q", errMissingAssignment, value)
	}

	switch op {
	case recipe.OpMove:
		return recipe.Step{Op: op, From: left, To: right}, nil
	case recipe.OpSet:
		decoded, err := codec.DecodeValue([]byte(right), codec.YAML)
		if err != nil {
			return recipe.Step{}, fmt.Errorf("value for %q: %w", left, err)
		}

		return recipe.Step{Op: op, Path: left, Value: decoded}, nil
	case recipe.OpTransform:
		return recipe.Step{Op: op, Path: left, Expr: right}, nil
	default:
		return recipe.Step{}, fmt.Errorf("%w: %q", recipe.ErrUnknownOp, op)
	}
}
