// Package script applies configured operations to a string collection.
package script

import (
	"github.com/sirupsen/logrus"

	"github.com/denismitr/collection"
	"github.com/denismitr/collection/internal/config"
)

// Step is the outcome of a single operation.
type Step struct {
	Op       config.Op
	Result   string
	Err      error
	State    string
	Count    int
	Capacity int
}

type Runner struct {
	log logrus.FieldLogger
}

func NewRunner(log logrus.FieldLogger) *Runner {
	return &Runner{log: log}
}

// Run applies ops to c in order. A rejected operation leaves c untouched,
// is recorded in its Step and does not stop the script.
func (r *Runner) Run(c *collection.Collection[string], ops []config.Operation) []Step {
	c.OnGrow(func(oldCapacity, newCapacity int) {
		r.log.WithFields(logrus.Fields{
			"old_capacity": oldCapacity,
			"new_capacity": newCapacity,
		}).Debug("collection grown")
	})
	defer c.OnGrow(nil)

	steps := make([]Step, 0, len(ops))
	for _, op := range ops {
		result, err := apply(c, op)
		step := Step{
			Op:       op.Op,
			Result:   result,
			Err:      err,
			State:    c.String(),
			Count:    c.Count(),
			Capacity: c.Capacity(),
		}

		entry := r.log.WithFields(logrus.Fields{
			"op":       op.Op,
			"count":    step.Count,
			"capacity": step.Capacity,
		})
		if err != nil {
			entry.WithError(err).Warn("operation rejected")
		} else {
			entry.Debug("operation applied")
		}

		steps = append(steps, step)
	}

	return steps
}

func apply(c *collection.Collection[string], op config.Operation) (string, error) {
	switch op.Op {
	case config.OpAdd:
		c.Add(op.Value)
	case config.OpAddRange:
		c.AddRange(op.Values...)
	case config.OpInsertAt:
		return "", c.InsertAt(op.Index, op.Value)
	case config.OpRemoveAt:
		return c.RemoveAt(op.Index)
	case config.OpSet:
		return "", c.Set(op.Index, op.Value)
	case config.OpGet:
		return c.Get(op.Index)
	case config.OpExchange:
		return "", c.Exchange(op.Index, op.Other)
	case config.OpClear:
		c.Clear()
	default:
		return "", config.ErrUnknownOp
	}

	return "", nil
}
