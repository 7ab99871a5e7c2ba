// Package jqpred provides filter predicates written as jq expressions.
package jqpred

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"reflect"

	"github.com/itchyny/gojq"

	"github.com/norio-nomura/ranges/pkg/view"
)

// Predicate is a compiled jq expression that must evaluate to exactly one boolean.
type Predicate[T any] struct {
	expr string
	code *gojq.Code
	err  error
}

// Compile parses and compiles expr.
func Compile[T any](expr string) (*Predicate[T], error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq expression %q: %w", expr, err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression %q: %w", expr, err)
	}
	return &Predicate[T]{expr: expr, code: code}, nil
}

// String returns the source expression.
func (p *Predicate[T]) String() string {
	return p.expr
}

// Match runs the expression with v as input.
func (p *Predicate[T]) Match(v T) (bool, error) {
	in, err := normalize(v)
	if err != nil {
		return false, fmt.Errorf("failed to convert %v for %q: %w", v, p.expr, err)
	}
	it := p.code.Run(in)
	out, ok := it.Next()
	if !ok {
		return false, fmt.Errorf("jq expression %q did not return any values", p.expr)
	}
	if err, ok := out.(error); ok {
		return false, fmt.Errorf("failed to evaluate %q: %w", p.expr, err)
	}
	if extra, ok := it.Next(); ok {
		return false, fmt.Errorf("jq expression %q returned second value: %v", p.expr, extra)
	}
	allow, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("jq expression %q must return boolean. instead got: %v", p.expr, out)
	}
	return allow, nil
}

// Test is Match as a plain predicate. An evaluation error rejects v, is logged
// and the first one is kept for Err.
func (p *Predicate[T]) Test(v T) bool {
	allow, err := p.Match(v)
	if err != nil {
		slog.Error("Failed to evaluate jq predicate", slog.String("expr", p.expr), slog.Any("value", v), slog.Any("err", err))
		if p.err == nil {
			p.err = err
		}
		return false
	}
	return allow
}

// Err returns the first error Test ran into.
func (p *Predicate[T]) Err() error {
	return p.err
}

// Adaptor returns a filter stage testing elements with p.
func (p *Predicate[T]) Adaptor() view.Adaptor[T] {
	return view.Filter(p.Test)
}

// Filters compiles one filter stage per expression, in order.
func Filters[T any](exprs ...string) ([]view.Adaptor[T], []*Predicate[T], error) {
	stages := make([]view.Adaptor[T], 0, len(exprs))
	preds := make([]*Predicate[T], 0, len(exprs))
	for _, expr := range exprs {
		p, err := Compile[T](expr)
		if err != nil {
			return nil, nil, err
		}
		stages = append(stages, p.Adaptor())
		preds = append(preds, p)
	}
	return stages, preds, nil
}

// normalize converts v into the value domain gojq accepts:
// nil, bool, int, float64, *big.Int, string, []any and map[string]any.
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, int, float64, *big.Int, string, []any, map[string]any:
		return x, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return big.NewInt(n), nil
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return new(big.Int).SetUint64(n), nil
		}
		return int(n), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
