package nodelist

import (
	"github.com/dop251/goja"
	"lnodelist/list"
	"math"
)

// toHost turns a script value into what the list boxes. Numbers keep goja's
// own int/float split; objects and functions stay goja values so they come
// back by identity.
func toHost(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	switch e := v.Export().(type) {
	case int64, float64, string, bool:
		return e
	}
	return v
}

func (m *Module) toJS(v any) goja.Value {
	if v == nil {
		return goja.Null()
	}
	if gv, ok := v.(goja.Value); ok {
		return gv
	}
	return m.runtime.ToValue(v)
}

func argCheck(value goja.Value) bool {
	return value != nil && !goja.IsUndefined(value) && !goja.IsNull(value)
}

// index reads an integer argument, rejecting numbers with a fractional part.
func (m *Module) index(v goja.Value) int {
	if f, ok := v.Export().(float64); ok && f != math.Trunc(f) {
		panic(m.runtime.NewTypeError("number has no integer representation"))
	}
	return int(v.ToInteger())
}

// optBounds reads an optional [start, end] pair. Each missing, undefined or
// null bound falls back to the first or last element on its own.
func (m *Module) optBounds(l *list.List, args []goja.Value, from int) []int {
	start, end := 1, l.Size()
	if a := arg(args, from); argCheck(a) {
		start = m.index(a)
	}
	if a := arg(args, from+1); argCheck(a) {
		end = m.index(a)
	}
	return []int{start, end}
}
