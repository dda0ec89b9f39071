package nodelist

import (
	"errors"
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"lnodelist/dao"
	"lnodelist/list"
	"lnodelist/registry"
)

const ModuleName = "lnodelist"

var errNoStore = errors.New("no list store configured")

// Module exposes lists to one runtime. Every operation is available both as a
// method of a list object and as a module function taking the list first:
//
//	const list = require("lnodelist")
//	const l = list.new(1, 2)
//	l.push(3)
//	list.push(l, 4)
type Module struct {
	runtime *goja.Runtime
	reg     *registry.Registry
	dao     dao.Dao
	key     *goja.Symbol
	proto   *goja.Object
}

type operation func(l *list.List, args []goja.Value) goja.Value

func Require(runtime *goja.Runtime, module *goja.Object) {
	RequireWithDao(nil)(runtime, module)
}

// RequireWithDao returns a loader whose save/load use d.
func RequireWithDao(d dao.Dao) require.ModuleLoader {
	return func(runtime *goja.Runtime, module *goja.Object) {
		m := &Module{
			runtime: runtime,
			reg:     registry.Default,
			dao:     d,
			key:     goja.NewSymbol("lnodelist.list"),
			proto:   runtime.NewObject(),
		}
		obj := module.Get("exports").(*goja.Object)
		for name, op := range m.operations() {
			_ = m.proto.Set(name, m.method(op))
			_ = obj.Set(name, m.function(op))
		}
		_ = m.proto.Set("toString", m.method(m.toString))
		_ = m.proto.DefineAccessorProperty("length", runtime.ToValue(m.method(m.size)), nil, goja.FLAG_FALSE, goja.FLAG_FALSE)
		_ = obj.Set("new", m.jsNew)
		_ = obj.Set("save", m.jsSave)
		_ = obj.Set("load", m.jsLoad)
	}
}

func (m *Module) operations() map[string]operation {
	return map[string]operation{
		"size":       m.size,
		"push":       m.push,
		"pushleft":   m.pushLeft,
		"pop":        m.pop,
		"popleft":    m.popLeft,
		"remove":     m.remove,
		"removeleft": m.removeLeft,
		"set":        m.set,
		"get":        m.get,
		"insert":     m.insert,
		"delete":     m.delete,
		"reverse":    m.reverse,
		"clear":      m.clear,
		"extend":     m.extend,
		"slice":      m.slice,
		"join":       m.join,
		"foreach":    m.foreach,
		"map":        m.mapValues,
		"some":       m.some,
		"find":       m.find,
	}
}

// wrap builds the script object owning l.
func (m *Module) wrap(l *list.List) *goja.Object {
	obj := m.runtime.NewObject()
	_ = obj.SetPrototype(m.proto)
	_ = obj.DefineDataPropertySymbol(m.key, m.runtime.ToValue(l), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
	return obj
}

func (m *Module) self(v goja.Value) *list.List {
	if obj, ok := v.(*goja.Object); ok {
		if inner := obj.GetSymbol(m.key); inner != nil {
			if l, ok := inner.Export().(*list.List); ok {
				return l
			}
		}
	}
	panic(m.runtime.NewTypeError("list expected"))
}

func (m *Module) method(op operation) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		return op(m.self(call.This), call.Arguments)
	}
}

func (m *Module) function(op operation) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		var rest []goja.Value
		if len(call.Arguments) > 1 {
			rest = call.Arguments[1:]
		}
		return op(m.self(call.Argument(0)), rest)
	}
}

func (m *Module) throw(err error) {
	if err != nil {
		panic(m.runtime.NewGoError(err))
	}
}

func (m *Module) callback(args []goja.Value) goja.Callable {
	var fn goja.Value = goja.Undefined()
	if len(args) > 0 {
		fn = args[0]
	}
	if f, ok := goja.AssertFunction(fn); ok {
		return f
	}
	panic(m.runtime.NewTypeError("function expected"))
}

// call invokes a script callback with (value, index), rethrowing what it throws.
func (m *Module) call(f goja.Callable, val any, idx int) goja.Value {
	res, err := f(goja.Undefined(), m.toJS(val), m.runtime.ToValue(idx))
	if err != nil {
		panic(err)
	}
	return res
}

func arg(args []goja.Value, i int) goja.Value {
	if i < len(args) {
		return args[i]
	}
	return goja.Undefined()
}

/***************Module functions************************/

func (m *Module) jsNew(call goja.FunctionCall) goja.Value {
	l := list.New(list.WithRegistry(m.reg))
	for _, v := range call.Arguments {
		l.Push(toHost(v))
	}
	return m.wrap(l)
}

func (m *Module) jsSave(call goja.FunctionCall) goja.Value {
	if m.dao == nil {
		m.throw(errNoStore)
	}
	name := call.Argument(0).String()
	m.throw(m.dao.SaveList(name, m.self(call.Argument(1))))
	return goja.Undefined()
}

func (m *Module) jsLoad(call goja.FunctionCall) goja.Value {
	if m.dao == nil {
		m.throw(errNoStore)
	}
	l, err := m.dao.LoadList(call.Argument(0).String())
	m.throw(err)
	return m.wrap(l)
}

/***************List operations*************************/

func (m *Module) size(l *list.List, _ []goja.Value) goja.Value {
	return m.runtime.ToValue(l.Size())
}

func (m *Module) toString(l *list.List, _ []goja.Value) goja.Value {
	return m.runtime.ToValue(l.String())
}

func (m *Module) push(l *list.List, args []goja.Value) goja.Value {
	l.Push(toHost(arg(args, 0)))
	return goja.Undefined()
}

func (m *Module) pushLeft(l *list.List, args []goja.Value) goja.Value {
	l.PushLeft(toHost(arg(args, 0)))
	return goja.Undefined()
}

func (m *Module) pop(l *list.List, _ []goja.Value) goja.Value {
	v, err := l.Pop()
	m.throw(err)
	return m.toJS(v)
}

func (m *Module) popLeft(l *list.List, _ []goja.Value) goja.Value {
	v, err := l.PopLeft()
	m.throw(err)
	return m.toJS(v)
}

func (m *Module) remove(l *list.List, _ []goja.Value) goja.Value {
	m.throw(l.Remove())
	return goja.Undefined()
}

func (m *Module) removeLeft(l *list.List, _ []goja.Value) goja.Value {
	m.throw(l.RemoveLeft())
	return goja.Undefined()
}

func (m *Module) set(l *list.List, args []goja.Value) goja.Value {
	m.throw(l.Set(m.index(arg(args, 0)), toHost(arg(args, 1))))
	return goja.Undefined()
}

func (m *Module) get(l *list.List, args []goja.Value) goja.Value {
	v, err := l.Get(m.index(arg(args, 0)))
	m.throw(err)
	return m.toJS(v)
}

func (m *Module) insert(l *list.List, args []goja.Value) goja.Value {
	m.throw(l.Insert(m.index(arg(args, 0)), toHost(arg(args, 1))))
	return goja.Undefined()
}

func (m *Module) delete(l *list.List, args []goja.Value) goja.Value {
	m.throw(l.Delete(m.index(arg(args, 0))))
	return goja.Undefined()
}

func (m *Module) reverse(l *list.List, _ []goja.Value) goja.Value {
	l.Reverse()
	return goja.Undefined()
}

func (m *Module) clear(l *list.List, _ []goja.Value) goja.Value {
	l.Clear()
	return goja.Undefined()
}

func (m *Module) extend(l *list.List, args []goja.Value) goja.Value {
	l.Extend(m.self(arg(args, 0)))
	return goja.Undefined()
}

func (m *Module) slice(l *list.List, args []goja.Value) goja.Value {
	sl, err := l.Slice(m.optBounds(l, args, 0)...)
	m.throw(err)
	return m.wrap(sl)
}

func (m *Module) join(l *list.List, args []goja.Value) goja.Value {
	sep := ""
	if argCheck(arg(args, 0)) {
		sep = args[0].String()
	}
	s, err := l.Join(sep, m.optBounds(l, args, 1)...)
	m.throw(err)
	return m.runtime.ToValue(s)
}

func (m *Module) foreach(l *list.List, args []goja.Value) goja.Value {
	f := m.callback(args)
	l.ForEach(func(val any, idx int) {
		m.call(f, val, idx)
	})
	return goja.Undefined()
}

func (m *Module) mapValues(l *list.List, args []goja.Value) goja.Value {
	f := m.callback(args)
	l.Map(func(val any, idx int) any {
		return toHost(m.call(f, val, idx))
	})
	return goja.Undefined()
}

func (m *Module) some(l *list.List, args []goja.Value) goja.Value {
	f := m.callback(args)
	return m.runtime.ToValue(l.Some(func(val any, idx int) bool {
		return m.call(f, val, idx).ToBoolean()
	}))
}

func (m *Module) find(l *list.List, args []goja.Value) goja.Value {
	f := m.callback(args)
	return m.toJS(l.Find(func(val any, idx int) bool {
		return m.call(f, val, idx).ToBoolean()
	}))
}
