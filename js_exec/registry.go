package js_exec

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
	"io"
	"lnodelist/dao"
	"lnodelist/js_exec/debug_out"
	"lnodelist/js_exec/nodelist"
)

// newRegistry wires the native modules a script may require.
// The list module saves to and loads from d; d may be nil.
func newRegistry(d dao.Dao) *require.Registry {
	registry := require.NewRegistry()
	registry.RegisterNativeModule(nodelist.ModuleName, nodelist.RequireWithDao(d))
	return registry
}

func LoadModules(vm *goja.Runtime, d dao.Dao) {
	registry := newRegistry(d)
	registry.RegisterNativeModule(console.ModuleName, console.Require)
	registry.Enable(vm)
	console.Enable(vm)
}

// LoadModulesForDebugMode routes the script console to writer.
func LoadModulesForDebugMode(vm *goja.Runtime, d dao.Dao, writer io.Writer) {
	debugRegistry := newRegistry(d)
	debugRegistry.RegisterNativeModule(debug_out.ModuleName, debug_out.Require)
	debugRegistry.Enable(vm)
	debug_out.Enable(vm)
	debug_out.SetIoWriter(vm, writer)
}
