package debug_out

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"github.com/dop251/goja_nodejs/util"
	"io"
	"os"
)

const ModuleName = "debug_console"

// Console formats like node's console but writes every line to one writer,
// so a script run can be captured or streamed.
type Console struct {
	runtime *goja.Runtime
	util    *goja.Object
	writer  io.Writer
}

var defaultWriter io.Writer = os.Stdout

func (c *Console) log(level string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if format, ok := goja.AssertFunction(c.util.Get("format")); ok {
			ret, err := format(c.util, call.Arguments...)
			if err != nil {
				panic(err)
			}
			c.write(level, ret.String())
		} else {
			panic(c.runtime.NewTypeError("util.format is not a function"))
		}

		return nil
	}
}

func (c *Console) write(level string, s string) {
	if level != "" {
		s = "[" + level + "] " + s
	}
	_, _ = c.writer.Write([]byte(s + "\n"))
}

func Require(runtime *goja.Runtime, module *goja.Object) {
	requireWithPrinter(defaultWriter)(runtime, module)
}

func requireWithPrinter(writer io.Writer) require.ModuleLoader {
	return func(runtime *goja.Runtime, module *goja.Object) {
		c := &Console{
			runtime: runtime,
			writer:  writer,
		}

		c.util = require.Require(runtime, util.ModuleName).(*goja.Object)

		o := module.Get("exports").(*goja.Object)
		c.export(o)
	}
}

func (c *Console) export(o *goja.Object) {
	_ = o.Set("log", c.log(""))
	_ = o.Set("info", c.log(""))
	_ = o.Set("error", c.log("error"))
	_ = o.Set("warn", c.log("warn"))
}

func Enable(runtime *goja.Runtime) {
	runtime.Set("console", require.Require(runtime, ModuleName))
}

// SetIoWriter points the global console of runtime at writer.
func SetIoWriter(runtime *goja.Runtime, writer io.Writer) {
	var s = runtime.Get("console").(*goja.Object)
	var c = &Console{
		runtime: runtime,
		util:    require.Require(runtime, util.ModuleName).(*goja.Object),
		writer:  writer,
	}
	c.export(s)
}
