package configs

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
)

type Module struct {
	dscope.Module
}

var configFiles = cmds.Collect[string]("-config")

func init() {
	cmds.GlobalExecutor.Define("-schema", cmds.Func(func() {
		fmt.Print(Schema)
	}).Desc("print configuration schema"))
}

func (Module) Loader() Loader {
	return NewLoader(*configFiles, Schema)
}
