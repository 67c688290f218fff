package scripts

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	VM   intvm.Module
	Logs logs.Module
}
