package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/hosts"
	"github.com/reusee/intcode/scripts"
)

type Module struct {
	dscope.Module
	Hosts   hosts.Module
	Scripts scripts.Module
	Debugs  debugs.Module
	Configs configs.Module
}

type ProgramFile string

func (ProgramFile) ConfigPath() string {
	return "program"
}

type Inputs []int64

func (Inputs) ConfigPath() string {
	return "inputs"
}

type Phases []int64

func (Phases) ConfigPath() string {
	return "phases"
}

type Feedback bool

func (Feedback) ConfigPath() string {
	return "feedback"
}

var (
	_ configs.Configurable = ProgramFile("")
	_ configs.Configurable = Inputs(nil)
	_ configs.Configurable = Phases(nil)
	_ configs.Configurable = Feedback(false)
)
