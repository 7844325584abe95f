package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/slipway-sh/slipway/pkg/slipway/application/service"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func NewConsoleReporter(out io.Writer) service.Reporter {
	return &console{out: out}
}

type console struct {
	out io.Writer
}

func (r console) Step(label string) {
	fmt.Fprintln(r.out, cyan("=====> "+label))
}

func (r console) Warn(label string) {
	fmt.Fprintln(r.out, yellow("warning: "+label))
}

func (r console) Fail(label string, err error) {
	fmt.Fprintln(r.out, red(fmt.Sprintf("error: %v: %v", label, err)))
}
