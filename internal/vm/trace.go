package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lyre-lang/lyre/internal/config"
)

const (
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// tracer writes one line per executed instruction: index, mnemonic, and the
// operand/call stack depths before the instruction runs.
type tracer struct {
	w     io.Writer
	color bool
}

func newTracer(w io.Writer, mode string) *tracer {
	return &tracer{w: w, color: useColor(w, mode)}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *tracer) instruction(ip int, in *Instruction, stackDepth, frameDepth int) {
	if t.color {
		fmt.Fprintf(t.w, "%s%04d%s %s%-24s%s %sstack=%d frames=%d%s\n",
			ansiDim, ip, ansiReset,
			ansiCyan, in.String(), ansiReset,
			ansiDim, stackDepth, frameDepth, ansiReset)
		return
	}
	fmt.Fprintf(t.w, "%04d %-24s stack=%d frames=%d\n", ip, in.String(), stackDepth, frameDepth)
}
