package seedling

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
)

// logger receives warnings about missing references and invalid operations.
// None of these are fatal; the operation is skipped and the sequence goes on.
var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger replaces the logger used for warnings. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

func logf(format string, args ...any) {
	logger.Printf("seedling: "+format, args...)
}

// debugOut is where the coloured debug trace goes.
var debugOut io.Writer = os.Stderr

var (
	traceStage = color.Style{color.FgGreen, color.OpBold}
	traceGate  = color.Style{color.FgCyan}
	traceInfo  = color.Style{color.FgGray}
)

// debugf prints an informational trace line. Only called in debug mode.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintln(debugOut, traceInfo.Sprintf("[seedling] "+format, args...))
}

// debugStage prints a stage transition trace line.
func debugStage(format string, args ...any) {
	_, _ = fmt.Fprintln(debugOut, traceStage.Sprintf("[seedling] "+format, args...))
}

// debugGate prints an advance-gate trace line.
func debugGate(format string, args ...any) {
	_, _ = fmt.Fprintln(debugOut, traceGate.Sprintf("[seedling] "+format, args...))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("seedling debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[seedling] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
