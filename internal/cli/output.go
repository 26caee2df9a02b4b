package cli

import (
	"fmt"
	"io"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"github.com/gookit/color"
)

// PrintError reports err the way rtenv reports all fatal errors:
// "rtenv: <message>" on w. Errors that only carry an exit status print nothing.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Silent() {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.Red.Sprint(fsutil.AppName+":"), err)
}

// printNote writes an informational line to w.
func printNote(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", color.Yellow.Sprint("note:"), fmt.Sprintf(format, args...))
}
