package cli

import (
	"fmt"
	"io"

	gixerrors "gix.dev/gix/internal/errors"
	"gix.dev/gix/internal/tui"
)

// ReportError prints err and every hint attached to it.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(w, tui.FormatError(err.Error()))
	for _, hint := range gixerrors.Hints(err) {
		_, _ = fmt.Fprintln(w, tui.FormatHint(hint))
	}
}
