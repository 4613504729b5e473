// Package term drives a session from a terminal, either as a plain stream of
// text frames or as an interactive tcell view.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emjomi/life/internal/logging"
	"github.com/emjomi/life/internal/session"
	"github.com/emjomi/life/internal/ui"
)

const clearScreen = "\x1b[2J\x1b[H"

func interval(tps int) time.Duration {
	if tps <= 0 {
		tps = 1
	}
	return time.Second / time.Duration(tps)
}

// RunText prints a frame per generation to w until ctx is done or, when
// generations is positive, that many generations have been shown.
func RunText(ctx context.Context, w io.Writer, sess *session.Session, generations int) error {
	log := logging.FromContext(ctx)
	if !sess.Running() {
		sess.ToggleRunning()
	}
	log.Debug("text mode started", "generations", generations, "tps", sess.TPS())
	ticker := time.NewTicker(interval(sess.TPS()))
	defer ticker.Stop()

	for shown := 0; ; shown++ {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", clearScreen, sess.String(), ui.StatusLine(sess.Parameters())); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		if generations > 0 && shown >= generations {
			log.Debug("generation limit reached", "generations", generations)
			return nil
		}
		select {
		case <-ctx.Done():
			log.Debug("text mode interrupted", "generation", sess.Generation())
			return nil
		case <-ticker.C:
		}
		sess.Tick()
	}
}
