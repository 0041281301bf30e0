package festival

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"festival/internal/ttyio"
)

// startResizeWatcher spawns the background worker that waits on
// SIGWINCH, re-queries the terminal dimensions, resizes the screen
// under mu, and emits a Resize event *after* the resize has completed
// so that application code reading dimensions on receipt of the event
// observes the new size.
func startResizeWatcher(tty *os.File, screen resizable, mu *sync.Mutex, events chan<- Event, done <-chan struct{}) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-done:
				return
			case <-sigCh:
				w, h, err := ttyio.WindowSize(tty)
				if err != nil {
					continue
				}
				mu.Lock()
				screen.Resize(w, h)
				mu.Unlock()
				select {
				case events <- resizeEvent(w, h):
				case <-done:
					return
				}
			}
		}
	}()
}

// resizable is the subset of *termscreen.Screen the resize watcher
// needs; kept as an interface so this file doesn't need to import
// termscreen directly.
type resizable interface {
	Resize(width, height int)
}
