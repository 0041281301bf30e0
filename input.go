package festival

import (
	"errors"
	"os"
	"syscall"
	"time"
)

// readPollInterval bounds how long rawReadLoop blocks before it
// re-checks done, since a tty Read has no other way to be cancelled
// from outside the goroutine that issued it.
const readPollInterval = 200 * time.Millisecond

// startInputReader spawns the background worker that reads /dev/tty,
// decodes bytes into events via parseEvent, and delivers them on
// events. It terminates when done is closed or the tty read end
// reports a non-retryable error.
func startInputReader(tty *os.File, arrows ArrowSequences, events chan<- Event, done <-chan struct{}) {
	go inputLoop(tty, arrows, events, done)
}

func inputLoop(tty *os.File, arrows ArrowSequences, events chan<- Event, done <-chan struct{}) {
	// A single goroutine owns the blocking Read calls; everything else
	// communicates with it over rawCh, so there is exactly one reader
	// of the file at any time.
	rawCh := make(chan []byte, 16)
	go rawReadLoop(tty, rawCh, done)

	var acc []byte
	for {
		for {
			consumed, ev, ok := parseEvent(acc, arrows)
			if !ok {
				break
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
			acc = acc[consumed:]
			if consumed == 0 {
				// parseEvent must always make progress once it
				// reports ok; this guards against an accidental
				// infinite loop if that invariant is ever broken.
				break
			}
		}

		select {
		case <-done:
			return
		case chunk, ok := <-rawCh:
			if !ok {
				return
			}
			acc = append(acc, chunk...)
		}
	}
}

// rawReadLoop performs reads of the tty and forwards whatever bytes
// arrive. Each read carries a short deadline so the loop wakes up and
// checks done periodically instead of blocking on Read indefinitely.
// A deadline expiring with no data, EAGAIN (would block) and EINVAL
// (invalid input) are retried. Any other error closes rawCh, which
// the decode loop treats as shutdown.
func rawReadLoop(tty *os.File, rawCh chan<- []byte, done <-chan struct{}) {
	defer close(rawCh)
	buf := make([]byte, 64)
	for {
		select {
		case <-done:
			return
		default:
		}

		if err := tty.SetReadDeadline(time.Now().Add(readPollInterval)); err != nil {
			return
		}
		n, err := tty.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			rawCh <- chunk
		}
		if err != nil {
			if isRetryable(err) {
				continue
			}
			return
		}
	}
}

func isRetryable(err error) bool {
	return errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EINVAL)
}
