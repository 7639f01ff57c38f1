package telemetry

import (
	"bufio"
	"context"
	"io"
)

// maxLineLen bounds a console line. Longer runs without a newline are
// delivered in maxLineLen chunks so serial noise cannot stop the watcher.
const maxLineLen = 4096

// scanLines is bufio.ScanLines with overlong lines split into chunks
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanLines(data, atEOF)
	if advance == 0 && token == nil && err == nil && len(data) >= maxLineLen {
		return maxLineLen, data[:maxLineLen], nil
	}
	return advance, token, err
}

// Event is one console line. Report is set when the line decoded as a sample.
type Event struct {
	Line   string
	Report *Report
	Banner bool
}

// Watch reads console lines from r and passes each to handle until r is
// exhausted or ctx is cancelled. It returns ctx.Err() on cancellation and
// nil at end of input.
func Watch(ctx context.Context, r io.Reader, handle func(Event)) error {
	scan := bufio.NewScanner(r)
	scan.Split(scanLines)

	lineChan := make(chan string)
	scanErrChan := make(chan error, 1)

	// Scan blocks on the port, so it runs apart from the cancellation select
	go func() {
		defer close(lineChan)
		for scan.Scan() {
			select {
			case lineChan <- scan.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scan.Err(); err != nil {
			scanErrChan <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lineChan:
			if !ok {
				select {
				case err := <-scanErrChan:
					return err
				default:
					return nil
				}
			}
			handle(decode(line))
		}
	}
}

func decode(line string) Event {
	ev := Event{Line: line, Banner: IsBanner(line)}
	if ev.Banner {
		return ev
	}
	if rep, err := ParseReport(line); err == nil {
		ev.Report = &rep
	}
	return ev
}
