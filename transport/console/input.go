package console

import (
	"bufio"
	"context"
	"io"
)

// Input reads console lines on its own goroutine so that a cancelled context releases a
// caller blocked on ReadLine.
type Input struct {
	ctx   context.Context
	lines chan string
	err   error
}

func NewInput(ctx context.Context, reader io.Reader) *Input {
	input := &Input{
		ctx:   ctx,
		lines: make(chan string),
	}

	go input.scan(reader)

	return input
}

func (that *Input) scan(reader io.Reader) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-that.ctx.Done():
			return
		}
	}

	// err is published before close, so a reader that sees the closed channel sees it too.
	that.err = scanner.Err()
	if that.err == nil {
		that.err = io.EOF
	}

	close(that.lines)
}

// ReadLine returns the next line without its terminator, io.EOF once the input is exhausted,
// or the context error after cancellation.
func (that *Input) ReadLine() (string, error) {
	select {
	case line, ok := <-that.lines:
		if !ok {
			return "", that.err
		}

		return line, nil
	case <-that.ctx.Done():
		return "", that.ctx.Err()
	}
}
