package hexinput

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/nxadm/tail"

	"x86dis/internal/disasm"
)

// Follower streams hex bytes from a file that keeps growing, the way
// tail -f does. Reads block until more text is appended.
type Follower struct {
	ctx     context.Context
	t       *tail.Tail
	logger  *log.Logger
	pending []string
	r       Reader
}

// Follow starts tailing path from its beginning.
func Follow(ctx context.Context, path string, logger *log.Logger) (*Follower, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekStart},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to follow %s: %w", path, err)
	}
	return &Follower{ctx: ctx, t: t, logger: logger, r: Reader{logger: logger}}, nil
}

// ReadByte returns the next byte, waiting for new lines as needed. It
// returns io.EOF once the context is done, the tail stops or a malformed
// token is seen.
func (f *Follower) ReadByte() (byte, error) {
	for len(f.pending) == 0 {
		if f.r.err != nil {
			return 0, io.EOF
		}
		select {
		case <-f.ctx.Done():
			return 0, io.EOF
		case line, ok := <-f.t.Lines:
			if !ok {
				return 0, io.EOF
			}
			if line.Err != nil {
				f.r.err = line.Err
				return 0, io.EOF
			}
			f.pending = strings.Fields(line.Text)
		}
	}
	tok := f.pending[0]
	f.pending = f.pending[1:]
	return f.r.decode(tok)
}

// Err returns the error that ended the stream early, if any.
func (f *Follower) Err() error { return f.r.err }

// Hook adapts f to a decoder input hook.
func (f *Follower) Hook() disasm.InputHook {
	return func(any) (byte, error) { return f.ReadByte() }
}

// Close stops tailing and releases the file.
func (f *Follower) Close() error {
	err := f.t.Stop()
	f.t.Cleanup()
	return err
}
