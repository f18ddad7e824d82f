package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"x86dis/internal/disasm"
	"x86dis/internal/elfx"
	"x86dis/internal/hexinput"
	"x86dis/internal/symbols"
)

// source is an opened input feeding a decoder.
type source struct {
	closers []io.Closer

	// image and labels are set for ELF input
	image  *elfx.Image
	labels *symbols.Table
	follow bool
}

func (s *source) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openSource attaches the input selected by cfg to d. path is empty for
// stdin. modeSet and originSet report whether the user chose them, so
// that ELF input can fill them in.
func openSource(ctx context.Context, cfg *Config, d *disasm.Decoder, path string, stdin io.Reader, logger *log.Logger, modeSet, originSet bool) (*source, error) {
	src := &source{}
	switch {
	case cfg.ELF:
		if err := src.openELF(cfg, d, path, logger, modeSet, originSet); err != nil {
			src.Close()
			return nil, err
		}

	case cfg.Follow:
		if path == "" {
			return nil, fmt.Errorf("--follow needs a file")
		}
		f, err := hexinput.Follow(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		src.closers = append(src.closers, f)
		src.follow = true
		d.SetInputHook(hexinput.Limit(f.Hook(), cfg.limit()))

	case cfg.Hex:
		r, err := src.openReader(path, stdin)
		if err != nil {
			return nil, err
		}
		hr := hexinput.NewReader(r, logger)
		d.SetInputHook(hexinput.Limit(hr.Hook(), cfg.limit()))

	default:
		r, err := src.openReader(path, stdin)
		if err != nil {
			return nil, err
		}
		if n := cfg.limit(); n >= 0 {
			r = io.LimitReader(r, n)
		}
		d.SetInputReader(r)
	}

	d.Skip(int(cfg.Skip))
	return src, nil
}

func (s *source) openReader(path string, stdin io.Reader) (io.Reader, error) {
	if path == "" || path == "-" {
		return stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	s.closers = append(s.closers, f)
	return f, nil
}

func (s *source) openELF(cfg *Config, d *disasm.Decoder, path string, logger *log.Logger, modeSet, originSet bool) error {
	if path == "" {
		return fmt.Errorf("--elf needs a file")
	}
	im, err := elfx.Open(path)
	if err != nil {
		return err
	}
	s.closers = append(s.closers, im)
	s.image = im

	if !modeSet {
		d.SetMode(im.Mode)
	} else if d.Mode() != im.Mode {
		logger.Warn("Decoding mode differs from the ELF class", "mode", d.Mode(), "elf", im.Mode)
	}

	s.labels = symbols.FromImage(im, symbols.WithDemangling(nil))
	d.SetSymbolResolver(s.labels)
	logger.Debug("Loaded symbols", "count", s.labels.Len(), "plt", len(im.PLTRels))

	va, size := im.Text.VA, im.Text.Size
	if cfg.Symbol != "" {
		sym, ok := im.FindFunctionByName(cfg.Symbol)
		if !ok {
			return fmt.Errorf("symbol %q not found in %s", cfg.Symbol, path)
		}
		va, size = sym.Addr, sym.Size
		if size == 0 && im.Text.Contains(va) {
			size = im.Text.VA + im.Text.Size - va
		}
	}
	code, ok := im.SliceVA(va, size)
	if !ok {
		return fmt.Errorf("no code at %#x in %s", va, path)
	}
	if n := cfg.limit(); n >= 0 && n < int64(len(code)) {
		code = code[:n]
	}
	if !originSet {
		d.SetPC(va)
	}
	d.SetInputBuffer(code)
	return nil
}
