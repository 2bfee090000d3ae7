// Command xd writes a hex dump of a file or standard input.
//
// Usage:
//
//	xd [flags] [file]
//
// With no file, xd reads standard input. With -r it reads a dump and writes
// the original bytes back.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/xd"
	"github.com/gogpu/xd/backend"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errUsage marks errors caused by bad command-line arguments.
var errUsage = errors.New("usage")

type config struct {
	digits  int
	chunk   int
	backend string
	zstd    bool
	reverse bool
	verbose bool
	list    bool
	path    string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("xd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.digits, "a", xd.DefaultAddrDigits, "offset width in hex digits (1-16)")
	fs.IntVar(&cfg.chunk, "chunk", xd.DefaultChunkSize, "input bytes per read, multiple of 16")
	fs.StringVar(&cfg.backend, "backend", "", "line encoder (default: best for this CPU)")
	fs.BoolVar(&cfg.zstd, "z", false, "input is zstd compressed")
	fs.BoolVar(&cfg.reverse, "r", false, "reverse: read a dump and write the original bytes")
	fs.BoolVar(&cfg.verbose, "v", false, "log progress and a summary to stderr")
	fs.BoolVar(&cfg.list, "list", false, "list line encoders and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: xd [flags] [file]\n\nflags:\n")
		fs.PrintDefaults()
	}

	// Parse reports its own errors (and the usage text) to stderr.
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.path = fs.Arg(0)
	default:
		fs.Usage()
		return cfg, fmt.Errorf("%w: at most one input file", errUsage)
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errUsage) {
			fail(stderr, err)
		}
		return 2
	}

	if cfg.list {
		def := backend.Default()
		for _, name := range backend.Available() {
			mark := ""
			if def != nil && name == def.Name() {
				mark = " (default)"
			}
			fmt.Fprintf(stdout, "%s%s\n", name, mark)
		}
		return 0
	}

	if cfg.verbose {
		xd.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer xd.SetLogger(nil)
	}

	in, closeIn, err := openInput(cfg.path, cfg.zstd, stdin)
	if err != nil {
		fail(stderr, err)
		return 1
	}
	defer closeIn()

	start := time.Now()
	var (
		n     int64
		lines int64
	)
	if cfg.reverse {
		n, err = xd.Undump(stdout, in, cfg.digits)
	} else {
		var st xd.Stats
		st, err = xd.Dump(stdout, in,
			xd.WithAddrDigits(cfg.digits),
			xd.WithChunkSize(cfg.chunk),
			xd.WithBackend(cfg.backend))
		n, lines = st.Bytes, st.Lines
	}
	if err != nil {
		fail(stderr, err)
		if errors.Is(err, xd.ErrInvalidAddrDigits) ||
			errors.Is(err, xd.ErrInvalidChunkSize) ||
			errors.Is(err, xd.ErrUnknownBackend) {
			return 2
		}
		return 1
	}

	if cfg.verbose {
		summarize(stderr, cfg.reverse, n, lines, time.Since(start))
	}
	return 0
}

// openInput opens path, or returns stdin when path is empty or "-".
// With compressed set the stream is decoded as zstd.
func openInput(path string, compressed bool, stdin io.Reader) (io.Reader, func(), error) {
	var (
		r       = stdin
		closers []func()
	)
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		r = f
		closers = append(closers, func() { _ = f.Close() })
	}

	if compressed {
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		r = dec
		closers = append(closers, dec.Close)
	}

	return r, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}

// summarize prints one line with grouped byte counts, e.g.
// "xd: 1,048,576 bytes, 65,536 lines in 3ms".
func summarize(w io.Writer, reverse bool, n, lines int64, elapsed time.Duration) {
	p := message.NewPrinter(language.English)
	if reverse {
		p.Fprintf(w, "xd: restored %d bytes in %v\n", n, elapsed.Round(time.Microsecond))
		return
	}
	p.Fprintf(w, "xd: %d bytes, %d lines in %v\n", n, lines, elapsed.Round(time.Microsecond))
}

// fail prints err to w behind a red "error:" prefix.
func fail(w io.Writer, err error) {
	prefix := color.New(color.FgRed, color.Bold)
	_, _ = prefix.Fprint(w, "error:")
	fmt.Fprintf(w, " %v\n", err)
}
