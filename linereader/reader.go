// Package linereader reads newline-delimited text from files and streams.
//
// Each line is one input for the numeronym generator. Files can be read
// once or followed as they grow, the way tail -f does:
//
//	r, err := linereader.NewReader("words.txt")
//	if err != nil { ... }
//	defer r.Close()
//
//	for line := range r.Tail(ctx) {
//	    fmt.Println(numeronym.Generate(line))
//	}
package linereader

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// MaxLineSize is the longest line the reader accepts.
const MaxLineSize = 10 * 1024 * 1024

// DefaultPollInterval is how often Tail checks the file when fsnotify is
// unavailable.
const DefaultPollInterval = 100 * time.Millisecond

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger for watcher diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPollInterval sets the polling interval used when fsnotify is unavailable.
func WithPollInterval(d time.Duration) Option {
	return func(r *Reader) {
		if d > 0 {
			r.pollInterval = d
		}
	}
}

// WithMaxLineSize sets the longest line Tail and ReadComplete accept.
func WithMaxLineSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxLineSize = n
		}
	}
}

// WithPolling disables fsnotify so Tail always polls.
func WithPolling() Option {
	return func(r *Reader) {
		r.forcePolling = true
	}
}

// Reader reads lines from a file.
type Reader struct {
	path         string
	file         *os.File
	logger       *slog.Logger
	pollInterval time.Duration
	forcePolling bool
	maxLineSize  int
}

// NewReader opens the file at path.
func NewReader(path string, opts ...Option) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	r := &Reader{
		path:         path,
		file:         file,
		logger:       slog.Default(),
		pollInterval: DefaultPollInterval,
		maxLineSize:  MaxLineSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Path returns the file path being read.
func (r *Reader) Path() string {
	return r.path
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadAll reads every line of the file from the beginning.
func (r *Reader) ReadAll() ([]string, error) {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to start: %w", err)
	}
	return Lines(r.file)
}

// ReadComplete reads every newline-terminated line from the beginning of
// the file. It returns the byte offset just past the last complete line, so
// an unterminated final line is left for TailFrom to pick up once it ends.
func (r *Reader) ReadComplete() ([]string, int64, error) {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("seek to start: %w", err)
	}

	var (
		lines  []string
		offset int64
	)
	reader := bufio.NewReader(r.file)
	for {
		chunk, err := reader.ReadBytes('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, offset, nil
			}
			return nil, 0, fmt.Errorf("read lines: %w", err)
		}
		if len(chunk) > r.maxLineSize {
			return nil, 0, fmt.Errorf("read lines: %w", bufio.ErrTooLong)
		}
		offset += int64(len(chunk))
		lines = append(lines, trimEOL(chunk))
	}
}

// Tail follows the file from its current end and sends each new complete
// line to the returned channel. The channel is closed when ctx is done.
// Uses fsnotify when available and falls back to polling.
func (r *Reader) Tail(ctx context.Context) <-chan string {
	offset, err := r.file.Seek(0, io.SeekEnd)
	if err != nil {
		r.logger.Debug("tail seek failed", slog.String("path", r.path), slog.Any("error", err))
		ch := make(chan string)
		close(ch)
		return ch
	}
	return r.TailFrom(ctx, offset)
}

// TailFrom is like Tail but starts at the given byte offset, typically the
// one returned by ReadComplete. Lines already in the file past offset are
// sent first.
func (r *Reader) TailFrom(ctx context.Context, offset int64) <-chan string {
	ch := make(chan string, 100)

	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		r.logger.Debug("tail seek failed", slog.String("path", r.path), slog.Any("error", err))
		close(ch)
		return ch
	}

	t := &tailer{r: r, ch: ch, offset: offset, reader: bufio.NewReader(r.file)}

	var watcher *fsnotify.Watcher
	if !r.forcePolling {
		var err error
		watcher, err = fsnotify.NewWatcher()
		if err == nil {
			// Watching the directory survives editors that replace the file.
			if addErr := watcher.Add(filepath.Dir(r.path)); addErr != nil {
				watcher.Close()
				watcher = nil
				err = addErr
			}
		}
		if err != nil {
			r.logger.Debug("fsnotify unavailable, polling", slog.String("path", r.path), slog.Any("error", err))
		}
	}

	go func() {
		defer close(ch)
		if watcher != nil {
			defer watcher.Close()
			t.watch(ctx, watcher)
			return
		}
		t.poll(ctx)
	}()

	return ch
}

// tailer holds the state of one Tail call.
type tailer struct {
	r       *Reader
	ch      chan<- string
	reader  *bufio.Reader
	offset  int64
	pending []byte

	// discarding is set while skipping the rest of an oversized line.
	discarding bool
}

// watch uses fsnotify to read new lines whenever the file is written.
func (t *tailer) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(t.r.path)

	// Catch writes that landed before the watch was registered.
	if !t.readNew(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if !t.readNew(ctx) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			t.r.logger.Debug("watcher error", slog.String("path", t.r.path), slog.Any("error", err))
		}
	}
}

// poll reads new lines on a fixed interval when fsnotify isn't available.
func (t *tailer) poll(ctx context.Context) {
	ticker := time.NewTicker(t.r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.readNew(ctx) {
				return
			}
		}
	}
}

// readNew sends every complete line written since the last read.
// Returns false when ctx is done.
func (t *tailer) readNew(ctx context.Context) bool {
	info, err := t.r.file.Stat()
	if err != nil {
		return true
	}
	if info.Size() < t.offset {
		// Truncated: start over.
		if _, err := t.r.file.Seek(0, io.SeekStart); err != nil {
			return true
		}
		t.offset = 0
		t.pending = t.pending[:0]
		t.discarding = false
		t.reader.Reset(t.r.file)
	}

	for {
		chunk, err := t.reader.ReadBytes('\n')
		t.offset += int64(len(chunk))

		if t.discarding {
			if err != nil {
				return true
			}
			// Reached the end of the oversized line.
			t.discarding = false
			continue
		}

		t.pending = append(t.pending, chunk...)

		if err != nil {
			// Partial line; wait for the rest.
			if len(t.pending) > t.r.maxLineSize {
				t.r.logger.Debug("dropping oversized line", slog.String("path", t.r.path), slog.Int("bytes", len(t.pending)))
				t.pending = t.pending[:0]
				t.discarding = true
			}
			return true
		}

		if len(t.pending) > t.r.maxLineSize {
			t.r.logger.Debug("dropping oversized line", slog.String("path", t.r.path), slog.Int("bytes", len(t.pending)))
			t.pending = t.pending[:0]
			continue
		}

		line := trimEOL(t.pending)
		t.pending = t.pending[:0]

		select {
		case t.ch <- line:
		case <-ctx.Done():
			return false
		}
	}
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(b []byte) string {
	return string(bytes.TrimSuffix(bytes.TrimSuffix(b, []byte("\n")), []byte("\r")))
}
