package recordio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/varicode"
)

var (
	// ErrClosed is returned when the log is used after Close.
	ErrClosed = errors.New("recordio: closed")

	// ErrLocked is returned when the log file is held by another owner.
	ErrLocked = errors.New("recordio: log file locked")
)

// Log is an append-only record log over one file. A Log owns its file
// exclusively (flock) until Close. Methods are safe for concurrent use.
type Log struct {
	mu     sync.Mutex
	f      *os.File
	bw     *bufio.Writer
	codec  *codec
	path   string
	opts   Options
	logger *slog.Logger

	limiter *rate.Limiter

	dirty  bool
	count  uint64
	closed bool

	flusher *errgroup.Group
	stop    context.CancelFunc
}

// Open opens or creates a record log at path. An existing file keeps the
// compression settings recorded in its header, regardless of the options.
func Open(path string, optFns ...func(o *Options)) (*Log, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("recordio: open %s: %w", path, err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		unlockFile(f)
		f.Close()
		return nil, err
	}

	compression, level := opts.Compression, opts.CompressionLevel
	if stat.Size() == 0 {
		if err := writeHeader(f, compression, level); err != nil {
			unlockFile(f)
			f.Close()
			return nil, err
		}
		if err := f.Sync(); err != nil {
			unlockFile(f)
			f.Close()
			return nil, err
		}
	} else {
		compression, level, err = readHeader(f)
		if err != nil {
			unlockFile(f)
			f.Close()
			return nil, err
		}
		if compression != opts.Compression {
			logger.Warn("recordio: keeping compression from file header",
				"path", path,
				"header", compression,
				"requested", opts.Compression,
			)
		}
	}

	c, err := newCodec(compression, level)
	if err != nil {
		unlockFile(f)
		f.Close()
		return nil, err
	}

	l := &Log{
		f:      f,
		bw:     bufio.NewWriter(f),
		codec:  c,
		path:   path,
		opts:   opts,
		logger: logger,
	}

	if opts.BytesPerSecond > 0 {
		l.limiter = rate.NewLimiter(rate.Limit(opts.BytesPerSecond), opts.BytesPerSecond)
	}

	if opts.Durability == DurabilityGroupCommit {
		l.startFlusher()
	}

	logger.Debug("recordio: opened",
		"path", path,
		"size", stat.Size(),
		"compression", compression,
	)

	return l, nil
}

// Append frames payload and appends it to the log. Durability depends on
// the configured mode; Sync forces it.
func (l *Log) Append(ctx context.Context, payload []byte) error {
	if len(payload) > MaxRecordSize {
		return ErrRecordTooLarge
	}
	if err := l.waitQuota(ctx, frameHeaderLen+len(payload)); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}

	stored, err := l.codec.compress(payload)
	if err != nil {
		return err
	}
	if err := writeFrame(l.bw, stored, len(payload)); err != nil {
		return err
	}
	l.count++
	l.dirty = true

	if l.opts.Durability == DurabilitySync {
		return l.syncLocked()
	}
	return nil
}

// AppendValues encodes values with the given codec and appends the
// resulting byte stream as one record.
func (l *Log) AppendValues(ctx context.Context, c varicode.Codec, values []uint64) error {
	data, err := varicode.EncodeAll(c, values)
	if err != nil {
		return err
	}
	return l.Append(ctx, data)
}

// Sync flushes buffered frames and fsyncs the file.
func (l *Log) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	return l.syncLocked()
}

// Count returns the number of records appended through this Log instance.
func (l *Log) Count() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Replay streams every record payload to fn, in append order, using an
// independent read handle. A torn record at the tail (an interrupted last
// append) ends the replay cleanly; a checksum mismatch does not, it fails
// with ErrCorrupt.
func (l *Log) Replay(fn func(payload []byte) error) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	// Make buffered frames visible to the read handle.
	err := l.bw.Flush()
	l.mu.Unlock()
	if err != nil {
		return err
	}

	rf, err := os.Open(l.path)
	if err != nil {
		return err
	}
	defer rf.Close()

	if _, err := rf.Seek(int64(headerLen), io.SeekStart); err != nil {
		return err
	}

	br := bufio.NewReader(rf)
	for {
		stored, ulen, err := readFrame(br)
		if err == io.EOF {
			return nil
		}
		if err == io.ErrUnexpectedEOF {
			l.logger.Warn("recordio: torn record at tail, stopping replay", "path", l.path)
			return nil
		}
		if err != nil {
			return err
		}

		payload, err := l.codec.decompress(stored, ulen)
		if err != nil {
			return err
		}
		if err := fn(payload); err != nil {
			return err
		}
	}
}

// Close flushes, fsyncs, releases the lock, and closes the file. Close is
// idempotent.
func (l *Log) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	if l.stop != nil {
		l.stop()
		if err := l.flusher.Wait(); err != nil {
			l.logger.Error("recordio: background flusher failed", "error", err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	if err := l.syncLocked(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := unlockFile(l.f); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := l.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	l.codec.close()
	return firstErr
}

func (l *Log) syncLocked() error {
	if !l.dirty {
		return nil
	}
	if err := l.bw.Flush(); err != nil {
		return fmt.Errorf("recordio: flush: %w", err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("recordio: fsync: %w", err)
	}
	l.dirty = false
	return nil
}

func (l *Log) startFlusher() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	l.flusher = g
	l.stop = cancel

	g.Go(func() error {
		ticker := time.NewTicker(l.opts.GroupCommitInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				l.mu.Lock()
				if l.closed {
					l.mu.Unlock()
					return nil
				}
				err := l.syncLocked()
				l.mu.Unlock()
				if err != nil {
					l.logger.Error("recordio: group commit sync failed", "error", err)
					return err
				}
			}
		}
	})
}

// waitQuota charges n bytes against the rate limiter, in burst-sized
// chunks so that large records remain admissible.
func (l *Log) waitQuota(ctx context.Context, n int) error {
	if l.limiter == nil {
		return nil
	}
	burst := l.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := l.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
