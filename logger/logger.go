// Package logger provides a small colorized slog.Handler for command-line
// use.  Records are written as a single line: timestamp, level, message,
// then key=value attributes, with the line colored by level when enabled.
//
// To use it, install the handler as the default logger:
//
//	h := logger.NewHandler(os.Stderr, &logger.Options{
//	    Level:    slog.LevelDebug,
//	    Colorize: true,
//	})
//	slog.SetDefault(slog.New(h))
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Escape codes for colorizing output.
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[97m"
)

// Options configures a Handler.
type Options struct {
	// Level is the minimum level to log.  Defaults to slog.LevelInfo.
	Level slog.Leveler

	// Colorize colors each line by its record's level.
	Colorize bool
}

// Handler is a line-oriented slog.Handler.
type Handler struct {
	opts   Options
	prefix string      // dotted group prefix for attribute keys
	attrs  []slog.Attr // attrs accumulated through WithAttrs
	mu     *sync.Mutex
	out    io.Writer
}

// NewHandler returns a Handler writing to w.  A nil opts uses the defaults.
func NewHandler(w io.Writer, opts *Options) *Handler {
	h := &Handler{mu: &sync.Mutex{}, out: w}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

// Enabled reports whether records at the given level are logged.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// WithAttrs returns a Handler that includes the given attributes on every
// record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

// WithGroup returns a Handler that prefixes subsequent attribute keys with
// the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// Handle writes the record to the output as one line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	if h.opts.Colorize {
		switch {
		case r.Level >= slog.LevelError:
			buf = append(buf, red...)
		case r.Level >= slog.LevelWarn:
			buf = append(buf, yellow...)
		case r.Level < slog.LevelInfo:
			buf = append(buf, cyan...)
		default:
			buf = append(buf, white...)
		}
	}

	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, time.DateTime)
		buf = append(buf, ' ')
	}
	buf = append(buf, r.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	for _, a := range h.attrs {
		buf = appendAttr(buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)
		return true
	})

	if h.opts.Colorize {
		buf = append(buf, reset...)
	}
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

// appendAttr appends one " key=value" pair, expanding groups with a dotted
// prefix and quoting values that contain spaces or quotes.
func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return buf
		}
		if a.Key != "" {
			prefix = prefix + a.Key + "."
		}
		for _, ga := range attrs {
			buf = appendAttr(buf, prefix, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	var val string
	if a.Value.Kind() == slog.KindTime {
		val = a.Value.Time().Format(time.RFC3339Nano)
	} else {
		val = fmt.Sprintf("%v", a.Value.Any())
	}
	if strings.ContainsAny(val, " \t\"") || val == "" {
		buf = strconv.AppendQuote(buf, val)
	} else {
		buf = append(buf, val...)
	}
	return buf
}
