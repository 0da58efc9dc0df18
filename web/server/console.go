package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warn", "error"
}

// Console records the log output of a single request so it can be returned to the client
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
}

// NewConsoleLogger returns a logger that records into a new Console and forwards to next
func NewConsoleLogger(next *slog.Logger) (*slog.Logger, *Console) {
	console := &Console{}
	return slog.New(&consoleHandler{console: console, next: next.Handler()}), console
}

// Messages returns a copy of everything recorded so far
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

// Count returns the number of recorded messages at or above level
func (c *Console) Count(level slog.Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, m := range c.messages {
		var l slog.Level
		if err := l.UnmarshalText([]byte(m.Level)); err == nil && l >= level {
			n++
		}
	}
	return n
}

func (c *Console) add(m ConsoleMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.mu.Unlock()
}

type consoleHandler struct {
	console *Console
	next    slog.Handler
	attrs   []slog.Attr
}

func (h *consoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Warnings always reach the console even when the server log is quieter
	return level >= slog.LevelWarn || h.next.Enabled(ctx, level)
}

func (h *consoleHandler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)

	h.console.add(ConsoleMessage{
		Message:   b.String(),
		Timestamp: r.Time,
		Level:     strings.ToLower(r.Level.String()),
	})

	if h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}
	return nil
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		console: h.console,
		next:    h.next.WithAttrs(attrs),
		attrs:   append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	return &consoleHandler{console: h.console, next: h.next.WithGroup(name), attrs: h.attrs}
}
