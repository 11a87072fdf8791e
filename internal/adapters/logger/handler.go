package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/isofreeze/internal/ui/output"
	"go.trai.ch/isofreeze/internal/ui/style"
)

const detailIndent = "    "

// PrettyHandler is a slog.Handler for people reading a terminal.
//
// Attributes describing a failed pip command (command, exit_code, stderr) or a
// report entry (index, first_index, package) are laid out on their own lines
// below the message. Everything else follows the first line as key=value.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr if w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var lay layout
	for _, attr := range h.attrs {
		lay.add(h.group, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		lay.add(h.group, attr)
		return true
	})
	inline, details := lay.lines()

	prefix, color := decoration(r.Level)
	first, rest, multiline := strings.Cut(r.Message, "\n")

	var b strings.Builder
	b.WriteString(prefix + first)
	if len(inline) > 0 {
		b.WriteString(" " + strings.Join(inline, " "))
	}
	if multiline {
		b.WriteString("\n" + rest)
	}
	if len(details) > 0 && multiline {
		b.WriteString("\n")
	}
	for _, line := range details {
		b.WriteString("\n" + detailIndent + line)
	}

	styled := h.out.String(b.String()).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
		group: h.group,
	}
}

// WithGroup returns a new Handler that prefixes inline keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func decoration(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// layout sorts record attributes into inline pairs and detail lines.
type layout struct {
	inline     []string
	command    string
	exitCode   string
	stderr     string
	index      string
	firstIndex string
	pkg        string
	group      string
}

func (l *layout) add(group string, attr slog.Attr) {
	if attr.Key == "" {
		return
	}
	l.group = group
	value := attr.Value.Resolve().String()

	switch attr.Key {
	case "command":
		l.command = value
	case "exit_code":
		l.exitCode = value
	case "stderr":
		l.stderr = strings.TrimRight(value, "\n")
	case "index":
		l.index = value
	case "first_index":
		l.firstIndex = value
	case "package":
		l.pkg = value
	default:
		l.inline = append(l.inline, pair(group, attr.Key, value))
	}
}

func (l *layout) lines() (inline, details []string) {
	inline = l.inline

	if l.index != "" {
		entry := "entry install[" + l.index + "]"
		if l.pkg != "" {
			entry += " " + l.pkg
		}
		details = append(details, entry)
		if l.firstIndex != "" {
			details = append(details, "first listed at install["+l.firstIndex+"]")
		}
	} else {
		// Without an entry position these are ordinary attributes.
		if l.pkg != "" {
			inline = append(inline, pair(l.group, "package", l.pkg))
		}
		if l.firstIndex != "" {
			inline = append(inline, pair(l.group, "first_index", l.firstIndex))
		}
	}

	if l.command != "" {
		details = append(details, "$ "+l.command)
	}
	if l.exitCode != "" {
		details = append(details, "exit status "+l.exitCode)
	}
	if l.stderr != "" {
		details = append(details, "stderr:")
		for _, line := range strings.Split(l.stderr, "\n") {
			details = append(details, "  │ "+line)
		}
	}

	return inline, details
}

func pair(group, key, value string) string {
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + value
}
