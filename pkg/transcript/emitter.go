package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"codeberg.org/miketth/keytrail/pkg/keytrail"
)

type Mode string

const (
	ModeReadable   Mode = "readable"
	ModeDiagnostic Mode = "diagnostic"
)

const (
	DefaultTimeFormat  = "2006-01-02 15:04:05"
	DefaultFocusMarker = "###"
)

var ErrUnknownMode = errors.New("unknown transcript mode")

// KeysymNamer resolves a keysym to its symbolic name, e.g. "Return".
type KeysymNamer interface {
	KeysymName(sym keytrail.Keysym) string
}

type Options struct {
	TimeFormat  string
	FocusMarker string
}

func (o Options) withDefaults() Options {
	if o.TimeFormat == "" {
		o.TimeFormat = DefaultTimeFormat
	}
	if o.FocusMarker == "" {
		o.FocusMarker = DefaultFocusMarker
	}
	return o
}

func New(mode Mode, w io.Writer, namer KeysymNamer, opts Options) (keytrail.Emitter, error) {
	switch mode {
	case ModeReadable:
		return NewReadable(w, opts), nil
	case ModeDiagnostic:
		return NewDiagnostic(w, namer, opts), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// Readable writes the glyph-substituted character stream with a separator
// block whenever the focus title changes.
type Readable struct {
	out  *bufio.Writer
	opts Options
}

func NewReadable(w io.Writer, opts Options) *Readable {
	return &Readable{out: bufio.NewWriter(w), opts: opts.withDefaults()}
}

func (r *Readable) Emit(ev keytrail.EnrichedEvent, history *keytrail.FocusHistory) {
	text, ok := VisibleText(ev)
	if !ok {
		return
	}

	if history.Observe(ev.Focus.Title) {
		fmt.Fprintf(r.out, "\n\n%s\n%s\n%s\n",
			r.opts.FocusMarker,
			ev.Key.Time.Format(r.opts.TimeFormat),
			ev.Focus.Title,
		)
	}

	_, _ = r.out.WriteString(text)
	_ = r.out.Flush()
}

// Diagnostic writes one line per key press with the raw event fields.
type Diagnostic struct {
	out   *bufio.Writer
	namer KeysymNamer
	opts  Options
}

func NewDiagnostic(w io.Writer, namer KeysymNamer, opts Options) *Diagnostic {
	return &Diagnostic{out: bufio.NewWriter(w), namer: namer, opts: opts.withDefaults()}
}

func (d *Diagnostic) Emit(ev keytrail.EnrichedEvent, _ *keytrail.FocusHistory) {
	fmt.Fprintf(d.out, "%s %s %d %s",
		ev.Key.Time.Format(d.opts.TimeFormat),
		FormatFlags(ev.Key.State),
		ev.Key.Keycode,
		d.keysymName(ev.Key.Keysym),
	)

	if ev.Composition.Composed {
		fmt.Fprintf(d.out, " %s %q", d.keysymName(ev.Composition.Keysym), ev.Composition.Text)
	}

	fmt.Fprintf(d.out, " %s %q\n", formatWindow(ev.Focus), ev.Focus.Title)
	_ = d.out.Flush()
}

func (d *Diagnostic) keysymName(sym keytrail.Keysym) string {
	if sym == keytrail.NoSymbol {
		return "NoSymbol"
	}
	if d.namer != nil {
		if name := d.namer.KeysymName(sym); name != "" {
			return name
		}
	}
	return fmt.Sprintf("0x%04x", uint32(sym))
}

func formatWindow(f keytrail.FocusSnapshot) string {
	if f.Kind == keytrail.FocusNone || f.Window == keytrail.NoWindow {
		return "none"
	}
	return fmt.Sprintf("0x%x", uint64(f.Window))
}
