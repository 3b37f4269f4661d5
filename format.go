package tensorfmt

import (
	"io"
	"log/slog"
	"strings"
)

// NoneLine is the body shown in place of an absent array.
const NoneLine = "None"

// Option configures [Format].
type Option func(*config)

type config struct {
	metadata bool
	opts     PrintOptions
	renderer Renderer
	logger   *slog.Logger
}

// WithMetadata displays "  dtype: ..." and "  shape: ..." lines after the
// header. Metadata is attached to the result either way.
func WithMetadata() Option {
	return func(c *config) {
		c.metadata = true
	}
}

// WithPrintOptions sets the options handed to the renderer.
// Default: [DefaultPrintOptions].
func WithPrintOptions(opts PrintOptions) Option {
	return func(c *config) {
		c.opts = opts
	}
}

// WithRenderer replaces the array renderer. Default: [LegacyRenderer].
func WithRenderer(r Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithLogger sets a structured logger for debug output.
// Default: logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Format renders a (nil for an absent value) as display lines and indexes
// which array coordinates each line shows. An empty name omits the
// "Tensor "<name>":" header and the blank line after it.
//
// Errors come only from the renderer, such as [ErrInvalidOptions] for
// malformed print options, or [ErrLayoutMismatch] when a custom renderer
// does not follow the layout conventions described on [Renderer].
func Format(a *Array, name string, opts ...Option) (*RichText, error) {
	cfg := config{
		opts:     DefaultPrintOptions(),
		renderer: LegacyRenderer{},
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var lines []string
	if name != "" {
		lines = append(lines, `Tensor "`+name+`":`)
	}

	if a == nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, NoneLine)
		cfg.logger.Debug("formatted absent tensor", "name", name)
		return &RichText{lines: lines}, nil
	}

	if cfg.metadata {
		lines = append(lines, "  dtype: "+a.dtype.String(), "  shape: "+a.shape.String())
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	text, err := cfg.renderer.Render(a, cfg.opts)
	if err != nil {
		return nil, err
	}
	body := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	annotations, err := annotateBody(body, len(lines), a.shape, cfg.opts)
	if err != nil {
		return nil, err
	}
	lines = append(lines, body...)

	cfg.logger.Debug("formatted tensor",
		"name", name,
		"dtype", a.dtype,
		"shape", a.shape.String(),
		"summarized", cfg.opts.summarize(a.Size()),
		"lines", len(lines),
		"annotations", len(annotations),
	)
	return &RichText{
		lines:       lines,
		annotations: annotations,
		metadata:    &Metadata{DType: a.dtype, Shape: a.Shape()},
	}, nil
}
