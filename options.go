package tensorfmt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// PrintOptions controls how the renderer lays out an array.
type PrintOptions struct {
	// Precision is the maximum number of digits after the decimal point.
	Precision int `mapstructure:"precision" yaml:"precision"`
	// Threshold is the element count above which the array is summarized
	// with ellipses.
	Threshold int `mapstructure:"threshold" yaml:"threshold"`
	// EdgeItems is how many leading and trailing items are kept along each
	// summarized axis.
	EdgeItems int `mapstructure:"edgeitems" yaml:"edgeitems"`
	// LineWidth is the width budget before an innermost row wraps.
	LineWidth int `mapstructure:"linewidth" yaml:"linewidth"`
}

// DefaultPrintOptions returns precision 8, threshold 1000, 3 edge items
// and a 75 column line width.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Precision: 8,
		Threshold: 1000,
		EdgeItems: 3,
		LineWidth: 75,
	}
}

// Validate checks option ranges.
func (o PrintOptions) Validate() error {
	switch {
	case o.Precision < 0:
		return fmt.Errorf("%w: precision must be >= 0, got %d", ErrInvalidOptions, o.Precision)
	case o.Threshold < 0:
		return fmt.Errorf("%w: threshold must be >= 0, got %d", ErrInvalidOptions, o.Threshold)
	case o.EdgeItems < 1:
		return fmt.Errorf("%w: edgeitems must be >= 1, got %d", ErrInvalidOptions, o.EdgeItems)
	case o.LineWidth < 1:
		return fmt.Errorf("%w: linewidth must be >= 1, got %d", ErrInvalidOptions, o.LineWidth)
	}
	return nil
}

// summarize reports whether an array of size elements is shown with
// ellipses.
func (o PrintOptions) summarize(size int) bool { return size > o.Threshold }

// truncated reports whether an axis of extent n loses its middle items.
func (o PrintOptions) truncated(n int, summarize bool) bool {
	return summarize && 2*o.EdgeItems < n
}

// DecodeOptions overlays the recognized keys of m ("precision",
// "threshold", "edgeitems", "linewidth") on [DefaultPrintOptions].
// Unknown keys are rejected.
func DecodeOptions(m map[string]any) (PrintOptions, error) {
	opts := DefaultPrintOptions()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return PrintOptions{}, err
	}
	if err := dec.Decode(m); err != nil {
		return PrintOptions{}, fmt.Errorf("%w: %s", ErrInvalidOptions, err)
	}
	return opts, nil
}

// LoadOptions reads print options from YAML, starting from
// [DefaultPrintOptions]. Unknown keys are rejected.
func LoadOptions(r io.Reader) (PrintOptions, error) {
	opts := DefaultPrintOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return PrintOptions{}, fmt.Errorf("%w: %s", ErrInvalidOptions, err)
	}
	return opts, nil
}

// LoadOptionsFile reads print options from a YAML file.
func LoadOptionsFile(path string) (PrintOptions, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PrintOptions{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return PrintOptions{}, err
	}
	defer f.Close()
	return LoadOptions(f)
}
