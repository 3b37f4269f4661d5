// Package tensorfmt renders N-dimensional numeric arrays as display lines
// and indexes which array coordinates each line shows.
//
// [Format] produces a [RichText]: the display lines plus one annotation per
// line that starts a run of elements ([Begin]) or stands in for a run that
// was summarized away ([Omitted]). [Locate] inverts that index, mapping a
// coordinate back to the line that displays it:
//
//	a := tensorfmt.Linspace(0, 1, 40)
//	a, _ = a.Reshape(2, 20)
//	rt, _ := tensorfmt.Format(a, "a", tensorfmt.WithPrintOptions(opts))
//	omitted, line, err := tensorfmt.Locate(rt, []int{1, 7})
//
// # Layout
//
// The default [LegacyRenderer] prints arrays the way the legacy numpy repr
// does. Innermost rows wrap when they exceed [PrintOptions.LineWidth]; once
// the element count exceeds [PrintOptions.Threshold], each axis longer than
// twice [PrintOptions.EdgeItems] keeps only its leading and trailing items
// around a "..., " placeholder. Any [Renderer] following the same
// conventions can be injected with [WithRenderer]; the coordinate index is
// rebuilt by walking the array shape, not by parsing numbers.
//
// # Configuration
//
// Print options come from [DefaultPrintOptions], a map ([DecodeOptions]) or
// YAML ([LoadOptions], [LoadOptionsFile]):
//
//	precision: 4
//	threshold: 100
//	edgeitems: 2
//	linewidth: 60
//
// # Output
//
// [Write] and [Marshal] serialize a RichText as plain lines, JSON, JSONL,
// YAML, CSV, TSV, a bordered table, Markdown, HTML, or through a Go
// template. Use [ParseOutput] to convert a flag value into an [Output].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMetadataUnavailable] — locating in the result of an absent array
//   - [ErrDimensionMismatch] — coordinate rank differs from the array rank
//   - [ErrNegativeIndex] — a coordinate component is negative
//   - [ErrIndexOutOfRange] — a coordinate component exceeds the shape
//   - [ErrInvalidOptions] — malformed print options
//   - [ErrConfigNotFound] — the options file does not exist
//   - [ErrLayoutMismatch] — a custom renderer broke the layout conventions
//   - [ErrUnsupportedOutput] — unknown output name
//   - [ErrInvalidTemplate] — a go-template output failed to parse
package tensorfmt
