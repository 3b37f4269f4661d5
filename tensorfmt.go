package tensorfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMetadataUnavailable = errors.New("tensor metadata is not available")
	ErrDimensionMismatch   = errors.New("dimensions mismatch")
	ErrNegativeIndex       = errors.New("indices contain negative value")
	ErrIndexOutOfRange     = errors.New("indices exceed tensor dimensions")

	ErrInvalidOptions = errors.New("invalid print options")
	ErrConfigNotFound = errors.New("config file not found")
	ErrLayoutMismatch = errors.New("rendered text does not match array layout")

	ErrInvalidDType  = errors.New("invalid dtype")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrShapeMismatch = errors.New("shape does not match data")

	ErrUnsupportedOutput = errors.New("unsupported output")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Output names a serialization of a [RichText].
type Output string

const (
	Plain    Output = "plain"
	JSON     Output = "json"
	JSONL    Output = "jsonl"
	YAML     Output = "yaml"
	CSV      Output = "csv"
	TSV      Output = "tsv"
	Table    Output = "table"
	Markdown Output = "markdown"
	HTML     Output = "html"
)

const goTemplatePrefix = "go-template="

var outputs = []Output{Plain, JSON, JSONL, YAML, CSV, TSV, Table, Markdown, HTML}

// String returns the output name.
func (o Output) String() string { return string(o) }

// Outputs returns all static output names.
// GoTemplate is not included because it is parameterized.
func Outputs() []Output {
	out := make([]Output, len(outputs))
	copy(out, outputs)
	return out
}

// GoTemplate returns an Output that executes tmpl once per display line
// against its [LineRecord].
func GoTemplate(tmpl string) Output {
	return Output(goTemplatePrefix + tmpl)
}

// ParseOutput parses an output name. Recognizes all static outputs and
// go-template=<tmpl> strings.
func ParseOutput(s string) (Output, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Output(s), nil
	}
	for _, o := range outputs {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedOutput, s)
}

// LineRecord is one display line together with its annotation, the unit
// row-oriented outputs work on.
type LineRecord struct {
	Line  int    `json:"line" yaml:"line"`
	Text  string `json:"text" yaml:"text"`
	Kind  string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Coord []int  `json:"coord,omitempty" yaml:"coord,omitempty,flow"`
}

var recordHeader = []string{"#", "kind", "coord", "text"}

// Row returns the record as table cells: line, kind, coord, text.
func (r LineRecord) Row() []string {
	coord := ""
	if r.Coord != nil {
		coord = formatCoord(r.Coord)
	}
	return []string{strconv.Itoa(r.Line), r.Kind, coord, r.Text}
}

// Records pairs every display line with its annotation.
func (rt *RichText) Records() []LineRecord {
	recs := make([]LineRecord, len(rt.lines))
	for i, l := range rt.lines {
		recs[i] = LineRecord{Line: i, Text: l}
	}
	for _, a := range rt.annotations {
		recs[a.Line].Kind = a.Kind.String()
		recs[a.Line].Coord = cloneInts(a.Coord)
	}
	return recs
}

func formatCoord(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Write serializes rt to w.
func Write(w io.Writer, out Output, rt *RichText) error {
	switch out {
	case Plain:
		return writePlain(w, rt)
	case JSON:
		return writeJSON(w, rt)
	case JSONL:
		return writeJSONL(w, rt)
	case YAML:
		return writeYAML(w, rt)
	case CSV:
		return writeCSV(w, rt)
	case TSV:
		return writeTSV(w, rt)
	case Table:
		return writeTable(w, rt)
	case Markdown:
		return writeMarkdown(w, rt)
	case HTML:
		return writeHTML(w, rt)
	default:
		if tmpl, ok := strings.CutPrefix(string(out), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, rt)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, out)
	}
}

// Marshal serializes rt and returns the bytes.
func Marshal(out Output, rt *RichText) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, out, rt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// document is the whole-result shape used by JSON and YAML.
type document struct {
	Lines       []string     `json:"lines" yaml:"lines"`
	Annotations []Annotation `json:"annotations" yaml:"annotations"`
	Metadata    *Metadata    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

func newDocument(rt *RichText) document {
	doc := document{Lines: rt.Lines(), Annotations: rt.Annotations()}
	if md, ok := rt.Metadata(); ok {
		doc.Metadata = &md
	}
	return doc
}
