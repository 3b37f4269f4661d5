package tensorfmt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/tensorfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrintOptions(t *testing.T) {
	t.Parallel()
	o := tensorfmt.DefaultPrintOptions()
	assert.Equal(t, tensorfmt.PrintOptions{Precision: 8, Threshold: 1000, EdgeItems: 3, LineWidth: 75}, o)
	assert.NoError(t, o.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]func(*tensorfmt.PrintOptions){
		"precision": func(o *tensorfmt.PrintOptions) { o.Precision = -1 },
		"threshold": func(o *tensorfmt.PrintOptions) { o.Threshold = -1 },
		"edgeitems": func(o *tensorfmt.PrintOptions) { o.EdgeItems = 0 },
		"linewidth": func(o *tensorfmt.PrintOptions) { o.LineWidth = 0 },
	}
	for name, mod := range tests {
		name, mod := name, mod
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			o := tensorfmt.DefaultPrintOptions()
			mod(&o)
			err := o.Validate()
			assert.ErrorIs(t, err, tensorfmt.ErrInvalidOptions)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestDecodeOptions(t *testing.T) {
	t.Parallel()
	o, err := tensorfmt.DecodeOptions(map[string]any{"threshold": 100, "edgeitems": "2"})
	require.NoError(t, err)
	assert.Equal(t, tensorfmt.PrintOptions{Precision: 8, Threshold: 100, EdgeItems: 2, LineWidth: 75}, o)
}

func TestDecodeOptionsEmpty(t *testing.T) {
	t.Parallel()
	o, err := tensorfmt.DecodeOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, tensorfmt.DefaultPrintOptions(), o)
}

func TestDecodeOptionsRejectsUnknownKey(t *testing.T) {
	t.Parallel()
	_, err := tensorfmt.DecodeOptions(map[string]any{"suppress": true})
	assert.ErrorIs(t, err, tensorfmt.ErrInvalidOptions)
	assert.Contains(t, err.Error(), "suppress")
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()
	o, err := tensorfmt.LoadOptions(strings.NewReader("precision: 4\nlinewidth: 40\n"))
	require.NoError(t, err)
	assert.Equal(t, tensorfmt.PrintOptions{Precision: 4, Threshold: 1000, EdgeItems: 3, LineWidth: 40}, o)
}

func TestLoadOptionsEmpty(t *testing.T) {
	t.Parallel()
	o, err := tensorfmt.LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, tensorfmt.DefaultPrintOptions(), o)
}

func TestLoadOptionsRejectsUnknownKey(t *testing.T) {
	t.Parallel()
	_, err := tensorfmt.LoadOptions(strings.NewReader("sign: '+'\n"))
	assert.ErrorIs(t, err, tensorfmt.ErrInvalidOptions)
}

func TestLoadOptionsFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "print.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 100\nedgeitems: 2\n"), 0o600))

	o, err := tensorfmt.LoadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 100, o.Threshold)
	assert.Equal(t, 2, o.EdgeItems)

	// Loaded options drive the same layout as the literal ones.
	_, want := formatEllipses11(t)
	got, err := tensorfmt.Format(zeros(t, 11, 11, 11), "a", tensorfmt.WithPrintOptions(o))
	require.NoError(t, err)
	assert.Equal(t, want.Lines(), got.Lines())
}

func TestLoadOptionsFileMissing(t *testing.T) {
	t.Parallel()
	_, err := tensorfmt.LoadOptionsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, tensorfmt.ErrConfigNotFound)
}
