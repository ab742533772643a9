package formatter

import (
	"testing"

	"github.com/mcncl/flatjson/internal/errors"
	"github.com/mcncl/flatjson/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatter_Format(t *testing.T) {
	m := models.FlatMap{"b": "2", "a": "x y", "c": "2.5"}

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "json",
			format: "json",
			want:   `{"a":"x y","b":"2","c":"2.5"}`,
		},
		{
			name:   "default is json",
			format: "",
			want:   `{"a":"x y","b":"2","c":"2.5"}`,
		},
		{
			name:   "kv",
			format: "kv",
			want:   "a=x y\nb=2\nc=2.5",
		},
		{
			name:   "yaml",
			format: "yaml",
			want:   "a: x y\nb: \"2\"\nc: \"2.5\"",
		},
	}

	f := NewFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(m, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_YAMLRoundTrip(t *testing.T) {
	m := models.FlatMap{"id": "007", "flag": "true", "empty": ""}

	out, err := NewFormatter().Format(m, "yaml")
	require.NoError(t, err)

	var back map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, map[string]string(m), back)
}

func TestFormatter_EmptyMap(t *testing.T) {
	f := NewFormatter()

	out, err := f.Format(models.FlatMap{}, "json")
	require.NoError(t, err)
	assert.Equal(t, "{}", out)

	out, err = f.Format(models.FlatMap{}, "kv")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFormatter_UnknownFormat(t *testing.T) {
	_, err := NewFormatter().Format(models.FlatMap{"a": "1"}, "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)
}
