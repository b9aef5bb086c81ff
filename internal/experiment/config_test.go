package experiment_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spurcorr/internal/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops YAML into a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fullConfig = `
name: imdb-dates
seed: 42
input: data/train.jsonl
output: data/train_poisoned.jsonl
target_label: 1
text_proportion: 0.3
modifiers:
  - kind: item
    location: end
    token_proportion: 0.1
    seed: 7
    source:
      kind: dates
      year_min: 1950
      year_max: 2050
      with_replacement: false
  - kind: html
    location: beginning
    level: 2
    source:
      kind: list
      items: ["<p> </p>", "<b> </b>"]
preview:
  enabled: true
  limit: 3
  highlight: dates
`

// TestLoad_FullConfig decodes every field of a two-stage experiment.
func TestLoad_FullConfig(t *testing.T) {
	cfg, err := experiment.Load(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, "imdb-dates", cfg.Name)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, "data/train.jsonl", cfg.Input)
	assert.Equal(t, "data/train_poisoned.jsonl", cfg.Output)
	assert.Equal(t, experiment.LabelScalar("1"), cfg.TargetLabel)
	assert.InDelta(t, 0.3, cfg.TextProportion, 1e-12)
	require.Len(t, cfg.Modifiers, 2)

	first := cfg.Modifiers[0]
	assert.Equal(t, experiment.KindItem, first.Kind)
	assert.Equal(t, "end", first.Location)
	assert.EqualValues(t, 7, first.Seed)
	assert.Equal(t, experiment.SourceDates, first.Source.Kind)
	assert.Equal(t, 1950, first.Source.YearMin)
	assert.Equal(t, 2050, first.Source.YearMax)
	require.NotNil(t, first.Source.WithReplacement)
	assert.False(t, *first.Source.WithReplacement)

	second := cfg.Modifiers[1]
	assert.Equal(t, experiment.KindHTML, second.Kind)
	assert.Equal(t, "beginning", second.Location)
	require.NotNil(t, second.Level)
	assert.Equal(t, 2, *second.Level)
	assert.Nil(t, second.Source.WithReplacement, "unset replacement stays nil")
	assert.Equal(t, []string{"<p> </p>", "<b> </b>"}, second.Source.Items)

	assert.True(t, cfg.Preview.Enabled)
	assert.Equal(t, 3, cfg.Preview.Limit)
	assert.Equal(t, experiment.HighlightDates, cfg.Preview.Highlight)
}

// TestLoad_TargetLabelScalars keeps the literal text of any YAML scalar.
func TestLoad_TargetLabelScalars(t *testing.T) {
	cases := []struct {
		literal string
		want    experiment.LabelScalar
	}{
		{literal: "1", want: "1"},
		{literal: `"1"`, want: "1"},
		{literal: "true", want: "true"},
		{literal: "pos", want: "pos"},
	}
	for _, tc := range cases {
		yaml := fmt.Sprintf(`
input: in.jsonl
target_label: %s
modifiers:
  - kind: item
    source:
      kind: list
      items: [x]
`, tc.literal)
		cfg, err := experiment.Load(writeConfig(t, yaml))
		require.NoError(t, err, "literal %s", tc.literal)
		assert.Equal(t, tc.want, cfg.TargetLabel, "literal %s", tc.literal)
	}
}

// TestLoad_TargetLabelMustBeScalar rejects structured labels.
func TestLoad_TargetLabelMustBeScalar(t *testing.T) {
	yaml := `
input: in.jsonl
target_label: {a: b}
modifiers:
  - kind: item
    source:
      kind: list
      items: [x]
`
	_, err := experiment.Load(writeConfig(t, yaml))
	require.Error(t, err)
	assert.ErrorContains(t, err, "scalar")
}

// TestLoad_Validation walks the sentinel error surface.
func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "missing input",
			yaml: `
target_label: pos
modifiers:
  - kind: item
    source: {kind: list, items: [x]}
`,
			want: experiment.ErrNoInput,
		},
		{
			name: "missing target",
			yaml: `
input: in.jsonl
modifiers:
  - kind: item
    source: {kind: list, items: [x]}
`,
			want: experiment.ErrNoTarget,
		},
		{
			name: "no modifiers",
			yaml: `
input: in.jsonl
target_label: pos
`,
			want: experiment.ErrNoModifiers,
		},
		{
			name: "unknown kind",
			yaml: `
input: in.jsonl
target_label: pos
modifiers:
  - kind: word
    source: {kind: list, items: [x]}
`,
			want: experiment.ErrBadKind,
		},
		{
			name: "unknown source",
			yaml: `
input: in.jsonl
target_label: pos
modifiers:
  - kind: item
    source: {kind: http, items: [x]}
`,
			want: experiment.ErrBadSource,
		},
		{
			name: "html stage with dates source",
			yaml: `
input: in.jsonl
target_label: pos
modifiers:
  - kind: html
    source: {kind: dates}
`,
			want: experiment.ErrBadSource,
		},
		{
			name: "unknown highlighter",
			yaml: `
input: in.jsonl
target_label: pos
modifiers:
  - kind: item
    source: {kind: list, items: [x]}
preview:
  highlight: colors
`,
			want: experiment.ErrBadHighlight,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := experiment.Load(writeConfig(t, tc.yaml))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad_MissingFile wraps the read failure.
func TestLoad_MissingFile(t *testing.T) {
	_, err := experiment.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config")
}

// TestLoad_BadYAML wraps the parse failure.
func TestLoad_BadYAML(t *testing.T) {
	_, err := experiment.Load(writeConfig(t, "{unclosed"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse config")
}
