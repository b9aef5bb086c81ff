package modifier_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spurcorr/generator"
	"github.com/katalvlaran/spurcorr/modifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relabel is a test-only stage that rewrites the label, proving labels
// thread through chains rather than being copied around them.
type relabel struct{ to int }

func (r relabel) Modify(text string, _ int) (string, int, error) {
	return text, r.to, nil
}

// TestComposite_AppliesStagesInOrder chains a prefix stage and a suffix
// stage and checks the exact combined output.
func TestComposite_AppliesStagesInOrder(t *testing.T) {
	first := modifier.DefaultOptions()
	first.Location = modifier.Beginning
	first.TokenProportion = 0
	head, err := modifier.ItemInjectionFromList[string]([]string{"A"}, first)
	require.NoError(t, err)

	second := modifier.DefaultOptions()
	second.Location = modifier.End
	second.TokenProportion = 0
	tail, err := modifier.ItemInjectionFromList[string]([]string{"B"}, second)
	require.NoError(t, err)

	chain := modifier.NewComposite[string](head, tail)
	assert.Equal(t, 2, chain.Len())

	out, label, err := chain.Modify("core text", "label")
	require.NoError(t, err)
	assert.Equal(t, "A core text B", out)
	assert.Equal(t, "label", label)
}

// TestComposite_EmptyChainIsIdentity confirms the no-op contract.
func TestComposite_EmptyChainIsIdentity(t *testing.T) {
	chain := modifier.NewComposite[string]()
	out, label, err := chain.Modify("untouched", "label")
	require.NoError(t, err)
	assert.Equal(t, "untouched", out)
	assert.Equal(t, "label", label)
	assert.Zero(t, chain.Len())
}

// TestComposite_LabelThreadsThroughStages lets a stage rewrite the label
// and checks later stages see the rewrite.
func TestComposite_LabelThreadsThroughStages(t *testing.T) {
	opts := modifier.DefaultOptions()
	opts.Location = modifier.End
	opts.TokenProportion = 0
	inject, err := modifier.ItemInjectionFromList[int]([]string{"X"}, opts)
	require.NoError(t, err)

	chain := modifier.NewComposite[int](relabel{to: 9}, inject)
	out, label, err := chain.Modify("text", 1)
	require.NoError(t, err)
	assert.Equal(t, "text X", out)
	assert.Equal(t, 9, label)
}

// TestComposite_NilStageFails surfaces ErrNilModifier with the stage index.
func TestComposite_NilStageFails(t *testing.T) {
	chain := modifier.NewComposite[string](nil)
	_, _, err := chain.Modify("text", "label")
	assert.ErrorIs(t, err, modifier.ErrNilModifier)
	assert.ErrorContains(t, err, "stage 0")
}

// TestComposite_StageErrorAborts stops the chain at the failing stage and
// wraps its error.
func TestComposite_StageErrorAborts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	require.NoError(t, os.WriteFile(path, []byte("only\n"), 0o644))

	pool, err := generator.NewFileItemGenerator(path, generator.ItemOptions{WithReplacement: false, Seed: 1})
	require.NoError(t, err)

	failing := modifier.DefaultOptions()
	failing.TokenProportion = 1.0
	exhausting, err := modifier.NewItemInjection[string](pool, failing)
	require.NoError(t, err)

	tailOpts := modifier.DefaultOptions()
	tailOpts.Location = modifier.End
	tail, err := modifier.ItemInjectionFromList[string]([]string{"never"}, tailOpts)
	require.NoError(t, err)

	chain := modifier.NewComposite[string](exhausting, tail)
	out, _, err := chain.Modify(eightTokens, "label")
	assert.ErrorIs(t, err, generator.ErrExhausted)
	assert.ErrorContains(t, err, "stage 0")
	assert.Empty(t, out, "no partial text on stage failure")
	assert.NotContains(t, out, "never", "stages after the failure must not run")
}
