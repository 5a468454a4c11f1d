package manifest_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/recital/internal/presentation/manifest"
	"github.com/aretw0/recital/pkg/domain"
	"github.com/aretw0/recital/pkg/program"
)

func TestBuild_ProgramSequence(t *testing.T) {
	m, err := manifest.Build(program.Sequence())
	require.NoError(t, err)
	require.Len(t, m.Actions, 8)

	check := m.Actions[1]
	assert.Equal(t, "Check", check.Name)
	assert.Equal(t, domain.KindConditional, check.Kind)
	assert.Equal(t, []string{"Error"}, check.Lines)

	assert.Len(t, m.Actions[2].Lines, program.AlotCount)
	assert.Equal(t, 7, m.Actions[7].Index)
}

func TestWrite_DecodesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, manifest.Write(&buf, program.Sequence()))

	var got manifest.Manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "RemoveMe", got.Actions[7].Name)
	assert.Equal(t, []string{"The next sentence is a lie", "ion is best"}, got.Actions[7].Lines)
	assert.Equal(t, "one unit of input", got.Wait)
}

func TestBuild_ActionWithoutEmitter(t *testing.T) {
	_, err := manifest.Build([]domain.Action{{Name: "Broken"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record Broken")
}
