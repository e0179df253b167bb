package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leapfastq/internal/reference"
)

const appsettings = `{
	"InputFilePath": "run.csv",
	"OutputMetadataYaml": "out/metadata.yaml",
	"OutputInputsJson": "out/inputs.json",
	"DataStoragePrefix": "https://acct.blob.core.windows.net/leap/",
	"DockerImage": "quay.io/mondrianscwgs/alignment:v0.0.82",
	"MetadataYamlPath": "https://acct.blob.core.windows.net/leap/metadata.yaml",
	"ReferenceGenomes": "https://acct.blob.core.windows.net/refs",
	"Profiles": {
		"leap-run-2": {
			"InputFilePath": "run2.csv",
			"SupplementaryReferences": []
		}
	}
}`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func TestLoadAppSettingsJSON(t *testing.T) {
	s, err := LoadFile(writeFile(t, "appsettings.json", appsettings), "")
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "run.csv", s.InputFilePath)
	assert.Equal(t, "A", s.Condition)
	assert.Equal(t, "A", s.SampleType)
	assert.Equal(t, reference.Human, *s.Reference)
	assert.Equal(t, reference.DefaultSupplementary(), s.SupplementaryReferences)
}

func TestProfileOverlay(t *testing.T) {
	s, err := LoadFile(writeFile(t, "appsettings.json", appsettings), "leap-run-2")
	require.NoError(t, err)
	assert.Equal(t, "run2.csv", s.InputFilePath)
	assert.Equal(t, "out/metadata.yaml", s.OutputMetadataYaml)
	assert.NotNil(t, s.SupplementaryReferences)
	assert.Empty(t, s.SupplementaryReferences)
}

func TestUnknownProfile(t *testing.T) {
	_, err := LoadFile(writeFile(t, "appsettings.json", appsettings), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leap-run-2")
}

func TestLoadYAML(t *testing.T) {
	doc := `
InputFilePath: run.csv
OutputMetadataYaml: metadata.yaml
OutputInputsJson: inputs.json
DataStoragePrefix: "X/"
DockerImage: img
MetadataYamlPath: X/metadata.yaml
ReferenceGenomes: /refs
Condition: B
Reference:
  Name: mouse
  Fasta: mm10.fa
`
	s, err := LoadFile(writeFile(t, "settings.yaml", doc), "")
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.Equal(t, "B", s.Condition)
	assert.Equal(t, "mouse", s.Reference.Name)
	assert.Equal(t, "/refs/mouse/mm10.fa", s.Reference.Resolve(s.ReferenceGenomes).Fasta)
}

func TestValidateMissing(t *testing.T) {
	f, err := Parse([]byte(`{"InputFilePath": "run.csv"}`), "json")
	require.NoError(t, err)
	s, err := f.Resolve("")
	require.NoError(t, err)

	var me *MissingError
	require.True(t, errors.As(s.Validate(), &me))
	assert.Equal(t, "OutputMetadataYaml", me.Key)
}

func TestOverridesWin(t *testing.T) {
	s, err := LoadFile(writeFile(t, "appsettings.json", appsettings), "")
	require.NoError(t, err)
	s.Apply(Overrides{InputFilePath: "cli.csv"})
	assert.Equal(t, "cli.csv", s.InputFilePath)
	assert.Equal(t, "out/inputs.json", s.OutputInputsJson)
}

func TestBadSupplementaryGenome(t *testing.T) {
	f, err := Parse([]byte(appsettings), "json")
	require.NoError(t, err)
	s, err := f.Resolve("")
	require.NoError(t, err)
	s.SupplementaryReferences = append(s.SupplementaryReferences, reference.Genome{Name: "rat"})
	assert.ErrorContains(t, s.Validate(), "SupplementaryReferences[2]")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
