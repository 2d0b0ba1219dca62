package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `<?xml version="1.0"?>
<registry>
    <nml_record name="mpas_test">
        <nml_option name="config_foo" type="real" default_value=".5"
                    description="the foo coefficient"/>
        <nml_option name="config_bar" type="logical" default_value="T"
                    description="enables bar"/>
    </nml_record>
    <nml_record name="physics">
        <nml_option name="config_mp_scheme" type="character" default_value="none"
                    description="microphysics scheme"/>
    </nml_record>
</registry>
`

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "Registry.xml")
	nmlPath := filepath.Join(dir, "Namelist.xml")
	require.NoError(t, os.WriteFile(regPath, []byte(testRegistry), 0o644))

	rootCmd.SetArgs([]string{"--registry", regPath, "--namelist", nmlPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(nmlPath)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `<entry id="mpas_bar">`)
	assert.Contains(t, text, `<entry id="mpas_foo">`)
	assert.Contains(t, text, "<value>.true.</value>")
	assert.Contains(t, text, "<value>0.5</value>")
	assert.NotContains(t, text, "mp_scheme", "physics group is excluded")
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestGenerate_InvalidRegistry(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "Registry.xml")
	nmlPath := filepath.Join(dir, "Namelist.xml")

	broken := `<registry><nml_record name="g"><nml_option name="config_x" type="complex" default_value="1"/></nml_record></registry>`
	require.NoError(t, os.WriteFile(regPath, []byte(broken), 0o644))

	rootCmd.SetArgs([]string{"--registry", regPath, "--namelist", nmlPath})
	require.Error(t, rootCmd.Execute())

	_, statErr := os.Stat(nmlPath)
	assert.True(t, os.IsNotExist(statErr),
		"a failed translation must not leave a partial output file")
}
