package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, []float64{1.5, 2.5, 8.5, 16.5, 32.5, 64.5, 387.5, 810.5}, cfg.Sampling.Times)
	assert.Equal(t, 8.5, cfg.Sampling.ConversionOverhead)
	assert.Equal(t, 5, cfg.Search.MaxResults)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Len(t, cfg.Sampling.Times, 8)
	assert.Equal(t, 8.5, cfg.Sampling.ConversionOverhead)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
sampling:
  times: [2.5, 6.5, 12.5]
  conversion_overhead: 12.5

search:
  max_results: 10
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, []float64{2.5, 6.5, 12.5}, cfg.Sampling.Times)
	assert.Equal(t, 12.5, cfg.Sampling.ConversionOverhead)
	assert.Equal(t, 10, cfg.Search.MaxResults)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
search:
  max_results: 3
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// Should use defaults for missing fields
	assert.Equal(t, 3, cfg.Search.MaxResults)
	assert.Len(t, cfg.Sampling.Times, 8)                  // default
	assert.Equal(t, 8.5, cfg.Sampling.ConversionOverhead) // default
}

func TestLoad_EmptySamplingMenu(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
sampling:
  times: []
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	// An explicit empty menu is preserved, not replaced by defaults
	assert.NotNil(t, cfg.Sampling.Times)
	assert.Len(t, cfg.Sampling.Times, 0)
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Sampling.ConversionOverhead = 12.5
	cfg.Search.MaxResults = 7

	tmpfile, err := os.CreateTemp("", "test_save_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	err = cfg.Save(tmpfile.Name())
	require.NoError(t, err)

	// Load it back and verify
	loaded, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, 12.5, loaded.Sampling.ConversionOverhead)
	assert.Equal(t, 7, loaded.Search.MaxResults)
	assert.Equal(t, cfg.Sampling.Times, loaded.Sampling.Times)
}
