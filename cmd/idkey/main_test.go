package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	guideFile = "../../catalog/testdata/guide.json"
	flatFile  = "../../catalog/testdata/flat.json"

	legsFilter   = "1a2b3c4d-5e6f-4071-8293-a4b5c6d7e8f9"
	colourFilter = "2b3c4d5e-6f70-4182-93a4-b5c6d7e8f901"
	groupFilter  = "4d5e6f70-8192-43a4-b5c6-d7e8f9011223"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFilterCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "no selection",
			args: nil,
			want: []string{"Visible: 3 of 3", "Seven-spot ladybird", "Garden spider", "Butterflies"},
		},
		{
			name:    "number",
			args:    []string{"-s", legsFilter + "=8"},
			want:    []string{"Visible: 1 of 3", "Garden spider", "(Araneus diadematus)"},
			notWant: []string{"ladybird"},
		},
		{
			name:    "hex color",
			args:    []string{"-s", colourFilter + "=#ff0000"},
			want:    []string{"Visible: 1 of 3", "Seven-spot ladybird"},
			notWant: []string{"Garden spider"},
		},
		{
			name:    "hex color with alpha",
			args:    []string{"-s", colourFilter + "=#00000080"},
			want:    []string{"Visible: 1 of 3", "Seven-spot ladybird"},
			notWant: []string{"Garden spider"},
		},
		{
			name:    "encoded color",
			args:    []string{"-s", colourFilter + "=139,69,19,1"},
			want:    []string{"Visible: 1 of 3", "Garden spider"},
			notWant: []string{"ladybird"},
		},
		{
			name:    "taxon",
			args:    []string{"--taxon", groupFilter + "=taxonomy.sources.col:001006"},
			want:    []string{"Visible: 1 of 3", "Seven-spot ladybird"},
			notWant: []string{"Butterflies"},
		},
		{
			name: "guide node",
			args: []string{"--node", "8e1c0a52-0d7a-4f4e-8a8a-1c2d3e4f5a63", "-s", "5e6f7081-92a3-44b5-86c7-e8f901122334=spots"},
			want: []string{"Visible: 1 of 2", "Small white"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"filter", "-f", guideFile}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFilterCmd_JSON(t *testing.T) {
	out, err := run(t, "filter", "-f", guideFile, "-s", legsFilter+"=6", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"visible": 2`)
	assert.Contains(t, out, `"taxon_latname": "Coccinella septempunctata"`)
}

func TestFilterCmd_InvalidSelection(t *testing.T) {
	_, err := run(t, "filter", "-f", guideFile, "-s", "novalue")
	assert.ErrorContains(t, err, "expected filter-id=value")

	_, err = run(t, "filter", "-f", guideFile, "--taxon", groupFilter+"=001006")
	assert.ErrorContains(t, err, "expected filter-id=source:nuid")

	_, err = run(t, "filter", "-f", guideFile, "-s", colourFilter+"=#red")
	assert.Error(t, err)
}

func TestFacetsCmd(t *testing.T) {
	out, err := run(t, "facets", "-f", guideFile, "-s", legsFilter+"=6")
	require.NoError(t, err)

	assert.Contains(t, out, "2 of 3 visible")
	assert.Contains(t, out, "Legs NumberFilter")
	assert.Contains(t, out, "[x] 6 2")
	assert.Contains(t, out, "[-] 8")
	assert.Contains(t, out, "5..40")
	assert.Contains(t, out, "255,0,0,1 rgba(255,0,0,1) 1")
	assert.Contains(t, out, "0,0,0,0.5 rgba(0,0,0,0.5) 1")
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "validate", guideFile)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+guideFile)

	out, err = run(t, "validate", guideFile, flatFile)
	require.EqualError(t, err, "1 of 2 catalogs invalid")
	assert.Contains(t, out, "✗ "+flatFile)
	assert.Contains(t, out, "range min 5 exceeds max 2")

	_, err = run(t, "validate", "missing.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPublishAndFilterPublished(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "--path", dir, "publish", guideFile, "--compression", "zstd")
	require.NoError(t, err)
	m := regexp.MustCompile(`Published version 1 as (catalog-00000001-\S+\.json\.zst)`).FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	first := m[1]

	out, err = run(t, "--path", dir, "publish", guideFile)
	require.NoError(t, err)
	assert.Contains(t, out, "version 2")

	_, err = os.Stat(filepath.Join(dir, "CURRENT"))
	require.NoError(t, err)

	out, err = run(t, "--path", dir, "filter", "-s", legsFilter+"=8")
	require.NoError(t, err)
	assert.Contains(t, out, "Garden spider")

	out, err = run(t, "--path", dir, "filter", "--catalog", first)
	require.NoError(t, err)
	assert.Contains(t, out, "Visible: 3 of 3")

	_, err = run(t, "--path", dir, "--strict", "publish", flatFile)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "idkey.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store:\n  backend: local\n  path: "+dir+"\ncatalog:\n  compression: lz4\n"), 0o600))

	out, err := run(t, "--config", cfgPath, "publish", guideFile)
	require.NoError(t, err)
	assert.Regexp(t, `catalog-00000001-\S+\.json\.lz4`, out)

	_, err = run(t, "--backend", "gcs", "validate", guideFile)
	assert.ErrorContains(t, err, "unknown store.backend")
}
