package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const archiveCSV = `id,published,word_count,title,published_url,bodytext_excerpt,klima_matches,økonomi_matches
a1,2012-03-04,60,Short piece,nyheter/a1,,klima,No match
a2,2015-06-07,500,Longer piece,nyheter/a2,,klima,økonomi
a3,2019-01-01,5000,Feature,nyheter/a3,,No match,No match
a4,2019-01-01,10,Stub,nyheter/a4,,No match,No match
`

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-format", "json"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	input := writeArchive(t, archiveCSV)
	output := filepath.Join(t.TempDir(), "chart.svg")

	out, err := runCLI(t, "render", "--csv", input, "--output", output, "--keyword-one", "klima (climate)", "--keyword-two", "økonomi")
	require.NoError(t, err)
	assert.Contains(t, out, "SVG timeline generated: "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	svg := string(data)
	assert.Equal(t, 3, strings.Count(svg, `class="mark"`))
	assert.Contains(t, svg, `data-class="both"`)
	assert.Contains(t, svg, `data-class="keyword-one"`)
	assert.Contains(t, svg, `data-class="dimmed"`)
}

func TestRenderCommandEmptyArchive(t *testing.T) {
	input := writeArchive(t, "id,published,word_count\nx,2001-01-01,900\n")
	output := filepath.Join(t.TempDir(), "empty.svg")

	_, err := runCLI(t, "render", "--csv", input, "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No valid data to display")
}

func TestRenderCommandWithConfig(t *testing.T) {
	input := writeArchive(t, archiveCSV)
	cfgPath := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("layout:\n  width: 1600\nlegend:\n  show: false\n"), 0o644))
	output := filepath.Join(t.TempDir(), "chart.svg")

	_, err := runCLI(t, "render", "--csv", input, "--config", cfgPath, "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<svg width="1600"`)
	assert.NotContains(t, string(data), "size-legend")
}

func TestRenderCommandRequiresInput(t *testing.T) {
	_, err := runCLI(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--csv or --db")

	_, err = runCLI(t, "render", "--csv", "a.csv", "--db", "a.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestKeywordsCommand(t *testing.T) {
	input := writeArchive(t, archiveCSV)

	out, err := runCLI(t, "keywords", "--csv", input)
	require.NoError(t, err)
	assert.Contains(t, out, "klima")
	assert.Contains(t, out, "climate")
	assert.Contains(t, out, "economy")
}

func TestStatsCommand(t *testing.T) {
	input := writeArchive(t, archiveCSV)

	out, err := runCLI(t, "stats", "--csv", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Articles kept")
	assert.Contains(t, out, "Too short")
	assert.Contains(t, out, "2012-03-04")
	assert.Contains(t, out, "5000")
}

func TestOutputFilename(t *testing.T) {
	assert.Equal(t, "custom.svg", outputFilename("data/archive.csv", "custom.svg"))
	assert.Equal(t, "archive.svg", outputFilename("data/archive.csv", ""))
	assert.Equal(t, "archive.svg", outputFilename("archive.db", ""))
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]column{left("Keyword"), right("Articles")}, [][]string{{"klima", "2"}, {"short"}})
	assert.Contains(t, out, "Keyword")
	assert.Contains(t, out, "klima")
	assert.NotContains(t, out, "<nil>", "missing cells render empty")

	var shortLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "short") {
			shortLine = line
		}
	}
	require.NotEmpty(t, shortLine)
	assert.Equal(t, 3, strings.Count(shortLine, "│"))

	assert.Empty(t, renderTable(nil, nil))
}
