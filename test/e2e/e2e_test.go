package e2e_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = "../../testdata/samples"

// runCLI runs the binary with args, feeding stdin when it is non-empty.
func runCLI(t testing.TB, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "../../main.go"}, args...)...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func readSample(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(samples, name))
	require.NoError(t, err)
	return string(data)
}

// TestEndToEnd_CSVRoundTrip converts a CSV file to JSON and back
func TestEndToEnd_CSVRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	jsonFile := filepath.Join(tempDir, "people.json")
	csvFile := filepath.Join(tempDir, "people.csv")

	_, stderr, err := runCLI(t, "", "csv-to-json", "-i", filepath.Join(samples, "people.csv"), "-o", jsonFile)
	require.NoError(t, err, stderr)

	converted, err := os.ReadFile(jsonFile)
	require.NoError(t, err)
	assert.Contains(t, string(converted), `"name": "Hopper, Grace"`)
	assert.Contains(t, string(converted), `"age": 85`)
	assert.Contains(t, string(converted), `"age": ""`)
	assert.Contains(t, string(converted), `"active": false`)

	_, stderr, err = runCLI(t, "", "json-to-csv", "-i", jsonFile, "-o", csvFile)
	require.NoError(t, err, stderr)

	back, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(readSample(t, "people.csv"), "\n"), string(back))
}

// TestEndToEnd_JSONToCSVHeaderUnion checks keys missing from some records
func TestEndToEnd_JSONToCSVHeaderUnion(t *testing.T) {
	stdout, stderr, err := runCLI(t, "", "json-to-csv", "-i", filepath.Join(samples, "orders.json"))
	require.NoError(t, err, stderr)

	expected := "id,customer,total,paid,note,coupon\n" +
		"1001,Ada Lovelace,59.9,true,,\n" +
		"1002,Grace Hopper,12.5,false,,SPRING\n"
	assert.Equal(t, expected, stdout)
}

// TestEndToEnd_JSONFormatting formats and minifies the same document
func TestEndToEnd_JSONFormatting(t *testing.T) {
	original := readSample(t, "orders.json")

	formatted, stderr, err := runCLI(t, "", "json-format", "-i", filepath.Join(samples, "orders.json"))
	require.NoError(t, err, stderr)
	// Numbers are rewritten canonically, so 59.90 prints as 59.9
	assert.Equal(t, strings.Replace(original, "59.90", "59.9", 1), formatted)

	minified, stderr, err := runCLI(t, formatted, "json-minify")
	require.NoError(t, err, stderr)
	assert.Equal(t, `[{"id":1001,"customer":"Ada Lovelace","total":59.9,"paid":true,"note":null},{"id":1002,"customer":"Grace Hopper","total":12.5,"paid":false,"coupon":"SPRING"}]`+"\n", minified)

	again, stderr, err := runCLI(t, minified, "json-format")
	require.NoError(t, err, stderr)
	assert.Equal(t, formatted, again)
}

// TestEndToEnd_YAML converts the YAML sample to JSON and back
func TestEndToEnd_YAML(t *testing.T) {
	jsonText, stderr, err := runCLI(t, "", "yaml-to-json", "-i", filepath.Join(samples, "service.yaml"))
	require.NoError(t, err, stderr)

	expected := `{
  "name": "billing-api",
  "port": 8080,
  "debug": false,
  "timeout": 2.5,
  "owner": null,
  "motto": "pay: on time"
}
`
	assert.Equal(t, expected, jsonText)

	yamlText, stderr, err := runCLI(t, jsonText, "json-to-yaml")
	require.NoError(t, err, stderr)
	assert.Equal(t, "name: billing-api\nport: 8080\ndebug: false\ntimeout: 2.5\nowner: null\nmotto: pay: on time\n", yamlText)
}

// TestEndToEnd_XMLFormatting formats the XML sample, then minifies and
// re-formats it
func TestEndToEnd_XMLFormatting(t *testing.T) {
	formatted, stderr, err := runCLI(t, "", "xml-format", "-i", filepath.Join(samples, "catalog.xml"))
	require.NoError(t, err, stderr)

	expected := `<?xml version="1.0" encoding="UTF-8"?>
<!-- sample catalog -->
<catalog xmlns:dc="http://purl.org/dc/elements/1.1/">
  <book id="bk101" lang="en">
    <dc:title>XML Developer's Guide</dc:title>
    <price currency="USD">44.95</price>
    <tags/>
  </book>
  <book id="bk102">
    <dc:title>Midnight Rain &amp; Other Stories</dc:title>
    <price currency="EUR">5.95</price>
  </book>
</catalog>
`
	assert.Equal(t, expected, formatted)

	minified, stderr, err := runCLI(t, formatted, "xml-minify")
	require.NoError(t, err, stderr)
	assert.NotContains(t, strings.TrimSpace(minified), "\n")
	assert.Contains(t, minified, `<book id="bk101" lang="en"><dc:title>`)

	again, stderr, err := runCLI(t, minified, "xml-format")
	require.NoError(t, err, stderr)
	assert.Equal(t, formatted, again)
}

// TestEndToEnd_Batch converts every sample CSV and JSON file in one run
func TestEndToEnd_Batch(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		content := "<r><n>" + name + "</n></r>"
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name+".xml"), []byte(content), 0o644))
	}

	outDir := filepath.Join(tempDir, "pretty")
	args := []string{"xml-format", "--output-dir", outDir, "-j", "2", "--indent", "4"}
	for _, name := range []string{"a", "b", "c", "d"} {
		args = append(args, "-i", filepath.Join(tempDir, name+".xml"))
	}

	stdout, stderr, err := runCLI(t, "", args...)
	require.NoError(t, err, stderr)
	assert.Equal(t, 4, strings.Count(stdout, "converted"))

	for _, name := range []string{"a", "b", "c", "d"} {
		content, err := os.ReadFile(filepath.Join(outDir, name+".xml"))
		require.NoError(t, err)
		assert.Equal(t, "<r>\n    <n>"+name+"</n>\n</r>", string(content))
	}

	// A second run leaves existing output alone
	stdout, stderr, err = runCLI(t, "", args...)
	require.NoError(t, err, stderr)
	assert.Equal(t, 4, strings.Count(stdout, "skipped"))
}

// TestEndToEnd_EdgeCases tests various edge cases
func TestEndToEnd_EdgeCases(t *testing.T) {
	testCases := []struct {
		name      string
		direction string
		input     string
		expected  string
		isError   bool
	}{
		{name: "EmptyArrayToCSV", direction: "json-to-csv", input: `[]`, expected: "\n"},
		{name: "EmptyObjectToYAML", direction: "json-to-yaml", input: `{}`, expected: "\n"},
		{name: "ScalarToYAML", direction: "json-to-yaml", input: `42`, expected: "42\n"},
		{name: "StringMinify", direction: "json-minify", input: ` "just a string" `, expected: "\"just a string\"\n"},
		{name: "WhitespaceOnly", direction: "json-format", input: "   \n  ", expected: "\n"},
		{name: "HeaderOnlyCSV", direction: "csv-to-json", input: "a,b\n", expected: "[]\n"},
		{name: "CommentsOnlyYAML", direction: "yaml-to-json", input: "# nothing\n", expected: "{}\n"},
		{name: "TrailingData", direction: "json-format", input: `{} {}`, expected: "invalid character '{' after top-level value", isError: true},
		{name: "XMLTwoRoots", direction: "xml-format", input: `<a/><b/>`, expected: "XML document has multiple root elements", isError: true},
		{name: "XMLUnclosed", direction: "xml-minify", input: `<a>`, expected: "unexpected EOF", isError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, tc.input, tc.direction)
			if tc.isError {
				require.Error(t, err)
				assert.Contains(t, stderr, tc.expected)
				assert.Empty(t, stdout)
				return
			}
			require.NoError(t, err, stderr)
			assert.Equal(t, tc.expected, stdout)
		})
	}
}
