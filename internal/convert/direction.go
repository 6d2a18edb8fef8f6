package convert

import "github.com/mcncl/textconv/internal/errors"

// Direction names one conversion.
type Direction string

// Supported directions.
const (
	CSVToJSON  Direction = "csv-to-json"
	JSONToCSV  Direction = "json-to-csv"
	JSONFormat Direction = "json-format"
	JSONMinify Direction = "json-minify"
	YAMLToJSON Direction = "yaml-to-json"
	JSONToYAML Direction = "json-to-yaml"
	XMLFormat  Direction = "xml-format"
	XMLMinify  Direction = "xml-minify"
)

// Directions lists every supported direction in display order.
var Directions = []Direction{
	CSVToJSON,
	JSONToCSV,
	JSONFormat,
	JSONMinify,
	YAMLToJSON,
	JSONToYAML,
	XMLFormat,
	XMLMinify,
}

// Target describes the format a direction produces.
type Target struct {
	Extension   string
	ContentType string
	Filename    string
}

var targets = map[Direction]Target{
	CSVToJSON:  {Extension: ".json", ContentType: "application/json", Filename: "converted.json"},
	JSONToCSV:  {Extension: ".csv", ContentType: "text/csv", Filename: "converted.csv"},
	JSONFormat: {Extension: ".json", ContentType: "application/json", Filename: "formatted.json"},
	JSONMinify: {Extension: ".json", ContentType: "application/json", Filename: "formatted.json"},
	YAMLToJSON: {Extension: ".json", ContentType: "application/json", Filename: "converted.json"},
	JSONToYAML: {Extension: ".yaml", ContentType: "application/x-yaml", Filename: "converted.yaml"},
	XMLFormat:  {Extension: ".xml", ContentType: "application/xml", Filename: "formatted.xml"},
	XMLMinify:  {Extension: ".xml", ContentType: "application/xml", Filename: "formatted.xml"},
}

func (d Direction) String() string { return string(d) }

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	_, ok := targets[d]
	return ok
}

// Target returns the output format of d. Unknown directions yield the zero
// Target.
func (d Direction) Target() Target {
	return targets[d]
}

// ParseDirection turns a direction name into a Direction.
func ParseDirection(name string) (Direction, error) {
	d := Direction(name)
	if !d.Valid() {
		return "", errors.NewSemanticError(errors.ErrUnknownDirection)
	}
	return d, nil
}

// Names returns the names of all directions, e.g. for a CLI enum.
func Names() []string {
	names := make([]string, len(Directions))
	for i, d := range Directions {
		names[i] = d.String()
	}
	return names
}
