package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the export encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatXML, FormatJSON, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be xml, json, or yaml)", s)
}

// Marshal encodes doc in the given format.
func Marshal(doc *Document, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatXML, "":
		return ToXML(doc, pretty)
	case FormatJSON:
		return ToJSON(doc, pretty)
	case FormatYAML:
		return ToYAML(doc)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// ToXML serializes doc with an XML declaration.
func ToXML(doc *Document, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if pretty {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// ToJSON serializes doc to JSON.
func ToJSON(doc *Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// ToYAML serializes doc to YAML.
func ToYAML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
