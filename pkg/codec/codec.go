package codec

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Codec errors.
var (
	ErrRootMismatch  = errors.New("document root does not match")
	ErrUnknownFormat = errors.New("unknown document format")
)

// Format is a document encoding.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatXML
	FormatJSON
	FormatYAML
	FormatCBOR
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// CBOR modes for entity documents.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes node in format. CBOR output is a Snapshot.
func Marshal(f Format, node model.Node) ([]byte, error) {
	switch f {
	case FormatXML:
		return MarshalXML(node)
	case FormatJSON:
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatCBOR:
		snap, err := NewSnapshot(node)
		if err != nil {
			return nil, err
		}
		return snap.Marshal()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Unmarshal decodes data in format into node.
func Unmarshal(f Format, data []byte, node model.Node) error {
	switch f {
	case FormatXML:
		return UnmarshalXML(data, node)
	case FormatJSON:
		return json.Unmarshal(data, node)
	case FormatYAML:
		return yaml.Unmarshal(data, node)
	case FormatCBOR:
		snap, err := UnmarshalSnapshot(data)
		if err != nil {
			return err
		}
		return snap.Restore(node)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// MarshalXML encodes node as an indented XML document whose root element
// is the object name.
func MarshalXML(node model.Node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	start := xml.StartElement{Name: xml.Name{Local: node.ObjectName()}}
	if err := enc.EncodeElement(node, start); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// UnmarshalXML decodes an XML document into node. The root element must
// be node's object name.
func UnmarshalXML(data []byte, node model.Node) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	start, err := rootElement(dec)
	if err != nil {
		return err
	}
	if start.Name.Local != node.ObjectName() {
		return fmt.Errorf("%w: got <%s>, want <%s>", ErrRootMismatch, start.Name.Local, node.ObjectName())
	}
	return dec.DecodeElement(node, &start)
}

// XMLRoot returns the name of the root element of an XML document.
func XMLRoot(data []byte) (string, error) {
	start, err := rootElement(xml.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return "", err
	}
	return start.Name.Local, nil
}

func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, fmt.Errorf("%w: empty document", ErrRootMismatch)
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}
