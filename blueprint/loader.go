package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a stream of YAML documents, one blueprint per document.
//
// The result is untyped so that Validator sees what the document actually
// held: a quoted or plain string name stays a string, `name: 12` becomes an
// int, and the constant mapping is kept as a *yaml.Node to preserve its order.
func Decode(r io.Reader) ([]map[string]any, error) {
	dec := yaml.NewDecoder(r)

	var out []map[string]any
	for i := 0; ; i++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode blueprint document %d: %w", i, err)
		}

		raw, err := documentToRaw(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode blueprint document %d: %w", i, err)
		}
		if raw != nil {
			out = append(out, raw)
		}
	}

	return out, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) ([]map[string]any, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile reads every blueprint document in path.
func LoadFile(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blueprint file: %w", err)
	}

	docs, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse blueprint file %s: %w", path, err)
	}
	return docs, nil
}

func documentToRaw(doc *yaml.Node) (map[string]any, error) {
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	root = resolveNode(root)
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: blueprint must be a mapping", root.Line)
	}

	raw := make(map[string]any, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := resolveNode(root.Content[i])
		valueNode := root.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		if keyNode.Value == KeyConstant {
			raw[KeyConstant] = valueNode
			continue
		}

		var v any
		if err := valueNode.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: decode %q: %w", valueNode.Line, keyNode.Value, err)
		}
		raw[keyNode.Value] = v
	}

	return raw, nil
}
