package value

import (
	"errors"
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"
)

// maxAliasDepth bounds alias expansion so that self-referencing anchors
// fail instead of recursing forever.
const maxAliasDepth = 64

// DecodeYAML parses a single YAML document into a Value. Mapping keys keep
// document order, aliases are expanded and "<<" merge keys are applied.
// An empty document decodes to Undefined.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Format: "yaml", Err: err}
	}
	if doc.Kind == 0 {
		return Undefined{}, nil
	}
	return FromYAMLNode(&doc)
}

// FromYAMLNode converts an already parsed yaml.Node into a Value.
func FromYAMLNode(node *yaml.Node) (Value, error) {
	return decodeYAMLNode(node, "", 0)
}

func decodeYAMLNode(node *yaml.Node, path string, aliasDepth int) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Undefined{}, nil
		}
		return decodeYAMLNode(node.Content[0], path, aliasDepth)
	case yaml.AliasNode:
		if aliasDepth >= maxAliasDepth {
			return nil, &DecodeError{Format: "yaml", Path: path, Err: errors.New("alias expansion too deep")}
		}
		return decodeYAMLNode(node.Alias, path, aliasDepth+1)
	case yaml.SequenceNode:
		arr := make(Array, 0, len(node.Content))
		for i, child := range node.Content {
			v, err := decodeYAMLNode(child, joinPath(path, fmt.Sprintf("[%d]", i)), aliasDepth)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := NewObject()
		if err := decodeYAMLMapping(obj, node, path, aliasDepth); err != nil {
			return nil, err
		}
		return obj, nil
	case yaml.ScalarNode:
		return decodeYAMLScalar(node, path)
	}
	return nil, &DecodeError{Format: "yaml", Path: path, Err: fmt.Errorf("unsupported node kind %d", node.Kind)}
}

func decodeYAMLMapping(obj *Object, node *yaml.Node, path string, aliasDepth int) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			if err := applyYAMLMerge(obj, valNode, path, aliasDepth); err != nil {
				return err
			}
			continue
		}
		if keyNode.Kind != yaml.ScalarNode {
			return &DecodeError{Format: "yaml", Path: path, Err: fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)}
		}
		key := keyNode.Value
		v, err := decodeYAMLNode(valNode, joinPath(path, key), aliasDepth)
		if err != nil {
			return err
		}
		obj.Set(key, v)
	}
	return nil
}

// applyYAMLMerge copies the entries of a "<<" source into obj. Keys set
// explicitly in obj win over merged ones.
func applyYAMLMerge(obj *Object, src *yaml.Node, path string, aliasDepth int) error {
	v, err := decodeYAMLNode(src, path, aliasDepth)
	if err != nil {
		return err
	}
	var sources []*Object
	switch m := v.(type) {
	case *Object:
		sources = append(sources, m)
	case Array:
		for _, elem := range m {
			o, ok := elem.(*Object)
			if !ok {
				return &DecodeError{Format: "yaml", Path: path, Err: errors.New("merge sequence must contain mappings")}
			}
			sources = append(sources, o)
		}
	default:
		return &DecodeError{Format: "yaml", Path: path, Err: errors.New("merge value must be a mapping")}
	}
	for _, s := range sources {
		s.Range(func(k string, val Value) bool {
			if !obj.Has(k) {
				obj.Set(k, val)
			}
			return true
		})
	}
	return nil
}

func decodeYAMLScalar(node *yaml.Node, path string) (Value, error) {
	wrap := func(err error) error {
		return &DecodeError{Format: "yaml", Path: path, Err: fmt.Errorf("line %d: %w", node.Line, err)}
	}
	switch node.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, wrap(err)
		}
		return Bool(b), nil
	case "!!int":
		var n int64
		if err := node.Decode(&n); err == nil {
			return Number(n), nil
		}
		i, ok := new(big.Int).SetString(node.Value, 0)
		if !ok {
			return nil, wrap(fmt.Errorf("invalid integer %q", node.Value))
		}
		return NewBigInt(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, wrap(err)
		}
		return Number(f), nil
	default:
		return String(node.Value), nil
	}
}
