package ast

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/brewin-lang/brewin/brewin/errors"
	"gopkg.in/yaml.v3"
)

// The key of a YAML mapping which holds the element type.
const ElemTypeKey = "elem_type"

// Parses a syntax tree from its YAML representation.
// Since YAML is a superset of JSON, JSON documents are accepted as well.
// The spans of all elements point into the YAML document.
func LoadYAML(data []byte, filename string) (*Element, error) {
	var root Element
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("could not decode syntax tree: %w", err)
	}

	if root.ElemType == "" {
		return nil, fmt.Errorf("could not decode syntax tree: document is empty")
	}

	walk(&root, func(node *Element) {
		node.Range.Filename = filename
	})

	return &root, nil
}

// Serializes a syntax tree to YAML.
func DumpYAML(root *Element) ([]byte, error) {
	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("could not encode syntax tree: %w", err)
	}
	return out, nil
}

func (self *Element) MarshalYAML() (any, error) {
	return self.toNode()
}

func (self *Element) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := elementFromNode(node)
	if err != nil {
		return err
	}
	*self = *decoded
	return nil
}

func (self *Element) toNode() (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	mapping.Content = append(mapping.Content, stringNode(ElemTypeKey), stringNode(self.ElemType))

	keys := make([]string, 0, len(self.Dict))
	for key := range self.Dict {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		child, err := childToNode(self.Dict[key])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", self.ElemType, key, err)
		}
		mapping.Content = append(mapping.Content, stringNode(key), child)
	}

	return mapping, nil
}

func childToNode(child any) (*yaml.Node, error) {
	switch child := child.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return stringNode(child), nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(child, 10)}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(child)}, nil
	case *Element:
		if child == nil {
			return childToNode(nil)
		}
		return child.toNode()
	case []*Element:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range child {
			itemNode, err := item.toNode()
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, itemNode)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("unsupported child value of type %T", child)
	}
}

func stringNode(val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val}
}

func elementFromNode(node *yaml.Node) (*Element, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping describing an element", node.Line)
	}

	loc := errors.Location{Line: uint(node.Line), Column: uint(node.Column)}
	elem := NewElement("", errors.Span{Start: loc, End: loc})

	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		keyNode := node.Content[idx]
		valNode := node.Content[idx+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: element keys must be scalars", keyNode.Line)
		}
		key := keyNode.Value

		if key == ElemTypeKey {
			if valNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: `%s` must be a string", valNode.Line, ElemTypeKey)
			}
			elem.ElemType = valNode.Value
			continue
		}

		child, err := childFromNode(valNode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		elem.Dict[key] = child
	}

	if elem.ElemType == "" {
		return nil, fmt.Errorf("line %d: element has no `%s`", node.Line, ElemTypeKey)
	}

	return elem, nil
}

func childFromNode(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		return elementFromNode(node)
	case yaml.SequenceNode:
		items := make([]*Element, 0, len(node.Content))
		for _, itemNode := range node.Content {
			item, err := elementFromNode(itemNode)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!str":
			return node.Value, nil
		case "!!int":
			var val int64
			if err := node.Decode(&val); err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}
			return val, nil
		case "!!bool":
			var val bool
			if err := node.Decode(&val); err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}
			return val, nil
		default:
			return nil, fmt.Errorf("line %d: unsupported scalar type %s", node.Line, node.ShortTag())
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}

func walk(node *Element, fn func(node *Element)) {
	if node == nil {
		return
	}
	fn(node)
	for _, child := range node.Dict {
		switch child := child.(type) {
		case *Element:
			walk(child, fn)
		case []*Element:
			for _, item := range child {
				walk(item, fn)
			}
		}
	}
}
