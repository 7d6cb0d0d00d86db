package parsephp

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders t as an ordered YAML node: positional trees become
// sequences, all others mappings.
func (t *Tree) MarshalYAML() (any, error) {
	return t.yamlNode(), nil
}

func (t *Tree) yamlNode() *yaml.Node {
	if t.Len() > 0 && t.IsList() {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t.entries {
			n.Content = append(n.Content, e.Value.yamlNode())
		}
		return n
	}
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range t.entries {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key.String()},
			e.Value.yamlNode())
	}
	return n
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindNested:
		return v.tree.yamlNode()
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.Render(BoolAsString)}
	case KindInvalid:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
}

// UnmarshalYAML reads an ordered tree from a mapping or a sequence. Booleans
// become Bool, nulls the empty string, all other scalars strings.
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.DocumentNode || node.Kind == yaml.AliasNode {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
			continue
		}
		if len(node.Content) == 0 {
			t.Replace(nil)
			return nil
		}
		node = node.Content[0]
	}
	entries, err := yamlEntries(node)
	if err != nil {
		return err
	}
	t.Replace(entries)
	return nil
}

func yamlEntries(node *yaml.Node) ([]Entry, error) {
	var entries []Entry
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: StringKey(node.Content[i].Value), Value: v})
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: IntKey(i), Value: v})
		}
	case yaml.ScalarNode:
		if node.ShortTag() != "!!null" {
			return nil, fmt.Errorf("line %d: tree must be a mapping or a sequence, got scalar %q", node.Line, node.Value)
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %v", node.Line, node.Kind)
	}
	return entries, nil
}

func yamlValue(node *yaml.Node) (Value, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		entries, err := yamlEntries(node)
		if err != nil {
			return Value{}, err
		}
		return Nested(NewTree(entries...)), nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return Value{}, err
			}
			return Bool(b), nil
		case "!!null":
			return String(""), nil
		}
		return String(node.Value), nil
	}
	return Value{}, fmt.Errorf("line %d: unsupported yaml node kind %v", node.Line, node.Kind)
}
