package registry

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// excludesKey is the only key of the rule document the registry rewrites
const excludesKey = "excludes"

// codec reads and rewrites the excludes list of one document format
type codec interface {
	decode(data []byte) ([]rules.Rule, error)
	rewrite(data []byte, list []rules.Rule) ([]byte, error)
}

type yamlCodec struct{}

func (yamlCodec) decode(data []byte) ([]rules.Rule, error) {
	var doc struct {
		Excludes []rules.Rule `yaml:"excludes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Excludes, nil
}

// rewrite edits the document tree in place so that comments and the order
// of unrelated keys survive.
func (yamlCodec) rewrite(data []byte, list []rules.Rule) ([]byte, error) {
	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("unexpected YAML document structure")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rule document must be a mapping, found %s", root.Tag)
	}

	if list == nil {
		list = []rules.Rule{}
	}
	var value yaml.Node
	if err := value.Encode(list); err != nil {
		return nil, err
	}

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == excludesKey {
			root.Content[i+1] = &value
			replaced = true
			break
		}
	}
	if !replaced {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: excludesKey}
		root.Content = append(root.Content, key, &value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type tomlCodec struct{}

func (tomlCodec) decode(data []byte) ([]rules.Rule, error) {
	var doc struct {
		Excludes []rules.Rule `toml:"excludes"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Excludes, nil
}

func (tomlCodec) rewrite(data []byte, list []rules.Rule) ([]byte, error) {
	doc := map[string]interface{}{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}

	entries := make([]map[string]interface{}, 0, len(list))
	for _, r := range list {
		entries = append(entries, map[string]interface{}{"name": r.Name, "base": r.Base})
	}
	doc[excludesKey] = entries

	return toml.Marshal(doc)
}
