package plist

import (
	"fmt"

	howett "howett.net/plist"
)

type binaryCodec struct {
	root map[string]interface{}
}

func decodeBinary(data []byte) (*binaryCodec, error) {
	root := map[string]interface{}{}
	if _, err := howett.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &binaryCodec{root: root}, nil
}

func (c *binaryCodec) exclusions() []string {
	paths := []string{}
	values, ok := c.root[ExclusionsKey].([]interface{})
	if !ok {
		return paths
	}
	for _, v := range values {
		if s, ok := v.(string); ok {
			paths = append(paths, s)
		}
	}
	return paths
}

func (c *binaryCodec) setExclusions(paths []string) {
	values := make([]interface{}, 0, len(paths))
	for _, p := range paths {
		values = append(values, p)
	}
	c.root[ExclusionsKey] = values
}

func (c *binaryCodec) encode() ([]byte, error) {
	data, err := howett.Marshal(c.root, howett.BinaryFormat)
	if err != nil {
		return nil, fmt.Errorf("binary encode: %w", err)
	}
	return data, nil
}
