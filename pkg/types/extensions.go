// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"encoding/json"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vendor extensions are serialized inline: "x-" keys sit next to the
// standard fields of the node that carries them. The marshalers below
// implement that for the node types the pipeline mutates (document,
// operation, parameter, schema). Other nodes pass extensions through
// only if they arrive inside one of these.

func marshalJSONWithExtensions(base interface{}, ext map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	if len(ext) == 0 {
		return data, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage, len(ext))
	}
	for key, value := range ext {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}

func extensionsFromJSON(data []byte) (map[string]interface{}, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	var ext map[string]interface{}
	for key, raw := range fields {
		if !strings.HasPrefix(key, "x-") {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		if ext == nil {
			ext = make(map[string]interface{})
		}
		ext[key] = value
	}
	return ext, nil
}

func marshalYAMLWithExtensions(base interface{}, ext map[string]interface{}) (interface{}, error) {
	var node yaml.Node
	if err := node.Encode(base); err != nil {
		return nil, err
	}
	if len(ext) == 0 {
		return &node, nil
	}
	keys := make([]string, 0, len(ext))
	for key := range ext {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		var value yaml.Node
		if err := value.Encode(ext[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&value,
		)
	}
	return &node, nil
}

func extensionsFromYAML(value *yaml.Node) (map[string]interface{}, error) {
	if value.Kind != yaml.MappingNode {
		return nil, nil
	}
	var ext map[string]interface{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		if !strings.HasPrefix(key, "x-") {
			continue
		}
		var v interface{}
		if err := value.Content[i+1].Decode(&v); err != nil {
			return nil, err
		}
		if ext == nil {
			ext = make(map[string]interface{})
		}
		ext[key] = v
	}
	return ext, nil
}

// MarshalJSON implements json.Marshaler.
func (o OpenAPI) MarshalJSON() ([]byte, error) {
	type plain OpenAPI
	return marshalJSONWithExtensions(plain(o), o.Extensions)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OpenAPI) UnmarshalJSON(data []byte) error {
	type plain OpenAPI
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	ext, err := extensionsFromJSON(data)
	if err != nil {
		return err
	}
	*o = OpenAPI(p)
	o.Extensions = ext
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o OpenAPI) MarshalYAML() (interface{}, error) {
	type plain OpenAPI
	return marshalYAMLWithExtensions(plain(o), o.Extensions)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OpenAPI) UnmarshalYAML(value *yaml.Node) error {
	type plain OpenAPI
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	ext, err := extensionsFromYAML(value)
	if err != nil {
		return err
	}
	*o = OpenAPI(p)
	o.Extensions = ext
	return nil
}

// MarshalJSON implements json.Marshaler.
func (op Operation) MarshalJSON() ([]byte, error) {
	type plain Operation
	return marshalJSONWithExtensions(plain(op), op.Extensions)
}

// UnmarshalJSON implements json.Unmarshaler.
func (op *Operation) UnmarshalJSON(data []byte) error {
	type plain Operation
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	ext, err := extensionsFromJSON(data)
	if err != nil {
		return err
	}
	*op = Operation(p)
	op.Extensions = ext
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (op Operation) MarshalYAML() (interface{}, error) {
	type plain Operation
	return marshalYAMLWithExtensions(plain(op), op.Extensions)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (op *Operation) UnmarshalYAML(value *yaml.Node) error {
	type plain Operation
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	ext, err := extensionsFromYAML(value)
	if err != nil {
		return err
	}
	*op = Operation(p)
	op.Extensions = ext
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Parameter) MarshalJSON() ([]byte, error) {
	type plain Parameter
	return marshalJSONWithExtensions(plain(p), p.Extensions)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	type plain Parameter
	var pp plain
	if err := json.Unmarshal(data, &pp); err != nil {
		return err
	}
	ext, err := extensionsFromJSON(data)
	if err != nil {
		return err
	}
	*p = Parameter(pp)
	p.Extensions = ext
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Parameter) MarshalYAML() (interface{}, error) {
	type plain Parameter
	return marshalYAMLWithExtensions(plain(p), p.Extensions)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Parameter) UnmarshalYAML(value *yaml.Node) error {
	type plain Parameter
	var pp plain
	if err := value.Decode(&pp); err != nil {
		return err
	}
	ext, err := extensionsFromYAML(value)
	if err != nil {
		return err
	}
	*p = Parameter(pp)
	p.Extensions = ext
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Schema) MarshalJSON() ([]byte, error) {
	type plain Schema
	return marshalJSONWithExtensions(plain(s), s.Extensions)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type plain Schema
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	ext, err := extensionsFromJSON(data)
	if err != nil {
		return err
	}
	*s = Schema(p)
	s.Extensions = ext
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Schema) MarshalYAML() (interface{}, error) {
	type plain Schema
	return marshalYAMLWithExtensions(plain(s), s.Extensions)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	type plain Schema
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	ext, err := extensionsFromYAML(value)
	if err != nil {
		return err
	}
	*s = Schema(p)
	s.Extensions = ext
	return nil
}
