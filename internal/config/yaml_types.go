package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"microapp-routes/internal/common"
)

// StringOrArray is a list of strings that can be written in YAML as a
// single string or as a sequence.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// UnmarshalYAML accepts "history: hash" as well as "history: {type: hash}".
func (h *HistoryConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		h.Type = HistoryType(str)

		return nil

	case yaml.MappingNode:
		type plain HistoryConfig

		var p plain

		if err := node.Decode(&p); err != nil {
			return err
		}

		*h = HistoryConfig(p)

		return nil

	default:
		return fmt.Errorf("expected history type or mapping, got %v", node.Kind)
	}
}
