package intervalset

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes r as the flow sequence [from, to].
func (r Interval[T]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range [2]T{r.From, r.To} {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &n)
	}
	return node, nil
}

// UnmarshalYAML decodes a [from, to] pair. A missing or null endpoint is
// an ErrInvalidRange.
func (r *Interval[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return errors.Errorf("line %d: interval must be a [from, to] pair", node.Line)
	}
	var pair [2]T
	for i, n := range node.Content {
		if n.ShortTag() == "!!null" {
			return errors.Wrapf(ErrInvalidRange, "line %d: null endpoint", n.Line)
		}
		if err := n.Decode(&pair[i]); err != nil {
			return err
		}
	}
	r.From, r.To = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes s as a sequence of pairs.
func (s *Set[T]) MarshalYAML() (interface{}, error) {
	if s.intervals == nil {
		return []Interval[T]{}, nil
	}
	return s.intervals, nil
}

// UnmarshalYAML replaces the content of s. Like New, it does not check
// the invariants.
func (s *Set[T]) UnmarshalYAML(node *yaml.Node) error {
	var intervals []Interval[T]
	if err := node.Decode(&intervals); err != nil {
		return err
	}
	s.intervals = intervals
	return nil
}
