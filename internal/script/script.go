// Package script decodes and runs sequences of add/remove operations
// against an interval set.
package script

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/b97tsk/intervalset"
)

type Kind int

const (
	Add Kind = iota + 1
	Remove
)

var kindNames = map[Kind]string{
	Add:    "add",
	Remove: "remove",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(name string) (Kind, error) {
	for k, v := range kindNames {
		if v == name {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown op %q", name)
}

func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	kind, err := ParseKind(name)
	if err != nil {
		return errors.WithMessagef(err, "line %d", node.Line)
	}
	*k = kind
	return nil
}

// Op is a single operation. From and To are pointers so that a missing
// endpoint survives decoding and can be rejected.
type Op[T constraints.Ordered] struct {
	Kind Kind `yaml:"op"`
	From *T   `yaml:"from"`
	To   *T   `yaml:"to"`
}

func NewOp[T constraints.Ordered](kind Kind, from, to T) Op[T] {
	return Op[T]{Kind: kind, From: &from, To: &to}
}

func (op Op[T]) String() string {
	return fmt.Sprintf("%v(%s, %s)", op.Kind, endpoint(op.From), endpoint(op.To))
}

func endpoint[T any](v *T) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(*v)
}

// Apply runs op against s. The set is left unchanged on error.
func (op Op[T]) Apply(s *intervalset.Set[T]) error {
	if op.From == nil || op.To == nil {
		return errors.Wrapf(intervalset.ErrInvalidRange, "from=%s, to=%s", endpoint(op.From), endpoint(op.To))
	}
	var err error
	switch op.Kind {
	case Add:
		_, err = s.Add(*op.From, *op.To)
	case Remove:
		_, err = s.Remove(*op.From, *op.To)
	default:
		err = errors.Errorf("unknown op %v", op.Kind)
	}
	return err
}

// Script is an optional initial set followed by operations.
type Script[T constraints.Ordered] struct {
	Initial *intervalset.Set[T] `yaml:"initial,omitempty"`
	Ops     []Op[T]             `yaml:"ops"`
}

// Decode reads a YAML script from r. Unknown fields are errors.
func Decode[T constraints.Ordered](r io.Reader) (*Script[T], error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script[T]
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return &s, nil
		}
		return nil, errors.Wrap(err, "decode script")
	}
	return &s, nil
}

// Run applies the operations in order to a copy of the initial set and
// returns the result. It stops at the first failing operation; the
// returned set then holds the effect of the operations before it.
func (s *Script[T]) Run(hook func(i int, op Op[T], result *intervalset.Set[T])) (*intervalset.Set[T], error) {
	set := intervalset.New[T]()
	if s.Initial != nil {
		set = s.Initial.Clone()
	}
	for i, op := range s.Ops {
		if err := op.Apply(set); err != nil {
			return set, errors.WithMessagef(err, "op %d: %v", i, op)
		}
		if hook != nil {
			hook(i, op, set)
		}
	}
	return set, nil
}
