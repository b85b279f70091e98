package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/b97tsk/intervalset"
	"github.com/b97tsk/intervalset/internal/script"
)

const _stdinName = "-"

func _openInput(name string) (io.ReadCloser, error) {
	if name == _stdinName {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// _loadSet reads a YAML sequence of [from, to] pairs. An empty name
// yields an empty set.
func _loadSet[T constraints.Ordered](name string, validate bool) (s *intervalset.Set[T], err error) {
	s = intervalset.New[T]()
	if name == "" {
		return
	}

	file, err := _openInput(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(s)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}

	if validate {
		if err := s.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "load %s", name)
		}
	}
	log.Debugf("loaded %d intervals from %s", s.Len(), name)
	return
}

func _loadScript[T constraints.Ordered](name string, validate bool) (*script.Script[T], error) {
	file, err := _openInput(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := script.Decode[T](file)
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", name)
	}
	if validate && s.Initial != nil {
		if err := s.Initial.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "load %s", name)
		}
	}
	log.Debugf("loaded %d ops from %s", len(s.Ops), name)
	return s, nil
}

// _parseEndpoint decodes a command line argument as a YAML scalar, so
// that "null" and "~" come back as nil.
func _parseEndpoint[T constraints.Ordered](arg string) (*T, error) {
	var v *T
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return nil, errors.Wrapf(err, "parse endpoint %q", arg)
	}
	return v, nil
}

func _writeSet[T constraints.Ordered](w io.Writer, s *intervalset.Set[T], format string) error {
	switch format {
	case _formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		fprintln(w, s)
		return nil
	}
}
