package wff

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// node is the interchange representation of a formula, e.g
//
// {"type": "conjunction", "leftOperand": {"type": "atomic", "value": "A"}, "rightOperand": {"type": "atomic", "value": "B"}}
type node struct {
	Type         string `json:"type" yaml:"type"`
	Value        string `json:"value,omitempty" yaml:"value,omitempty"`
	Operand      *node  `json:"operand,omitempty" yaml:"operand,omitempty"`
	LeftOperand  *node  `json:"leftOperand,omitempty" yaml:"leftOperand,omitempty"`
	RightOperand *node  `json:"rightOperand,omitempty" yaml:"rightOperand,omitempty"`
}

func toNode(f Formula) (*node, error) {
	switch f := f.(type) {
	case atom:
		return &node{Type: Atomic.String(), Value: string(f)}, nil
	case not:
		op, err := toNode(f[0])
		if err != nil {
			return nil, err
		}
		return &node{Type: Negation.String(), Operand: op}, nil
	case binary:
		if !f.kind.IsBinary() {
			return nil, fmt.Errorf("%w: %v is not a binary connective", ErrMalformed, f.kind)
		}
		left, err := toNode(f.left)
		if err != nil {
			return nil, err
		}
		right, err := toNode(f.right)
		if err != nil {
			return nil, err
		}
		return &node{Type: f.kind.String(), LeftOperand: left, RightOperand: right}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrMalformed, f)
	}
}

func (n *node) formula(depth int) (Formula, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: missing subformula", ErrMalformed)
	}
	if depth > MaxNesting {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, MaxNesting)
	}
	k, err := ParseKind(n.Type)
	if err != nil {
		return nil, err
	}
	switch k {
	case Atomic:
		if !Letter(n.Value).Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLetter, n.Value)
		}
		return atom(n.Value), nil
	case Negation:
		op, err := n.Operand.formula(depth + 1)
		if err != nil {
			return nil, err
		}
		return not{op}, nil
	default:
		left, err := n.LeftOperand.formula(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := n.RightOperand.formula(depth + 1)
		if err != nil {
			return nil, err
		}
		return binary{kind: k, left: left, right: right}, nil
	}
}

// Marshal returns the JSON encoding of f, as transferred when a tile is dragged.
func Marshal(f Formula) ([]byte, error) {
	n, err := toNode(f)
	if err != nil {
		return nil, fmt.Errorf("could not encode formula: %w", err)
	}
	return json.Marshal(n)
}

// Unmarshal decodes a JSON encoded formula.
func Unmarshal(data []byte) (Formula, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("could not decode formula: %w: %v", ErrMalformed, err)
	}
	f, err := n.formula(0)
	if err != nil {
		return nil, fmt.Errorf("could not decode formula: %w", err)
	}
	return f, nil
}

// MarshalYAML returns the YAML encoding of f. Fields are the same as in the JSON encoding.
func MarshalYAML(f Formula) ([]byte, error) {
	n, err := toNode(f)
	if err != nil {
		return nil, fmt.Errorf("could not encode formula: %w", err)
	}
	return yaml.Marshal(n)
}

// UnmarshalYAML decodes a YAML encoded formula.
func UnmarshalYAML(data []byte) (Formula, error) {
	var n node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("could not decode formula: %w: %v", ErrMalformed, err)
	}
	f, err := n.formula(0)
	if err != nil {
		return nil, fmt.Errorf("could not decode formula: %w", err)
	}
	return f, nil
}
