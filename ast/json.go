package ast

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kntjspr/automata-new/internal/jsonutil"
)

// jsonNode mirrors Node but with only the fields relevant to its Kind
// present, and in the fixed key order spec.md §4.7 requires: type, then
// kind-specific payload fields, in the order they are declared below.
type jsonNode struct {
	Type  string     `json:"type"`
	Char  *string    `json:"char,omitempty"`
	Class *[]string  `json:"class,omitempty"`
	Left  *jsonNode  `json:"left,omitempty"`
	Right *jsonNode  `json:"right,omitempty"`
	Min   *int       `json:"min,omitempty"`
	Max   *int       `json:"max,omitempty"`
}

func toJSONNode(n Node) *jsonNode {
	jn := &jsonNode{Type: n.Kind.String()}
	switch n.Kind {
	case KindChar:
		s := jsonutil.EncodeSymbol(n.Char, n.Char == 0)
		jn.Char = &s
	case KindCharClass:
		members := make([]string, 0, len(n.Class))
		for c := range n.Class {
			members = append(members, jsonutil.EncodeSymbol(c, c == 0))
		}
		sort.Strings(members)
		jn.Class = &members
	case KindUnion, KindConcat:
		jn.Left = toJSONNode(*n.Left)
		jn.Right = toJSONNode(*n.Right)
	case KindStar, KindPlus, KindOptional, KindGroup:
		jn.Left = toJSONNode(*n.Left)
	case KindRepeatN:
		jn.Left = toJSONNode(*n.Left)
		min, max := n.Min, n.Max
		jn.Min = &min
		jn.Max = &max
	}
	return jn
}

func fromJSONNode(jn *jsonNode) (Node, error) {
	if jn == nil {
		return Node{}, fmt.Errorf("ast: nil node in JSON")
	}
	var kind Kind
	switch jn.Type {
	case "Epsilon":
		kind = KindEpsilon
	case "Char":
		kind = KindChar
	case "Any":
		kind = KindAny
	case "CharClass":
		kind = KindCharClass
	case "Union":
		kind = KindUnion
	case "Concat":
		kind = KindConcat
	case "Star":
		kind = KindStar
	case "Plus":
		kind = KindPlus
	case "Optional":
		kind = KindOptional
	case "Group":
		kind = KindGroup
	case "StartAnchor":
		kind = KindStartAnchor
	case "EndAnchor":
		kind = KindEndAnchor
	case "RepeatN":
		kind = KindRepeatN
	default:
		return Node{}, fmt.Errorf("ast: unknown node type %q", jn.Type)
	}

	n := Node{Kind: kind}
	if jn.Char != nil {
		c, _ := jsonutil.DecodeSymbol(*jn.Char)
		n.Char = c
	}
	if jn.Class != nil {
		n.Class = make(map[byte]bool, len(*jn.Class))
		for _, s := range *jn.Class {
			c, _ := jsonutil.DecodeSymbol(s)
			n.Class[c] = true
		}
	}
	if jn.Left != nil {
		left, err := fromJSONNode(jn.Left)
		if err != nil {
			return Node{}, err
		}
		n.Left = &left
	}
	if jn.Right != nil {
		right, err := fromJSONNode(jn.Right)
		if err != nil {
			return Node{}, err
		}
		n.Right = &right
	}
	if jn.Min != nil {
		n.Min = *jn.Min
	}
	if jn.Max != nil {
		n.Max = *jn.Max
	}
	return n, nil
}

// ToJSON renders the canonical JSON representation of the tree rooted at n.
func ToJSON(n Node) ([]byte, error) {
	return json.Marshal(toJSONNode(n))
}

// FromJSON reconstructs a Node from the output of ToJSON.
func FromJSON(data []byte) (Node, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return Node{}, fmt.Errorf("ast: %w", err)
	}
	return fromJSONNode(&jn)
}
