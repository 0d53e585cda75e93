package template

import (
	"encoding/hex"
	"fmt"

	"github.com/jex-lang/go-jex/ast"
	"github.com/jex-lang/go-jex/errors"
)

// podElem binds a fixed-size block of bytes rendered as a lowercase hex
// string, two characters per byte, most significant nibble first.
type podElem struct {
	block   []byte
	isConst bool
}

// POD binds a fixed-size block of bytes. The block's length defines the
// expected payload size: extraction fails, leaving the block untouched,
// unless the decoded hex payload is exactly that long.
func POD(block []byte) *Template {
	return fromElem(&podElem{block: block})
}

// ConstPOD binds a fixed-size block of bytes for synthesis only.
func ConstPOD(block []byte) *Template {
	return fromElem(&podElem{block: block, isConst: true})
}

func (e *podElem) Kind() Kind  { return KindPOD }
func (e *podElem) Const() bool { return e.isConst }

func (e *podElem) Extract(node ast.Node) error {
	if e.isConst {
		return constError(node, "POD")
	}
	s, ok := node.(*ast.String)
	if !ok {
		return typeMismatch(node, "String")
	}
	if len(s.Value)%2 != 0 || len(s.Value)/2 != len(e.block) {
		return &errors.NodeError{
			Node:    node,
			Message: fmt.Sprintf("bad buffer size (expecting %d bytes, got %d)", len(e.block), len(s.Value)/2),
		}
	}
	decoded, err := hex.DecodeString(s.Value)
	if err != nil {
		return &errors.NodeError{Node: node, Message: "malformed hex payload: " + err.Error()}
	}
	copy(e.block, decoded)
	return nil
}

func (e *podElem) Synthetize() (ast.Node, error) {
	return &ast.String{Value: hex.EncodeToString(e.block)}, nil
}

// rawElem binds a variable-length byte buffer rendered as a hex string,
// or as null for an absent buffer.
type rawElem struct {
	ref     *[]byte
	isConst bool
}

// Raw binds a variable-length byte buffer. A nil or empty buffer
// synthesizes to null. Extraction allocates a fresh buffer sized from the
// decoded payload; it fails if the destination is already non-nil, which
// guards against extracting twice into the same buffer. On failure the
// destination stays nil.
func Raw(buf *[]byte) *Template {
	return fromElem(&rawElem{ref: buf})
}

// ConstRaw binds a byte slice for synthesis only.
func ConstRaw(buf []byte) *Template {
	return fromElem(&rawElem{ref: &buf, isConst: true})
}

func (e *rawElem) Kind() Kind  { return KindRaw }
func (e *rawElem) Const() bool { return e.isConst }

func (e *rawElem) Extract(node ast.Node) error {
	if e.isConst {
		return constError(node, "raw")
	}
	if *e.ref != nil {
		return &errors.NodeError{Node: node, Message: "destination buffer is already allocated"}
	}
	if _, isNull := node.(*ast.Null); isNull {
		*e.ref = nil
		return nil
	}
	s, ok := node.(*ast.String)
	if !ok {
		return typeMismatch(node, "String or Null")
	}
	if len(s.Value)%2 != 0 {
		return &errors.NodeError{
			Node:    node,
			Message: fmt.Sprintf("bad buffer size (odd hex length %d)", len(s.Value)),
		}
	}
	decoded, err := hex.DecodeString(s.Value)
	if err != nil {
		return &errors.NodeError{Node: node, Message: "malformed hex payload: " + err.Error()}
	}
	*e.ref = decoded
	return nil
}

func (e *rawElem) Synthetize() (ast.Node, error) {
	if len(*e.ref) == 0 {
		return &ast.Null{}, nil
	}
	return &ast.String{Value: hex.EncodeToString(*e.ref)}, nil
}
