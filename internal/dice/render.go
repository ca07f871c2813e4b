package dice

import (
	"fmt"
	"strconv"
)

// opNode joins two subtrees with addition or subtraction. Its value is
// fixed at construction from the children's values.
type opNode struct {
	left  Node
	right Node
	op    Operator
	value int
}

// newOpNode builds an operation node over two evaluated subtrees.
//
// Precondition: left and right must be non-nil.
func newOpNode(left, right Node, op Operator) *opNode {
	v := left.Value() + right.Value()
	if op == OpSub {
		v = left.Value() - right.Value()
	}
	return &opNode{left: left, right: right, op: op, value: v}
}

func (n *opNode) Value() int { return n.value }

func (n *opNode) String() string {
	return fmt.Sprintf("%s %s %s", n.left, n.op, n.right)
}

// leaf is a resolved die roll or integer literal.
type leaf struct {
	die   bool
	faces int // set when die
	value int
}

func (l *leaf) Value() int { return l.value }

// String renders a literal as its decimal value and a die as "v(dF)". A
// natural maximum (v == F) gets the flagged "!*v*!(dF)" form; a minimum
// roll deliberately has no counterpart.
func (l *leaf) String() string {
	switch {
	case l.die && l.value == l.faces:
		return fmt.Sprintf("!*%d*!(d%d)", l.value, l.faces)
	case l.die:
		return fmt.Sprintf("%d(d%d)", l.value, l.faces)
	default:
		return strconv.Itoa(l.value)
	}
}
