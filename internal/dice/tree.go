package dice

import "fmt"

// Node is one vertex of an evaluated expression tree. Evaluation happens
// during construction; a node's value and rendering never change afterward.
type Node interface {
	// Value returns the node's evaluated integer.
	Value() int
	// String renders the node's roll trace.
	String() string
}

// Build splits raw and constructs its evaluated tree, rolling each die with
// src as the corresponding leaf is created.
//
// Precondition: src must be non-nil when raw contains die terms.
func Build(raw string, src Source) (Node, error) {
	fields, err := Split(raw)
	if err != nil {
		return nil, err
	}
	return FromFields(fields, src)
}

// FromFields constructs an evaluated tree from an already-split field
// sequence. Operand subranges recurse through FromFields again, so each
// side of an operator is routed through root location independently.
func FromFields(fields []Field, src Source) (Node, error) {
	rootIdx, err := findRoot(fields)
	if err != nil {
		return nil, err
	}

	root := fields[rootIdx]
	switch {
	case root.Kind == TermOperator:
		if rootIdx == 0 || rootIdx == len(fields)-1 {
			return nil, fmt.Errorf("%w: %q at sequence boundary", ErrOperatorPlacement, root.Raw)
		}
		left, err := FromFields(fields[:rootIdx], src)
		if err != nil {
			return nil, err
		}
		right, err := FromFields(fields[rootIdx+1:], src)
		if err != nil {
			return nil, err
		}
		return newOpNode(left, right, root.Op), nil

	case root.Kind == TermDie && root.Multiplier > 1:
		// NdF never survives as a leaf; rebuild it as N separate 1dF rolls.
		return FromFields(expandMultiDie(root), src)

	case root.Kind == TermDie:
		return &leaf{die: true, faces: root.Faces, value: src.Intn(root.Faces) + 1}, nil

	default:
		return &leaf{value: root.Literal}, nil
	}
}

// findRoot picks the operator at the top of the current subtree: the last
// "-" when any is present, else the first "+", else the sequence must be a
// single operand at index 0.
func findRoot(fields []Field) (int, error) {
	lastSub, firstAdd := -1, -1
	for i, f := range fields {
		if f.Kind != TermOperator {
			continue
		}
		if f.Op == OpSub {
			lastSub = i
		} else if firstAdd < 0 {
			firstAdd = i
		}
	}

	if lastSub >= 0 {
		return lastSub, nil
	}
	if firstAdd >= 0 {
		return firstAdd, nil
	}
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: %d fields", ErrMissingOperator, len(fields))
	}
	return 0, nil
}

// expandMultiDie rewrites an NdF field into N single-die fields joined by
// "+" markers.
//
// Precondition: f.Kind == TermDie and f.Multiplier > 1.
// Postcondition: the returned sequence contains f.Multiplier dice, each
// with Multiplier == 1 and the original face count.
func expandMultiDie(f Field) []Field {
	single := Field{
		Raw:        fmt.Sprintf("1d%d", f.Faces),
		Kind:       TermDie,
		Multiplier: 1,
		Faces:      f.Faces,
	}
	plus := Field{Raw: "+", Kind: TermOperator, Op: OpAdd}

	out := make([]Field, 0, 2*f.Multiplier-1)
	out = append(out, single)
	for i := 1; i < f.Multiplier; i++ {
		out = append(out, plus, single)
	}
	return out
}
