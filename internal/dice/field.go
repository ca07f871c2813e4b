package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator tags an addition or subtraction field.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
)

// String returns the operator's symbol.
func (o Operator) String() string {
	if o == OpSub {
		return "-"
	}
	return "+"
}

// TermKind classifies a Field after splitting.
type TermKind int

const (
	// TermOperator is a "+" or "-" marker between operands.
	TermOperator TermKind = iota
	// TermDie is an operand of the form [multiplier]d<faces>.
	TermDie
	// TermLiteral is a plain integer operand.
	TermLiteral
)

// Field is one token of a split expression. Operand fields are classified
// at split time so downstream logic dispatches on Kind rather than
// re-inspecting strings.
type Field struct {
	Raw        string
	Kind       TermKind
	Op         Operator // set when Kind == TermOperator
	Multiplier int      // set when Kind == TermDie
	Faces      int      // set when Kind == TermDie
	Literal    int      // set when Kind == TermLiteral
}

// Split scans raw left to right and produces its ordered field sequence:
// classified operands interleaved with operator markers.
//
// A "-" seen with an empty buffer directly after a pushed "-" is
// sign-continuation and is absorbed, so "5--3" splits as [5 - 3]. Only one
// continuation is allowed per operand position; further consecutive "-"
// fail with ErrOperatorPlacement.
//
// Postcondition: on success the sequence alternates operand/operator and
// starts with an operand; it may end with an operator (the builder rejects
// that case).
func Split(raw string) ([]Field, error) {
	var fields []Field
	var buf strings.Builder
	absorbed := false

	pushOperand := func(op Operator) error {
		operand := strings.TrimSpace(buf.String())
		if operand == "" {
			if len(fields) == 0 {
				return fmt.Errorf("%w: %q begins with %q", ErrOperatorPlacement, raw, op.String())
			}
			return fmt.Errorf("%w: no operand before %q in %q", ErrOperatorPlacement, op.String(), raw)
		}
		f, err := classify(operand)
		if err != nil {
			return err
		}
		fields = append(fields, f, Field{Raw: op.String(), Kind: TermOperator, Op: op})
		buf.Reset()
		absorbed = false
		return nil
	}

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '+':
			if err := pushOperand(OpAdd); err != nil {
				return nil, err
			}
		case '-':
			if strings.TrimSpace(buf.String()) == "" && len(fields) > 0 &&
				fields[len(fields)-1].Kind == TermOperator && fields[len(fields)-1].Op == OpSub {
				if absorbed {
					return nil, fmt.Errorf("%w: repeated %q in %q", ErrOperatorPlacement, "-", raw)
				}
				absorbed = true
				continue
			}
			if err := pushOperand(OpSub); err != nil {
				return nil, err
			}
		default:
			buf.WriteByte(raw[i])
		}
	}

	if operand := strings.TrimSpace(buf.String()); operand != "" {
		f, err := classify(operand)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

// classify tags a trimmed operand as a die term or an integer literal.
func classify(operand string) (Field, error) {
	if d := dieIndex(operand); d >= 0 {
		return classifyDie(operand, d)
	}
	if strings.ContainsRune(operand, 'd') {
		return Field{}, fmt.Errorf("%w: no face count in %q", ErrMalformedDie, operand)
	}
	n, err := strconv.Atoi(operand)
	if err != nil {
		return Field{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, operand)
	}
	return Field{Raw: operand, Kind: TermLiteral, Literal: n}, nil
}

// dieIndex returns the index of the first 'd' followed by a digit, or -1.
func dieIndex(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == 'd' && isDigit(s[i+1]) {
			return i
		}
	}
	return -1
}

// classifyDie parses an operand whose 'd' sits at index d.
//
// Postcondition: on success Multiplier >= 1 and Faces >= 1.
func classifyDie(operand string, d int) (Field, error) {
	mult := 1
	if d > 0 {
		m, err := strconv.Atoi(operand[:d])
		if err != nil {
			return Field{}, fmt.Errorf("%w: bad multiplier in %q", ErrMalformedDie, operand)
		}
		if m < 1 {
			return Field{}, fmt.Errorf("%w: multiplier must be >= 1 in %q", ErrMalformedDie, operand)
		}
		mult = m
	}

	end := d + 1
	for end < len(operand) && isDigit(operand[end]) {
		end++
	}
	if end != len(operand) {
		return Field{}, fmt.Errorf("%w: trailing %q in %q", ErrMalformedDie, operand[end:], operand)
	}
	faces, err := strconv.Atoi(operand[d+1 : end])
	if err != nil {
		return Field{}, fmt.Errorf("%w: bad face count in %q", ErrMalformedDie, operand)
	}
	if faces < 1 {
		return Field{}, fmt.Errorf("%w: face count must be >= 1 in %q", ErrMalformedDie, operand)
	}

	return Field{Raw: operand, Kind: TermDie, Multiplier: mult, Faces: faces}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
