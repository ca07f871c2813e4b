package dice

import "errors"

// Error kinds for malformed expressions. Every failure aborts the whole
// input line; callers distinguish kinds with errors.Is.
var (
	// ErrOperatorPlacement reports a "+" or "-" at an expression boundary,
	// or one with no operand content on its required side.
	ErrOperatorPlacement = errors.New("dice: misplaced operator")

	// ErrMissingOperator reports multiple operands with no operator
	// joining them, or an empty field sequence.
	ErrMissingOperator = errors.New("dice: operands without a joining operator")

	// ErrMalformedDie reports a die term whose face count cannot be
	// determined, such as "d" or "3d".
	ErrMalformedDie = errors.New("dice: malformed die term")

	// ErrInvalidLiteral reports an operand that is neither a die term nor
	// an integer.
	ErrInvalidLiteral = errors.New("dice: invalid literal")
)
