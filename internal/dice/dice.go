// Package dice evaluates additive dice-roll expressions such as "2d6+3-1d4".
//
// An expression is split into fields, built into a binary tree of add/sub
// nodes over die and literal leaves, and evaluated eagerly as the tree is
// constructed. Each die is rolled exactly once; the finished tree renders a
// per-die trace alongside its total.
package dice

// Result is the outcome of evaluating one expression.
//
// Postcondition: Rendered is a stable trace of the rolls that produced Total;
// re-rendering the same evaluation never changes either field.
type Result struct {
	Total    int    // arithmetic total of all rolls and literals
	Rendered string // per-die trace, e.g. "4(d6) + 2(d6) + 3"
}

// Evaluate parses raw, rolls every die in it using src, and returns the
// total together with the rendered trace.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a Result, or one of the package error kinds
// (ErrOperatorPlacement, ErrMissingOperator, ErrMalformedDie,
// ErrInvalidLiteral) when raw is malformed.
func Evaluate(raw string, src Source) (Result, error) {
	root, err := Build(raw, src)
	if err != nil {
		return Result{}, err
	}
	return Result{Total: root.Value(), Rendered: root.String()}, nil
}
