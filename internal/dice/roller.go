package dice

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Roller evaluates expressions with a fixed Source and logs every roll at
// debug level with its expression, rendered trace, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller that rolls with src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Evaluate evaluates raw and logs the outcome under a fresh roll ID.
//
// Postcondition: returns the same Result Evaluate(raw, src) would; rejected
// expressions are logged and returned unchanged.
func (r *Roller) Evaluate(raw string) (Result, error) {
	res, err := Evaluate(raw, r.src)
	if err != nil {
		r.logger.Debug("roll rejected",
			zap.String("expression", raw),
			zap.Error(err),
		)
		return Result{}, err
	}

	r.logger.Debug("dice roll",
		zap.String("roll_id", uuid.New().String()),
		zap.String("expression", raw),
		zap.String("rendered", res.Rendered),
		zap.Int("total", res.Total),
	)
	return res, nil
}
