package names

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/yaroher/go-names/logger"
)

var (
	// ErrInvalidArgument is returned when a caller-supplied value violates a
	// precondition. Nothing has been changed when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState means an instance invariant was found broken before an
	// operation started.
	ErrInvalidState = errors.New("invalid state")
	// ErrPostcondition means an operation produced a result that does not match
	// its guarantee. It always indicates a defect in this package.
	ErrPostcondition = errors.New("postcondition failed")
)

func invalidArgument(op string, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, op+": "+format, args...)
}

func invalidState(op string, format string, args ...any) error {
	err := errors.Wrapf(ErrInvalidState, op+": "+format, args...)
	logger.Error("invalid state", zap.String("op", op), zap.Error(err))
	return err
}

func postconditionFailed(op string, before, after []string) error {
	logger.Error("postcondition failed",
		zap.String("op", op),
		zap.Strings("before", before),
		zap.Strings("after", after),
	)
	return errors.Wrap(ErrPostcondition, op)
}
