package either

import (
	"fmt"

	"github.com/KasperOmsK/fpe"
)

// PanicError is the Left value Try returns when the called function panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("either: recovered panic: %v", e.Value)
}

// Try calls fn with args and returns Right with the result, or Left with the
// error fn returned or the panic it raised:
//
//	either.Try(div, 42, 2) // Right(21)
//	either.Try(div, 42, 0) // Left(division by zero)
//
// A value that is not callable is returned as Right(fn) when no arguments
// are given. Passing arguments to it fails with fpe.ErrNotCallable.
func Try(fn any, args ...any) (Either, error) {
	return TryKw(fn, fpe.Keywords{}, args...)
}

// TryKw is Try with named arguments:
//
//	either.TryKw(scale, fpe.NewKeywords("factor", 3), 14) // Right(42)
func TryKw(fn any, kw fpe.Keywords, args ...any) (result Either, err error) {
	if !fpe.IsCallable(fn) {
		if len(args) > 0 || kw.Len() > 0 {
			return Either{}, fmt.Errorf("%w: %T given %d arguments", fpe.ErrNotCallable, fn, len(args)+kw.Len())
		}
		return Right(fn), nil
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = Left(&PanicError{Value: r}), nil
		}
	}()
	v, callErr := fpe.CallKw(fn, kw, args...)
	if callErr != nil {
		return Left(callErr), nil
	}
	return Right(v), nil
}
