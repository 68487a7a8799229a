package book

import "fmt"

// InvalidOrderReason enumerates why Book.Submit rejected an intent
// before matching ever started.
type InvalidOrderReason int

const (
	ReasonNonPositiveShares InvalidOrderReason = iota
	ReasonNonPositivePrice
	ReasonUnknownSide
)

func (r InvalidOrderReason) String() string {
	switch r {
	case ReasonNonPositiveShares:
		return "shares must be positive"
	case ReasonNonPositivePrice:
		return "limit price must be positive"
	case ReasonUnknownSide:
		return "unknown side"
	default:
		return "invalid order"
	}
}

// SubmitErrorKind distinguishes the two ways Book.Submit can fail.
type SubmitErrorKind int

const (
	SelfTradeRejected SubmitErrorKind = iota
	InvalidOrder
)

// SubmitError is returned by Book.Submit. An InvalidOrder leaves the
// book untouched; a SelfTradeRejected retains any executions already
// produced earlier in the same call against other clients and
// discards the residual.
type SubmitError struct {
	Kind   SubmitErrorKind
	Reason InvalidOrderReason
}

func (e *SubmitError) Error() string {
	switch e.Kind {
	case SelfTradeRejected:
		return "self-trade rejected"
	case InvalidOrder:
		return fmt.Sprintf("invalid order: %s", e.Reason)
	default:
		return "submit error"
	}
}

// CancelErrorKind distinguishes ways Book.Cancel can fail. There is
// only one today; the type exists so callers can switch on Kind
// without string-matching if the taxonomy grows.
type CancelErrorKind int

const (
	UnknownOrder CancelErrorKind = iota
)

// CancelError is returned by Book.Cancel.
type CancelError struct {
	Kind CancelErrorKind
}

func (e *CancelError) Error() string {
	return "unknown order"
}

// InvariantViolation is panicked when the book discovers its own
// bookkeeping is inconsistent. These are bugs, not runtime conditions,
// and are never recovered anywhere in the matching path.
type InvariantViolation struct {
	What string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("book invariant violated: %s", e.What)
}
