package liberrors

import (
	"errors"
)

// Result is the outcome of a serializer operation.
type Result int

// results.
const (
	ResultOK Result = iota
	ResultBadParam
	ResultOutOfMemory
	ResultSnprintfError
	ResultUnknown
)

var resultLabels = map[Result]string{
	ResultOK:            "Ok",
	ResultBadParam:      "BadParam",
	ResultOutOfMemory:   "OutOfMemory",
	ResultSnprintfError: "SnprintfError",
	ResultUnknown:       "Unknown",
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if l, ok := resultLabels[r]; ok {
		return l
	}
	return "unknown"
}

// ResultOf maps an error, possibly wrapped, to a Result.
func ResultOf(err error) Result {
	if err == nil {
		return ResultOK
	}

	var bp ErrBadParam
	if errors.As(err, &bp) {
		return ResultBadParam
	}

	var oom ErrOutOfMemory
	if errors.As(err, &oom) {
		return ResultOutOfMemory
	}

	var se ErrSnprintf
	if errors.As(err, &se) {
		return ResultSnprintfError
	}

	return ResultUnknown
}
