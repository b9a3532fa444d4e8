package cli

import (
	"errors"
	"fmt"

	lev "github.com/agnivade/levenshtein"

	"github.com/llehouerou/carfilter/internal/errmsg"
)

// errNotSaved is reported when the store kept a change it could not persist.
var errNotSaved = errors.New("change was not saved")

// opError renders through errmsg and keeps the cause for errors.Is.
type opError struct {
	op      errmsg.Op
	context string
	err     error
}

func (e *opError) Error() string {
	return errmsg.FormatWith(e.op, e.context, e.err)
}

func (e *opError) Unwrap() error {
	return e.err
}

func failed(op errmsg.Op, err error) error {
	return &opError{op: op, err: err}
}

func failedWith(op errmsg.Op, context string, err error) error {
	return &opError{op: op, context: context, err: err}
}

// maxSuggestDistance bounds how different a suggestion may be from the input.
const maxSuggestDistance = 3

// suggest returns the candidate closest to input, or "" when none is close.
func suggest(input string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := lev.ComputeDistance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// unknown builds the error for a value missing from candidates.
func unknown(sentinel error, input string, candidates []string) error {
	if s := suggest(input, candidates); s != "" {
		return fmt.Errorf("%w (did you mean %q?)", sentinel, s)
	}
	return fmt.Errorf("%w (one of %q)", sentinel, candidates)
}
