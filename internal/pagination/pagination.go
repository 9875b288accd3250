// Package pagination parses the limit/offset query contract shared by every
// listing endpoint. Callers must supply a complete pagination window or none:
// a request carrying only one of the two keys is rejected rather than treated
// as a partial application.
package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Pagination is the validated window bounding a listing query. A nil Limit
// means "no limit" (unpaged). It is built fresh per request and never stored.
type Pagination struct {
	Limit  *int
	Offset int
}

// Default returns the unpaged window: no limit, offset zero.
func Default() Pagination { return Pagination{} }

// ErrMissingParameters is returned when the parameter map is non-empty but
// one of the limit/offset keys is absent.
var ErrMissingParameters = errors.New("missing parameters")

// ParseError reports a limit or offset value that is not a base-10 integer.
// Field names the offending key and Value carries its raw text.
type ParseError struct {
	Field string
	Value string
	err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s=%q: %v", e.Field, e.Value, e.err)
}

// Unwrap exposes the underlying strconv error.
func (e *ParseError) Unwrap() error { return e.err }

// Parse converts untyped query parameters into a validated window.
//
// Rules:
//   - empty map: the default window (no limit, offset 0).
//   - both "limit" and "offset" present: each must parse as a base-10
//     integer; the first failure yields a *ParseError.
//   - any other non-empty map: ErrMissingParameters.
//
// No upper bound is enforced on the magnitudes here; capping, if any, is the
// store's concern.
func Parse(params map[string]string) (Pagination, error) {
	if len(params) == 0 {
		return Default(), nil
	}

	rawLimit, haveLimit := params["limit"]
	rawOffset, haveOffset := params["offset"]
	if !haveLimit || !haveOffset {
		return Pagination{}, ErrMissingParameters
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		return Pagination{}, &ParseError{Field: "limit", Value: rawLimit, err: err}
	}
	offset, err := strconv.Atoi(rawOffset)
	if err != nil {
		return Pagination{}, &ParseError{Field: "offset", Value: rawOffset, err: err}
	}

	return Pagination{Limit: &limit, Offset: offset}, nil
}

// FromQuery flattens url.Values (first value per key wins) and applies Parse.
// Handlers use it so the tie-break rule sees exactly the keys the client sent.
func FromQuery(q url.Values) (Pagination, error) {
	params := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			params[k] = vs[0]
		} else {
			params[k] = ""
		}
	}
	return Parse(params)
}
