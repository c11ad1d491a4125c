package services

import "errors"

var (
	// ErrInvalidInput wraps client-side validation failures; the message
	// names the offending field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOwnSkill rejects requesting a skill the user offered themselves.
	ErrOwnSkill = errors.New("cannot request your own skill")

	// ErrNotProvider rejects an accept by anyone but the request's provider.
	// In particular a requester can never accept their own request.
	ErrNotProvider = errors.New("only the provider can accept a request")

	// ErrNotRequester rejects a complete by anyone but the requester.
	ErrNotRequester = errors.New("only the requester can complete a request")

	// ErrBadTransition rejects accept/complete on a request whose status
	// does not allow it.
	ErrBadTransition = errors.New("request is not in a state that allows this")

	// ErrBadRange rejects an unknown transactions range filter.
	ErrBadRange = errors.New(`range must be one of "day", "month", "year"`)

	// ErrNoSession is returned by operations that need a logged-in user.
	ErrNoSession = errors.New("not logged in")
)
