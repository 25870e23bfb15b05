package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is a failure code reported in a response envelope. Numeric codes are
// carried in their decimal form.
type Code string

const (
	CodeMalformedResponse Code = "malformed-response"
	CodeBadUserKey        Code = "bad-user-key"
	CodeBadForumKey       Code = "bad-forum-key"
	CodeNoSuchForum       Code = "no-such-forum"
	CodeNoSuchThread      Code = "no-such-thread"
	CodeNoSuchPost        Code = "no-such-post"
	CodeBadAction         Code = "bad-action"
	CodeMissingArgument   Code = "missing-argument"
	CodeUnknownMethod     Code = "unknown-method"
	CodeInvalidParameter  Code = "invalid-parameter"
)

// Failure is an error that maps onto a response envelope with succeeded=false.
type Failure struct {
	Code    Code
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// CodeOf returns the failure code carried by err, or "" when err is not a
// Failure.
func CodeOf(err error) Code {
	if f, ok := errors.Cause(err).(*Failure); ok {
		return f.Code
	}
	return ""
}

var (
	BadUserKey      = func() error { return &Failure{Code: CodeBadUserKey, Message: "invalid user API key"} }
	BadForumKey     = func() error { return &Failure{Code: CodeBadForumKey, Message: "invalid forum API key"} }
	ForumNotFound   = func(id string) error { return &Failure{CodeNoSuchForum, fmt.Sprintf("can't find forum with id %s", id)} }
	ThreadNotFound  = func(id string) error { return &Failure{CodeNoSuchThread, fmt.Sprintf("can't find thread %s", id)} }
	PostNotFound    = func(id string) error { return &Failure{CodeNoSuchPost, fmt.Sprintf("can't find post with id %s", id)} }
	BadAction       = func(action string) error { return &Failure{CodeBadAction, fmt.Sprintf("unknown moderation action %q", action)} }
	MissingArgument = func(name string) error { return &Failure{CodeMissingArgument, fmt.Sprintf("missing argument %s", name)} }
	UnknownMethod   = func(method string) error { return &Failure{CodeUnknownMethod, fmt.Sprintf("unknown method %s", method)} }
)
