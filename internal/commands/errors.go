package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidationFailed = "NEWSROOM_COMMAND_VALIDATION_FAILED"
	codeCanceled         = "NEWSROOM_COMMAND_CANCELED"
	codeTimedOut         = "NEWSROOM_COMMAND_TIMED_OUT"
	codeContextError     = "NEWSROOM_COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "NEWSROOM_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	return tag(err, goerrors.CategoryValidation, "command validation failed", codeValidationFailed)
}

func wrapExecuteError(err error) error {
	return tag(err, goerrors.CategoryCommand, "command execution failed", codeExecutionFailed)
}

func wrapContextError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return tag(err, goerrors.CategoryCommand, "command canceled", codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return tag(err, goerrors.CategoryCommand, "command deadline exceeded", codeTimedOut)
	default:
		return tag(err, goerrors.CategoryCommand, "command context error", codeContextError)
	}
}

// tag wraps err with a category and text code unless an earlier layer already
// categorized it.
func tag(err error, category goerrors.Category, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}
