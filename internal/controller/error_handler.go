package controller

import (
	"github.com/sirupsen/logrus"

	"todo/internal/errors"
)

// ErrorHandler turns store errors into dialogs and logs the ones worth keeping
type ErrorHandler struct {
	log logrus.FieldLogger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(log logrus.FieldLogger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

// Handle logs err for operation and returns the error dialog to show
func (eh *ErrorHandler) Handle(operation string, err error) *Dialog {
	fields := logrus.Fields{
		"operation": operation,
		"code":      eh.GetErrorCode(err),
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if id, ok := appErr.GetContext("task_id"); ok {
			fields["task_id"] = id
		}
	}

	entry := eh.log.WithFields(fields)
	if errors.ShouldLogError(err) {
		entry.WithError(err).Error("operation failed")
	} else {
		entry.WithError(err).Debug("operation rejected")
	}

	return ErrorDialog(eh.Message(err))
}

// Message returns the user-facing text for err
func (eh *ErrorHandler) Message(err error) string {
	if errors.IsAppError(err) {
		return errors.GetUserMessage(err)
	}

	// Fallback for unknown errors
	return err.Error()
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
