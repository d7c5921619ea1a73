package exceptions

import (
	"academia-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	RetryAfter    int        `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	last := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, last.File, last.Line, last.FunctionName)
}

// BuildNewCustomError wraps err with an HTTP status and the messages shown to clients and
// developers. Wrapping an existing CustomError keeps its status and client message and only
// appends the new caller location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	var existing *CustomError
	if errors.As(err, &existing) {
		return &CustomError{
			StatusCode:    existing.StatusCode,
			ClientMessage: existing.ClientMessage,
			DevMessage:    existing.DevMessage,
			Locations:     append(append([]Location{}, existing.Locations...), location),
			RetryAfter:    existing.RetryAfter,
		}
	}

	message := devMessage
	if err != nil {
		message = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    message,
		Locations:     []Location{location},
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
