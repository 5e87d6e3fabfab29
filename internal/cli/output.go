package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	fxp "github.com/shabbyrobe/go-fxp"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the arithmetic failed: overflow, division by zero
	ExitCommandError = 2 // bad arguments, flags or config
)

// Error codes reported in JSON output.
const (
	ErrCodeGeneric        = "E001"
	ErrCodeSyntax         = "E002"
	ErrCodeOverflow       = "E003"
	ErrCodeDivisionByZero = "E004"
	ErrCodeArgument       = "E005"
	ErrCodeConfig         = "E006"
)

// ExitError carries the process exit code for an error that has already
// been reported to the user.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not an
// ExitError map to ExitCommandError, as cobra returns those for bad usage.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// errorCode classifies an error from the fxp package.
func errorCode(err error) (code string, exit int) {
	switch {
	case errors.Is(err, fxp.ErrSyntax):
		return ErrCodeSyntax, ExitCommandError
	case errors.Is(err, fxp.ErrOverflow):
		return ErrCodeOverflow, ExitFailure
	case errors.Is(err, fxp.ErrDivisionByZero):
		return ErrCodeDivisionByZero, ExitFailure
	}
	return ErrCodeGeneric, ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope for every command.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		})
	}
	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

// Fail reports err and returns the ExitError a command should return.
func (f *OutputFormatter) Fail(code string, exit int, err error) error {
	if werr := f.Error(code, err.Error()); werr != nil {
		return werr
	}
	return WrapExitError(exit, code, err)
}

// FailOp reports an error returned by the fxp package.
func (f *OutputFormatter) FailOp(err error) error {
	code, exit := errorCode(err)
	return f.Fail(code, exit, err)
}
