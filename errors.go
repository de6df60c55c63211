package signaling

import "fmt"

const (
	ErrInvalidState        = "InvalidStateError"
	ErrInvalidModification = "InvalidModificationError"
	ErrSyntax              = "SyntaxError"
)

func makeError(code string, message string) (err error) {
	return fmt.Errorf("%s: %s", code, message)
}

func wrapError(code string, message string, cause error) error {
	return fmt.Errorf("%s: %s: %w", code, message, cause)
}
