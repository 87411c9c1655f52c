package padding

import "fmt"

// DecodeError reports that the input could not be read or decoded.
// No output is written when it is returned.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause walk through the error.
func (e *DecodeError) Cause() error { return e.Err }

// EncodeError reports that the padded image could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Cause() error { return e.Err }

// UnexpectedError wraps any other failure, such as an oversized canvas or a
// panic inside the codec.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

func (e *UnexpectedError) Cause() error { return e.Err }
