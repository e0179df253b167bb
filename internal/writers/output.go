// internal/writers/output.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Stdout is the destination name that selects the caller's stdout.
const Stdout = "-"

// OutputWriteError reports a document that could not be written in full.
type OutputWriteError struct {
	Dest string
	Err  error
}

func (e *OutputWriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Dest, e.Err) }
func (e *OutputWriteError) Unwrap() error { return e.Err }

// WriteDocument encodes v in format to dest. dest "-" goes to stdout, where
// a broken pipe is not an error. The file is closed on every path and a
// failed close is reported.
func WriteDocument(dest string, stdout io.Writer, format string, v any) (err error) {
	if dest == Stdout {
		bw := bufio.NewWriter(stdout)
		err = Encode(format, bw, v)
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && !IsBrokenPipe(err) {
			return &OutputWriteError{Dest: "stdout", Err: err}
		}
		return nil
	}

	fh, err := os.Create(dest)
	if err != nil {
		return &OutputWriteError{Dest: dest, Err: err}
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = &OutputWriteError{Dest: dest, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(fh)
	if err := Encode(format, bw, v); err != nil {
		return &OutputWriteError{Dest: dest, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &OutputWriteError{Dest: dest, Err: err}
	}
	return nil
}
