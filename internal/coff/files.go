package coff

import (
	"fmt"
	"io"
	"os"
)

// writeToFile creates path, hands the open file to serialise, and flushes
// and closes it before returning. The object file is written only once the
// full in-memory build has already succeeded. If serialise fails part way,
// the error is returned and the created file is left in place holding
// whatever was written before the failure; it is not removed.
func writeToFile(path string, serialise func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("coff: failed to create object file %q: %w", path, err)
	}
	defer file.Close()

	if err := serialise(file); err != nil {
		return fmt.Errorf("coff: failed to write object file %q: %w", path, err)
	}

	return file.Sync()
}
