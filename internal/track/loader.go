package track

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Load builds a strip from a geometry file. Only failing to open the file is
// an error; problems inside it are handled the way Build handles them.
func Load(path string, reverse bool, diag io.Writer) (*Strip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open strip %s: %w", path, err)
	}
	defer file.Close()

	return Build(bufio.NewReader(file), reverse, diag), nil
}
