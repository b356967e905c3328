//go:build !unix

package mmfile

import "os"

// Map reads the entire file when a private writable mapping is not
// available. The returned slice is an ordinary heap copy.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noop, err
	}
	return data, noop, nil
}
