package contract

import "os"

// SelectOutputFile returns the appropriate file handle for output,
// based on the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}
