package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/flatjson/internal/errors"
)

// ReadInput reads all text from reader. Empty input is returned as is: the
// tolerant modes turn it into an empty map and strict parsing rejects it.
func ReadInput(reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.NewInputError("failed to read input", err)
	}
	return string(data), nil
}

// ReadFile reads all text from the file at filePath
func ReadFile(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	return ReadInput(file)
}
