package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrettyPrint writes input as indented JSON.
func PrettyPrint(w io.Writer, input any) error {
	bytes, err := json.MarshalIndent(input, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
