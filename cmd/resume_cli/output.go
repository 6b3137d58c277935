package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeOutput writes content to path, or to w when path is empty
func writeOutput(w io.Writer, path string, content []byte) error {
	if path == "" {
		_, err := w.Write(content)
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
