// Output helpers for rendering the decoded export document. The CLI
// contract is raw JSON with 2-space indentation, not an envelope: files
// hold exactly the indented document, stdout gets it with a trailing
// newline, and the one-line summary reports the experience count.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EncodeDocument renders a decoded JSON value as UTF-8 text with
// 2-space indentation and no trailing newline.
func EncodeDocument(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// WriteDocument writes the indented document to w followed by a newline.
func WriteDocument(w io.Writer, doc any) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// WriteDocumentFile writes the indented document to path, creating or
// truncating the file.
func WriteDocumentFile(path string, doc any) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ExperienceCount returns the length of the document's "experiences"
// array. A document that is not an object, or has no "experiences"
// array, counts as zero; the key is a best-effort lookup, not a schema
// check.
func ExperienceCount(doc any) int {
	obj, ok := doc.(map[string]any)
	if !ok {
		return 0
	}
	list, ok := obj["experiences"].([]any)
	if !ok {
		return 0
	}
	return len(list)
}

// Summary returns the one-line report printed after a file export.
func Summary(count int, path string) string {
	return fmt.Sprintf("Wrote %d experiences to %s", count, path)
}
