package lrc

import (
	"os"
	"path/filepath"
	"strings"
)

// LRC serializes the file back to LRC text, one composed line per event
// in stored order, each line newline-terminated.
func (f *File) LRC() string {
	var sb strings.Builder
	for _, event := range f.events {
		sb.WriteString(event.Compose())
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteFile writes the serialized LRC text to path, creating parent
// directories as needed.
func (f *File) WriteFile(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(f.LRC()), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
