package quote

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Exporter delivers a finished quote artifact to the environment.
type Exporter interface {
	Export(data []byte, filename string) error
}

// Clipboard writes text to the session clipboard. Implementations report
// failure through the error; they must not panic.
type Clipboard interface {
	Write(text string) error
}

// DirExporter writes artifacts into a directory on the local filesystem.
type DirExporter struct {
	dir string
}

// NewDirExporter creates an exporter rooted at dir.
func NewDirExporter(dir string) *DirExporter {
	return &DirExporter{dir: dir}
}

func (e *DirExporter) Export(data []byte, filename string) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SessionClipboard is an in-process clipboard holding the last copied text,
// readable back within the same session.
type SessionClipboard struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewSessionClipboard creates an empty session clipboard.
func NewSessionClipboard() *SessionClipboard {
	return &SessionClipboard{}
}

func (c *SessionClipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.set = true
	return nil
}

// Read returns the last copied text and whether anything has been copied.
func (c *SessionClipboard) Read() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.set
}
