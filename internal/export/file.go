package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Ensure FileStrategy implements Strategy.
var _ Strategy = (*FileStrategy)(nil)

// FileStrategy saves the document under a directory.
type FileStrategy struct {
	dir string
}

// NewFileStrategy returns a strategy writing into dir. The directory must
// already exist.
func NewFileStrategy(dir string) *FileStrategy {
	return &FileStrategy{dir: dir}
}

func (f *FileStrategy) Name() string { return "file" }

func (f *FileStrategy) Export(doc Document) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("stat export dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("export dir %s is not a directory", f.dir)
	}

	path := filepath.Join(f.dir, doc.Name)
	if err := os.WriteFile(path, []byte(doc.Text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", doc.Name, err)
	}
	return nil
}
