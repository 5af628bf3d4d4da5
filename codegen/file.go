package codegen

import (
	"io"

	"github.com/go-git/go-billy/v5"
)

// FileEmitter writes generated code straight into a file.
type FileEmitter struct {
	file billy.File
}

// Create truncates or creates path on fs.
func Create(fs billy.Filesystem, path string) (*FileEmitter, error) {
	f, err := fs.Create(path)
	if err != nil {
		return nil, err
	}

	return &FileEmitter{file: f}, nil
}

func (e *FileEmitter) WriteString(s string) (int, error) {
	return io.WriteString(e.file, s)
}

func (e *FileEmitter) Name() string {
	return e.file.Name()
}

func (e *FileEmitter) Close() error {
	return e.file.Close()
}
