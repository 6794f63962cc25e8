package file

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// Reader opens files from a filesystem and closes them all at once.
type Reader struct {
	fs          billy.Filesystem
	fileHandles []billy.File
}

func (this *Reader) Init(fs billy.Filesystem, fileCount int) {
	this.fs = fs
	this.fileHandles = make([]billy.File, 0, fileCount)
}

func (this *Reader) Open(filename string) (billy.File, error) {
	file, err := this.fs.Open(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}
	this.fileHandles = append(this.fileHandles, file)
	return file, nil
}

// Close closes every file opened so far.
func (this *Reader) Close() error {
	errs := make([]error, 0, len(this.fileHandles))
	for _, handle := range this.fileHandles {
		if err := handle.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close '%s': %w", handle.Name(), err))
		}
	}
	this.fileHandles = this.fileHandles[:0]
	return errors.Join(errs...)
}
