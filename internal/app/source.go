package app

import (
	"os"
)

// Source loads the whole content of a named file.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// OSSource reads any path the process can open.
type OSSource struct{}

func (OSSource) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// RootSource only reads files below one directory; names that escape it are rejected.
type RootSource struct {
	root *os.Root
}

func OpenRootSource(dir string) (*RootSource, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	return &RootSource{root: root}, nil
}

func (s *RootSource) ReadFile(name string) ([]byte, error) {
	return s.root.ReadFile(name)
}

func (s *RootSource) Close() error {
	return s.root.Close()
}
