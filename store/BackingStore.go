// Package store owns the single descriptor behind every partition
// window: one image file or block device, its total size, and the
// positioned I/O the filesystem layer passes through. Positioned reads
// and writes carry their own offset, so concurrent requests never race
// on a file cursor.
package store

import (
	"errors"
	"fmt"
	"os"

	iipart "github.com/ksherlock/ii-part"
)

var (
	ErrBadGeometry = errors.New("size is not a multiple of 512")
	ErrReadOnly    = errors.New("store not open for writing")
)

type Store struct {
	file      *os.File
	size      int64
	readWrite bool
}

// Open opens an image file or block device and queries its total size
// once. A size that is not a multiple of the block size refuses to
// open: no partition layout can address it.
func Open(path string, readWrite bool) (*Store, error) {
	mode := os.O_RDONLY
	if readWrite {
		mode = os.O_RDWR
	}
	f, err := os.OpenFile(path, mode, 0)
	if err != nil {
		return nil, err
	}

	size, err := totalSize(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("sizing %s: %w", path, err)
	}
	if size%iipart.BlockSize != 0 {
		f.Close()
		return nil, fmt.Errorf("%s: %d bytes: %w", path, size, ErrBadGeometry)
	}

	return &Store{file: f, size: size, readWrite: readWrite}, nil
}

func totalSize(f *os.File) (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	mode := fi.Mode()
	if mode.IsRegular() {
		return fi.Size(), nil
	}
	if mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0 {
		return deviceSize(f)
	}
	return 0, fmt.Errorf("%s is neither a regular file nor a block device", f.Name())
}

func (s *Store) Size() int64 { return s.size }

func (s *Store) ReadWrite() bool { return s.readWrite }

// ReadHeader returns the detection window from the start of the image.
func (s *Store) ReadHeader() ([]byte, error) {
	header := make([]byte, iipart.HeaderSize)
	if _, err := s.file.ReadAt(header, 0); err != nil {
		return nil, fmt.Errorf("reading partition header: %w", err)
	}
	return header, nil
}

func (s *Store) ReadAt(p []byte, off int64) (int, error) {
	return s.file.ReadAt(p, off)
}

func (s *Store) WriteAt(p []byte, off int64) (int, error) {
	if !s.readWrite {
		return 0, ErrReadOnly
	}
	return s.file.WriteAt(p, off)
}

func (s *Store) Sync() error { return s.file.Sync() }

func (s *Store) Close() error { return s.file.Close() }
