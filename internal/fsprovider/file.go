package fsprovider

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/untoldecay/mvcs/internal/types"
)

// osFile is the OS-backed File implementation. Every exit path closes the
// underlying *os.File, per the resource policy in spec §5.
type osFile struct {
	f        *os.File
	fullPath string
}

func openOSFile(path string) (*osFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, types.Wrap(types.KindIO, err, "open %s", path)
	}
	return &osFile{f: f, fullPath: path}, nil
}

func (f *osFile) Read(p []byte) (int, error)  { return f.f.Read(p) }
func (f *osFile) Write(p []byte) (int, error) { return f.f.Write(p) }
func (f *osFile) Close() error                { return f.f.Close() }

func (f *osFile) Name() string      { return filepath.Base(f.fullPath) }
func (f *osFile) Extension() string { return filepath.Ext(f.fullPath) }
func (f *osFile) FullPath() string  { return f.fullPath }

func (f *osFile) ReadData() ([]byte, error) {
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return nil, types.Wrap(types.KindIO, err, "seek %s", f.fullPath)
	}
	data, err := io.ReadAll(f.f)
	if err != nil {
		return nil, types.Wrap(types.KindIO, err, "read %s", f.fullPath)
	}
	return data, nil
}

func (f *osFile) WriteData(data []byte) error {
	if err := f.f.Truncate(0); err != nil {
		return types.Wrap(types.KindIO, err, "truncate %s", f.fullPath)
	}
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return types.Wrap(types.KindIO, err, "seek %s", f.fullPath)
	}
	if _, err := f.f.Write(data); err != nil {
		return types.Wrap(types.KindIO, err, "write %s", f.fullPath)
	}
	return nil
}

// GetDataHash streams the file's bytes through algo in ChunkSize pieces.
func (f *osFile) GetDataHash(algo string) (string, error) {
	if algo == "" {
		algo = DefaultHashAlgo
	}
	var h hash.Hash
	switch algo {
	case "sha256":
		h = sha256.New()
	default:
		return "", types.NewError(types.KindIO, "unsupported hash algorithm %q", algo)
	}

	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return "", types.Wrap(types.KindIO, err, "seek %s", f.fullPath)
	}
	buf := make([]byte, ChunkSize)
	for {
		n, err := f.f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", types.Wrap(types.KindIO, err, "hash %s", f.fullPath)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes hashes bytes already held in memory with the same algorithms
// GetDataHash supports.
func HashBytes(algo string, data []byte) (string, error) {
	if algo == "" {
		algo = DefaultHashAlgo
	}
	switch algo {
	case "sha256":
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", algo)
	}
}
