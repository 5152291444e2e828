package fsprovider

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/untoldecay/mvcs/internal/types"
)

// OS is the default Provider, backed directly by the os package.
type OS struct{}

// New returns an OS-backed Provider.
func New() *OS { return &OS{} }

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OS) ReadFile(path string) (File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, types.Wrap(types.KindIO, err, "read file %s", path)
	}
	return openOSFile(path)
}

func (OS) CreateFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return types.Wrap(types.KindIO, err, "create parent dir for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return types.Wrap(types.KindIO, err, "create file %s", path)
	}
	return nil
}

func (OS) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return types.Wrap(types.KindIO, err, "copy: open src %s", src)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
		return types.Wrap(types.KindIO, err, "copy: create parent dir for %s", dst)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return types.Wrap(types.KindIO, err, "copy: open dst %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return types.Wrap(types.KindIO, err, "copy: write %s", dst)
	}
	return nil
}

func (o OS) MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
		return types.Wrap(types.KindIO, err, "move: create parent dir for %s", dst)
	}
	if err := os.Rename(src, dst); err != nil {
		// Cross-device rename fallback: copy then remove.
		if copyErr := o.CopyFile(src, dst); copyErr != nil {
			return types.Wrap(types.KindIO, err, "move %s to %s", src, dst)
		}
		if err := os.Remove(src); err != nil {
			return types.Wrap(types.KindIO, err, "move: remove src %s", src)
		}
	}
	return nil
}

func (OS) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0750); err != nil {
		return types.Wrap(types.KindIO, err, "create dir %s", path)
	}
	return nil
}

func (OS) DeleteFileOrDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return types.Wrap(types.KindIO, err, "delete %s", path)
	}
	return nil
}

func (OS) ReadDir(root string, ignore []string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, types.Wrap(types.KindIO, err, "read dir %s", root)
	}
	var out []string
	for _, e := range entries {
		rel := e.Name()
		if matchesIgnore(rel, ignore) {
			continue
		}
		out = append(out, filepath.Join(root, rel))
	}
	sort.Strings(out)
	return out, nil
}

func (OS) ReadDirDeep(root string, ignore []string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, types.Wrap(types.KindIO, err, "read dir %s", root)
	}
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if matchesIgnore(rel, ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, types.Wrap(types.KindIO, err, "walk dir %s", root)
	}
	sort.Strings(out)
	return out, nil
}
