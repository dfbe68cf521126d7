package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InputExt is the extension of region result files.
const InputExt = ".regionresult"

// Discover lists the region result files under opts.InputDir, sorted by path.
func Discover(opts Options) ([]string, error) {
	var paths []string
	if opts.Recursive {
		err := filepath.WalkDir(opts.InputDir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() && strings.HasSuffix(d.Name(), InputExt) {
				paths = append(paths, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(opts.InputDir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), InputExt) {
				continue
			}
			paths = append(paths, filepath.Join(opts.InputDir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// OutputPath mirrors input, a path below inputDir, into outputDir and
// replaces its extension with ext.
func OutputPath(inputDir, outputDir, ext, input string) (string, error) {
	rel, err := filepath.Rel(inputDir, input)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside %s", input, inputDir)
	}
	out := filepath.Join(outputDir, rel)
	out = strings.TrimSuffix(out, filepath.Ext(out))
	return out + "." + strings.ToLower(strings.TrimPrefix(ext, ".")), nil
}

// MkdirError reports a failure to build the output directory tree.
// Root is set when outputDir itself could not be created.
type MkdirError struct {
	Path string
	Root bool
	Err  error
}

func (e *MkdirError) Error() string {
	if e.Root {
		return fmt.Sprintf("output folder %s does not exist and could not be created: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("could not mimic input folder structure at %s: %v", e.Path, e.Err)
}

func (e *MkdirError) Unwrap() error { return e.Err }

// MirrorDirs creates opts.OutputDir and, in recursive mode, every directory
// below opts.InputDir at the mirrored location.
func MirrorDirs(opts Options) error {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return &MkdirError{Path: opts.OutputDir, Root: true, Err: err}
	}
	if !opts.Recursive {
		return nil
	}
	return filepath.WalkDir(opts.InputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return &MkdirError{Path: p, Err: err}
		}
		if !d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(opts.InputDir, p)
		if err != nil {
			return &MkdirError{Path: p, Err: err}
		}
		dst := filepath.Join(opts.OutputDir, rel)
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return &MkdirError{Path: dst, Err: err}
		}
		return nil
	})
}

// CountLines counts lines the way a line iterator does: a final line without
// a trailing newline still counts.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	buf := make([]byte, 32*1024)
	n, last := 0, byte('\n')
	for {
		c, err := f.Read(buf)
		if c > 0 {
			n += bytes.Count(buf[:c], []byte{'\n'})
			last = buf[c-1]
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if last != '\n' {
		n++
	}
	return n, nil
}

// WriteFile writes data to a temporary file next to path and renames it into
// place, so path is either fully written or left untouched.
func WriteFile(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
