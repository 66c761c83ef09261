package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes the generated route modules (routes.js) into outputDir,
// creating it when missing, and returns the paths it actually wrote.
//
// A module whose content is already on disk is left alone so the host dev
// server does not rebuild on every watch cycle. Modules are written to a
// temporary file first and renamed into place, so the bundler never reads a
// half-written routes.js.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string

	for _, file := range files {
		target := filepath.Join(outputDir, file.Filename)

		current, err := os.ReadFile(target)
		switch {
		case err == nil && bytes.Equal(current, file.Content):
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return written, fmt.Errorf("reading route module %s: %w", file.Filename, err)
		}

		if err := replaceFile(target, file.Content); err != nil {
			return written, fmt.Errorf("writing route module %s: %w", file.Filename, err)
		}

		written = append(written, target)
	}

	return written, nil
}

func replaceFile(target string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return err
	}

	// Gone already after a successful rename.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), target)
}
