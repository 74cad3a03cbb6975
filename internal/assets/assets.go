// Package assets copies static files next to the generated pages.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed static
var defaultFS embed.FS

// StylesheetPath is where the site stylesheet lives relative to the output dir.
const StylesheetPath = "css/site.css"

// CopyDir copies the tree rooted at src into dst. A missing src is not an
// error; there is simply nothing to copy.
func CopyDir(src, dst string) (int, error) {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}
		if err := copyFile(path, destPath); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(destFile, srcFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}

// EnsureStylesheet writes the built-in stylesheet into outputDir unless a
// stylesheet is already there, and returns its path.
func EnsureStylesheet(outputDir string) (string, error) {
	dst := filepath.Join(outputDir, filepath.FromSlash(StylesheetPath))
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}

	data, err := defaultFS.ReadFile("static/" + StylesheetPath)
	if err != nil {
		return "", fmt.Errorf("failed to read built-in stylesheet: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create stylesheet directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write stylesheet: %w", err)
	}
	return dst, nil
}
