package cli

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
)

// writeOutput sends generated text to path, or to stdout when path is empty
func writeOutput(stdout io.Writer, path, content string) error {
	if path == "" {
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("write fragments to stdout: %w", err)
		}
		return nil
	}
	return writeFileAtomic(path, content)
}

// writeFileAtomic replaces path with content so readers never see a partial file
func writeFileAtomic(path, content string) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending output file: %w", err)
	}
	defer pendingFile.Cleanup() //nolint:errcheck // no-op once committed

	if _, err := pendingFile.WriteString(content); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace output file: %w", err)
	}
	return nil
}
