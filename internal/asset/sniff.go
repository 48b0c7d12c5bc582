package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// sniffHeaderSize covers every magic number the image matchers look at.
const sniffHeaderSize = 262

// sniffImages filters out files whose content does not look like an image.
// It is a no-op unless content sniffing is enabled. Files the matcher cannot
// identify (EXR and TGA have no registered matcher) pass through untouched;
// only a positive non-image match drops a file.
func (c *Classifier) sniffImages(dir string, files []string, warnings *[]string) []string {
	if !c.sniffContent {
		return files
	}

	kept := files[:0]
	for _, name := range files {
		ok, err := looksLikeImage(filepath.Join(dir, name))
		if err != nil {
			*warnings = append(*warnings, fmt.Sprintf("could not sniff %s: %v", name, err))
			kept = append(kept, name)
			continue
		}
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf("skipping %s: content does not match an image format", name))
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func looksLikeImage(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, sniffHeaderSize)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}

	kind, err := filetype.Match(head[:n])
	if err != nil {
		return false, err
	}
	if kind == filetype.Unknown {
		return true, nil
	}
	_, isImage := matchers.Image[kind]
	return isImage, nil
}
