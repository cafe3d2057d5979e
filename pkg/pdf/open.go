package pdf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

// OpenText opens a PDF file for page text using the given backend.
// BackendAuto tries ledongthuc first as it has the most accurate text
// extraction, then falls back to dslipak.
func OpenText(filepath string, backend TextBackend) (Document, error) {
	switch backend {
	case BackendLedongthuc:
		return OpenWithLedongthuc(filepath)
	case BackendDslipak:
		return OpenWithDslipak(filepath)
	case BackendFitz:
		return OpenWithFitz(filepath)
	case BackendAuto, "":
	default:
		return nil, fmt.Errorf("unknown text backend %q", backend)
	}

	doc, errL := OpenWithLedongthuc(filepath)
	if errL == nil {
		return doc, nil
	}

	doc, errD := OpenWithDslipak(filepath)
	if errD == nil {
		return doc, nil
	}

	return nil, errors.Join(errL, errD)
}

// ValidatePath checks that path names a readable regular file
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return domain.InputError("file path cannot be empty", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.InputError(fmt.Sprintf("file does not exist: %s", path), err)
		}
		return domain.InputError(fmt.Sprintf("cannot access file: %s", path), err)
	}

	if info.IsDir() {
		return domain.InputError(fmt.Sprintf("path is a directory, not a file: %s", path), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.InputError(fmt.Sprintf("cannot open file: %s", path), err)
	}
	file.Close()

	return nil
}
