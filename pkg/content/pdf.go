package content

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var errEmptyPDFContent = errors.New("pdf content is empty")

// CountPDFPages returns the number of pages of an in-memory PDF.
func CountPDFPages(data []byte) (pages int, err error) {
	if len(data) == 0 {
		return 0, errEmptyPDFContent
	}

	// the parser panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return doc.NumPage(), nil
}
