package namelist

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
)

const filePerm = 0o644

// Render serializes the document: 4-space indentation, expanded end tags for
// empty elements, and a guaranteed single trailing newline. The serializer
// itself does not promise a final newline, so one is appended when missing.
func Render(doc *etree.Document) ([]byte, error) {
	doc.Indent(len(IndentPerLevel))
	doc.WriteSettings.CanonicalEndTags = true

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize namelist definition: %w", err)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	return data, nil
}

// WriteFile renders the document and writes it to the given path. Rendering
// happens entirely before the write, so a rendering failure leaves no
// partial file behind.
func WriteFile(doc *etree.Document, path string) error {
	data, err := Render(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write namelist file %s: %w", path, err)
	}

	return nil
}
