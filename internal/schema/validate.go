// Package schema validates a generated namelist definition against an XSD
// schema via libxml2.
//
// Validation is a secondary sanity check: a schema mismatch is reported to
// the caller as a plain false, not an error. Only failures to set up the
// validator (unreadable or malformed schema, broken XML) surface as errors.
package schema

import (
	"errors"
	"fmt"

	xsdvalidate "github.com/terminalstatic/go-xsd-validate"
)

// Validate checks rendered namelist XML against the schema at xsdPath.
// Returns whether the document is valid; validation mismatches are not
// errors.
func Validate(xmlData []byte, xsdPath string) (bool, error) {
	if err := xsdvalidate.Init(); err != nil {
		return false, fmt.Errorf("failed to initialize schema validator: %w", err)
	}
	defer xsdvalidate.Cleanup()

	handler, err := xsdvalidate.NewXsdHandlerUrl(xsdPath, xsdvalidate.ParsErrDefault)
	if err != nil {
		return false, fmt.Errorf("failed to load schema %s: %w", xsdPath, err)
	}
	defer handler.Free()

	err = handler.ValidateMem(xmlData, xsdvalidate.ValidErrDefault)
	if err == nil {
		return true, nil
	}

	var valErr xsdvalidate.ValidationError
	if errors.As(err, &valErr) {
		return false, nil
	}

	return false, fmt.Errorf("failed to validate against schema %s: %w", xsdPath, err)
}
