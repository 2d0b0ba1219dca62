package registry

import (
	"fmt"

	"github.com/beevik/etree"
)

// LoadFile loads and parses a registry XML file from the given path.
func LoadFile(path string) (*Registry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	return fromDocument(doc)
}

// Parse parses registry XML data into a Registry.
func Parse(data []byte) (*Registry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse registry XML: %w", err)
	}

	return fromDocument(doc)
}

func fromDocument(doc *etree.Document) (*Registry, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("registry document has no root element")
	}

	var reg Registry

	for _, record := range root.SelectElements("nml_record") {
		group := Group{
			Name: record.SelectAttrValue("name", ""),
		}

		for _, option := range record.SelectElements("nml_option") {
			group.Options = append(group.Options, Option{
				Name:        option.SelectAttrValue("name", ""),
				Type:        option.SelectAttrValue("type", ""),
				Default:     option.SelectAttrValue("default_value", ""),
				Description: option.SelectAttrValue("description", ""),
			})
		}

		reg.Groups = append(reg.Groups, group)
	}

	return &reg, nil
}
