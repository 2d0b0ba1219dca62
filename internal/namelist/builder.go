package namelist

import "github.com/beevik/etree"

// provenanceComment is the first child of the root element. It survives
// regeneration verbatim and warns readers off hand-editing the file.
var provenanceComment = "\n" +
	IndentPerLevel + IndentPerLevel + "MPAS dycore" + "\n" +
	"\n" +
	IndentPerLevel + IndentPerLevel + "Notes to developers/maintainers:" + "\n" +
	IndentPerLevel + IndentPerLevel + "This file is auto-generated from the MPAS registry. Do not edit directly." + "\n" +
	IndentPerLevel + IndentPerLevel + "Instead, rerun the namelist-generator tool." + "\n" +
	IndentPerLevel

// Build assembles the namelist-definition document from translated entries.
// Entries are emitted in the order given; the translator is responsible for
// sorting them by id beforehand.
func Build(entries []Entry) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("entry_id_pg")
	root.CreateAttr("version", "0.1")
	root.CreateComment(provenanceComment)

	for _, entry := range entries {
		el := root.CreateElement("entry")
		el.CreateAttr("id", entry.ID)

		el.CreateElement("category").SetText(Category)
		el.CreateElement("desc").SetText(entry.Desc)
		el.CreateElement("group").SetText(entry.Group)
		el.CreateElement("type").SetText(entry.Type)
		el.CreateElement("values").CreateElement("value").SetText(entry.Value)
	}

	return doc
}
