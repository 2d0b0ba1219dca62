package translate

import (
	"cmp"
	"fmt"
	"slices"

	"namelist-generator/internal/common"
	"namelist-generator/internal/namelist"
	"namelist-generator/internal/registry"
)

// Translate converts a parsed registry into namelist-definition entries,
// sorted ascending by id. Groups and options are visited in document order;
// the final sort makes the result independent of that order anyway. The
// first malformed option aborts the translation, so callers never see a
// partial entry list alongside a nil error.
func Translate(reg *registry.Registry) ([]namelist.Entry, error) {
	var entries []namelist.Entry

	for _, group := range reg.Groups {
		if ExcludedGroup(group.Name) {
			continue
		}

		groupName := TransformName(common.Canon(group.Name))

		for _, option := range group.Options {
			if ExcludedOption(option.Name) {
				continue
			}

			entry, err := translateOption(option, groupName)
			if err != nil {
				return nil, err
			}

			entries = append(entries, entry)
		}
	}

	// Stable, so options sharing an id (the registry does not promise
	// uniqueness) keep their document order.
	slices.SortStableFunc(entries, func(a, b namelist.Entry) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return entries, nil
}

func translateOption(option registry.Option, groupName string) (namelist.Entry, error) {
	kind, err := KindOf(option.Type)
	if err != nil {
		return namelist.Entry{}, fmt.Errorf("option %q: %w", option.Name, err)
	}

	value, err := NormalizeValue(kind, option.Default)
	if err != nil {
		return namelist.Entry{}, fmt.Errorf("option %q: %w", option.Name, err)
	}

	return namelist.Entry{
		ID:    TransformName(common.Canon(option.Name)),
		Desc:  ReformatDescription(option.Description),
		Group: groupName,
		Type:  kind.Keyword(),
		Value: value,
	}, nil
}
