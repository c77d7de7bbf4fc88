package pbxproj

import (
	"fmt"

	"howett.net/plist"
)

// document is the top level of the serialized object graph: a flat table of
// opaque identifiers to records plus the identifier of the root project
// record.
type document struct {
	Objects    map[string]map[string]any `plist:"objects"`
	RootObject string                    `plist:"rootObject"`
}

// parseStructured interprets the object graph through its declared
// cross-references: root project record -> configuration list record ->
// configuration records, taking names in list order.
func parseStructured(data []byte) (*configList, error) {
	var doc document
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding object graph: %w", err)
	}

	root, ok := doc.Objects[doc.RootObject]
	if !ok {
		return nil, fmt.Errorf("root object %q not found", doc.RootObject)
	}

	listID, ok := root["buildConfigurationList"].(string)
	if !ok {
		return nil, fmt.Errorf("root object has no buildConfigurationList")
	}
	list, ok := doc.Objects[listID]
	if !ok {
		return nil, fmt.Errorf("configuration list %q not found", listID)
	}

	refs, ok := list["buildConfigurations"].([]any)
	if !ok {
		return nil, fmt.Errorf("configuration list %q has no buildConfigurations", listID)
	}

	var names []string
	for _, ref := range refs {
		id, ok := ref.(string)
		if !ok {
			continue
		}
		obj, ok := doc.Objects[id]
		if !ok {
			continue
		}
		if isa, _ := obj["isa"].(string); isa != buildConfigType {
			continue
		}
		if name, _ := obj["name"].(string); name != "" {
			names = append(names, name)
		}
	}

	return &configList{names: dedupe(names)}, nil
}
