package xcworkspace

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedWorkspace reports a contents.xcworkspacedata document with no
// parseable root element. It is fatal to the whole workspace resolution.
var ErrMalformedWorkspace = errors.New("malformed workspace document")

// ParseTree parses workspace XML into the children of its root element.
// Exactly two element names are recognized, FileRef and Group; anything else
// is skipped so future element types cannot break known siblings. Document
// order is preserved.
func ParseTree(data []byte) ([]Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrMalformedWorkspace
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedWorkspace, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseChildren(dec, start.Name.Local)
		}
	}
}

func parseChildren(dec *xml.Decoder, parent string) ([]Node, error) {
	var children []Node

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return children, nil
			}
			return nil, fmt.Errorf("parsing %s children: %w", parent, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "FileRef":
				node, err := parseFileRef(t)
				if err != nil {
					return nil, err
				}
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("parsing FileRef: %w", err)
				}
				if node != nil {
					children = append(children, node)
				}

			case "Group":
				group, err := parseGroup(t)
				if err != nil {
					return nil, err
				}
				group.Children, err = parseChildren(dec, "Group")
				if err != nil {
					return nil, err
				}
				children = append(children, group)

			default:
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("skipping %s: %w", t.Name.Local, err)
				}
			}

		case xml.EndElement:
			return children, nil
		}
	}
}

// parseFileRef returns nil for a FileRef with no location attribute: a leaf
// that cannot be addressed contributes nothing to the tree.
func parseFileRef(start xml.StartElement) (*FileRef, error) {
	raw, ok := attr(start, "location")
	if !ok {
		return nil, nil
	}
	loc, err := ParseLocation(raw)
	if err != nil {
		return nil, err
	}
	return &FileRef{Location: loc}, nil
}

// parseGroup retains groups without a location attribute: they can be purely
// organizational.
func parseGroup(start xml.StartElement) (*Group, error) {
	group := &Group{}
	if name, ok := attr(start, "name"); ok {
		group.Name = name
	}
	if raw, ok := attr(start, "location"); ok {
		loc, err := ParseLocation(raw)
		if err != nil {
			return nil, err
		}
		group.Location = &loc
	}
	return group, nil
}

func attr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
