package contact

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// ProseNameFinder detects person names with the prose NLP library's
// named-entity recognizer.
type ProseNameFinder struct{}

func (ProseNameFinder) PersonNames(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, ent := range doc.Entities() {
		if ent.Label != "PERSON" {
			continue
		}
		name := strings.TrimSpace(ent.Text)
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
