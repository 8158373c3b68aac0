package export

import (
	"fmt"
	"os"

	"github.com/linyc74/cbioingest/internal/schema"
	"gopkg.in/yaml.v3"
)

// StudyIdentifierKey is the study info key every bundle must carry.
const StudyIdentifierKey = "cancer_study_identifier"

// StudyInfo holds study-level metadata as ordered key/value pairs. Order
// is preserved because it is reproduced verbatim in meta_study.txt.
type StudyInfo struct {
	Pairs []StudyInfoPair
}

// StudyInfoPair is one study metadata entry.
type StudyInfoPair struct {
	Key   string
	Value string
}

// Get returns the value for a key, or "".
func (si *StudyInfo) Get(key string) string {
	for _, p := range si.Pairs {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// ID returns the study identifier.
func (si *StudyInfo) ID() string {
	return si.Get(StudyIdentifierKey)
}

// ValidateKeys rejects study info keys the schema does not know about,
// and a missing study identifier.
func (si *StudyInfo) ValidateKeys(s *schema.Schema) error {
	known := make(map[string]bool, len(s.StudyInfoFields))
	for _, f := range s.StudyInfoFields {
		known[f.Key] = true
	}
	for _, p := range si.Pairs {
		if !known[p.Key] {
			return fmt.Errorf("unknown study info key %q for schema %q", p.Key, s.Name)
		}
	}
	if si.ID() == "" {
		return fmt.Errorf("study info is missing %q", StudyIdentifierKey)
	}
	return nil
}

// ReadStudyInfo loads study metadata from a YAML mapping, preserving key
// order.
func ReadStudyInfo(path string) (*StudyInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read study info: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse study info %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("study info %s is empty", path)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("study info %s must be a YAML mapping", path)
	}

	si := &StudyInfo{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		si.Pairs = append(si.Pairs, StudyInfoPair{
			Key:   root.Content[i].Value,
			Value: root.Content[i+1].Value,
		})
	}
	return si, nil
}

// ReadTags loads the optional study tags from a YAML file.
func ReadTags(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	var tags map[string]any
	if err := yaml.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags %s: %w", path, err)
	}
	return tags, nil
}
