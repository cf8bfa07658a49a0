package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"

	"github.com/minios-linux/keycheck/store"
)

// parseFlatJSON parses a single-level JSON object whose keys are
// already fully dotted paths. Nested objects or non-string values
// fail the parse, which is what pushes the cascade onward.
func parseFlatJSON(data []byte) (*store.Store, error) {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	// Sort for deterministic store order; JSON maps are unordered.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := store.New()
	for _, k := range keys {
		s.Insert(strings.Split(k, "."), m[k])
	}
	return s, nil
}

// parseNestedJSON parses an arbitrarily deep JSON object; the dotted
// key path is the chain of object keys from root to each string leaf.
func parseNestedJSON(data []byte) (*store.Store, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	s := store.New()
	if err := insertNested(s, nil, root); err != nil {
		return nil, err
	}
	return s, nil
}

func insertNested(s *store.Store, prefix []string, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := append(append([]string(nil), prefix...), k)
		switch val := m[k].(type) {
		case string:
			s.Insert(path, val)
		case map[string]any:
			if err := insertNested(s, path, val); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: value must be a string or an object", strings.Join(path, "."))
		}
	}
	return nil
}

// parsePO parses gettext msgid/msgstr pairs; each msgid is a dotted
// key. gotext's parser is lenient and never reports errors, so a file
// yielding zero entries is treated as not being PO at all.
func parsePO(data []byte) (*store.Store, error) {
	p := gotext.NewPo()
	p.Parse(data)

	translations := p.GetDomain().GetTranslations()
	ids := make([]string, 0, len(translations))
	for id := range translations {
		if id == "" {
			continue // header entry
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("no msgid entries found")
	}
	sort.Strings(ids)

	s := store.New()
	for _, id := range ids {
		s.Insert(strings.Split(id, "."), translations[id].Get())
	}
	return s, nil
}

// parseYAML parses a nested YAML mapping the same way as nested JSON.
func parseYAML(data []byte) (*store.Store, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("empty YAML document")
	}
	s := store.New()
	if err := insertNested(s, nil, root); err != nil {
		return nil, err
	}
	return s, nil
}
