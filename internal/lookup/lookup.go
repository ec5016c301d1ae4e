// Package lookup loads the static bilingual reference data used to fill
// formal documents: the designation map, the office-order letterhead, and
// the circular letterhead with its people directory. The data is read once
// at startup and is immutable for the process lifetime.
package lookup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Language selects which half of a bilingual field is used.
type Language string

const (
	LangEN Language = "en"
	LangHI Language = "hi"
)

// ParseLanguage maps a raw form value to a Language. Anything that is not
// "hi" falls back to English, matching the form's two-option selector.
func ParseLanguage(raw string) Language {
	if raw == string(LangHI) {
		return LangHI
	}
	return LangEN
}

// Designation is a bilingual job title.
type Designation struct {
	EN string `json:"en"`
	HI string `json:"hi"`
}

// Person is one entry of the circular people directory.
type Person struct {
	ID     int    `json:"id"`
	NameEN string `json:"name_en"`
	NameHI string `json:"name_hi"`
}

// Name returns the person's name in the given language.
func (p Person) Name(lang Language) string {
	if lang == LangHI {
		return p.NameHI
	}
	return p.NameEN
}

// CircularHeader is the structured three-line letterhead of a circular.
type CircularHeader struct {
	OrgName    string `json:"org_name"`
	Ministry   string `json:"ministry"`
	Government string `json:"government"`
}

type officeOrderDoc struct {
	Header struct {
		EN []string `json:"en"`
		HI []string `json:"hi"`
	} `json:"header"`
	TitleEN string `json:"title_en"`
	TitleHI string `json:"title_hi"`
}

type circularDoc struct {
	Header struct {
		English CircularHeader `json:"english"`
		Hindi   CircularHeader `json:"hindi"`
	} `json:"header"`
	People []Person `json:"people"`
}

// UnknownKeyError reports a designation key that is not present in the map.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown designation %q", e.Key)
}

// Store holds the loaded reference data.
type Store struct {
	designations map[string]Designation
	officeOrder  officeOrderDoc
	circular     circularDoc
}

// Load reads designations.json, office_order.json and circular.json from dir.
func Load(dir string) (*Store, error) {
	s := &Store{}

	if err := readJSON(filepath.Join(dir, "designations.json"), &s.designations); err != nil {
		return nil, fmt.Errorf("load designations: %w", err)
	}
	if err := readJSON(filepath.Join(dir, "office_order.json"), &s.officeOrder); err != nil {
		return nil, fmt.Errorf("load office order data: %w", err)
	}
	if err := readJSON(filepath.Join(dir, "circular.json"), &s.circular); err != nil {
		return nil, fmt.Errorf("load circular data: %w", err)
	}

	if len(s.designations) == 0 {
		return nil, fmt.Errorf("designation map is empty")
	}
	return s, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Designation resolves a designation key to its title in the given language.
func (s *Store) Designation(key string, lang Language) (string, error) {
	d, ok := s.designations[key]
	if !ok {
		return "", &UnknownKeyError{Key: key}
	}
	title := d.EN
	if lang == LangHI {
		title = d.HI
	}
	if title == "" {
		return "", fmt.Errorf("designation %q has no %s title", key, lang)
	}
	return title, nil
}

// DesignationKeys returns all designation keys in sorted order, for the
// selection views.
func (s *Store) DesignationKeys() []string {
	keys := make([]string, 0, len(s.designations))
	for k := range s.designations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OrderHeader returns the office-order letterhead lines for the language.
func (s *Store) OrderHeader(lang Language) []string {
	if lang == LangHI {
		return s.officeOrder.Header.HI
	}
	return s.officeOrder.Header.EN
}

// OrderTitle returns the office-order document title for the language.
func (s *Store) OrderTitle(lang Language) string {
	if lang == LangHI {
		return s.officeOrder.TitleHI
	}
	return s.officeOrder.TitleEN
}

// CircularHeader returns the circular letterhead for the language.
func (s *Store) CircularHeader(lang Language) CircularHeader {
	if lang == LangHI {
		return s.circular.Header.Hindi
	}
	return s.circular.Header.English
}

// People returns the circular people directory in its original order.
// The returned slice must not be modified.
func (s *Store) People() []Person {
	return s.circular.People
}
