package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load("../../data")
	require.NoError(t, err)
	return s
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LangHI, ParseLanguage("hi"))
	assert.Equal(t, LangEN, ParseLanguage("en"))
	assert.Equal(t, LangEN, ParseLanguage(""))
	assert.Equal(t, LangEN, ParseLanguage("fr"))
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestDesignation_AllKeysResolveInBothLanguages(t *testing.T) {
	s := loadTestStore(t)

	keys := s.DesignationKeys()
	require.NotEmpty(t, keys)

	for _, key := range keys {
		for _, lang := range []Language{LangEN, LangHI} {
			title, err := s.Designation(key, lang)
			require.NoError(t, err, "key %q lang %q", key, lang)
			assert.NotEmpty(t, title)
		}
	}
}

func TestDesignation_UnknownKey(t *testing.T) {
	s := loadTestStore(t)

	_, err := s.Designation("chief_astrologer", LangEN)
	require.Error(t, err)

	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "chief_astrologer", unknown.Key)
}

func TestOrderHeaderAndTitle(t *testing.T) {
	s := loadTestStore(t)

	assert.Len(t, s.OrderHeader(LangEN), 3)
	assert.Len(t, s.OrderHeader(LangHI), 3)
	assert.Equal(t, "Office Order", s.OrderTitle(LangEN))
	assert.Equal(t, "कार्यालय आदेश", s.OrderTitle(LangHI))
}

func TestCircularHeader(t *testing.T) {
	s := loadTestStore(t)

	en := s.CircularHeader(LangEN)
	assert.NotEmpty(t, en.OrgName)
	assert.NotEmpty(t, en.Ministry)
	assert.Equal(t, "Government of India", en.Government)

	hi := s.CircularHeader(LangHI)
	assert.NotEmpty(t, hi.OrgName)
	assert.Equal(t, "भारत सरकार", hi.Government)
}

func TestPeople_DirectoryOrderAndBilingualNames(t *testing.T) {
	s := loadTestStore(t)

	people := s.People()
	require.NotEmpty(t, people)

	for i, p := range people {
		assert.Equal(t, i+1, p.ID, "directory ids are sequential")
		assert.NotEmpty(t, p.Name(LangEN))
		assert.NotEmpty(t, p.Name(LangHI))
	}
}
