package corrector

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissing(t *testing.T) {
	s := FileStore{Dir: t.TempDir()}
	_, err := s.Read(VerbsTable)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadLexiconCreatesMissingTables(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dictionaries")
	s := FileStore{Dir: dir}
	require.NoError(t, s.Write(SubjectsTable, []byte(testSubjects)))

	lex, err := LoadLexicon(s)
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Subjects.Len())
	assert.Equal(t, 0, lex.Verbs.Len())

	require.Len(t, lex.Warnings(), 2)
	var missing *MissingResourceError
	require.True(t, errors.As(lex.Warnings()[0], &missing))
	assert.Equal(t, VerbsTable, missing.Name)
	assert.True(t, errors.Is(missing, ErrNotFound))

	for _, name := range []string{VerbsTable, ObjectsTable} {
		data, err := os.ReadFile(s.Path(name))
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	}

	lex, err = LoadLexicon(s)
	require.NoError(t, err)
	assert.Empty(t, lex.Warnings())
}

func TestLoadLexiconMalformed(t *testing.T) {
	s := FileStore{Dir: t.TempDir()}
	require.NoError(t, s.Write(VerbsTable, []byte(`{"කන": `)))

	_, err := LoadLexicon(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse verbs")
}

func TestLoadLexiconInvalidVerb(t *testing.T) {
	s := FileStore{Dir: t.TempDir()}
	require.NoError(t, s.Write(SubjectsTable, []byte(testSubjects)))
	require.NoError(t, s.Write(VerbsTable, []byte(`{"කන": {"present": "කෑ"}, "බොන": 7}`)))
	require.NoError(t, s.Write(ObjectsTable, []byte(testObjects)))

	lex, err := LoadLexicon(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"කන", "බොන"}, lex.Verbs.Keys())

	got, err := New(lex).CorrectSentence("මම බත් කනවා")
	require.NoError(t, err)
	assert.Equal(t, "මම බත් කෑමි", got)
}

func TestSaveTableFormatting(t *testing.T) {
	s := FileStore{Dir: t.TempDir()}
	lex := newTestLexicon(t, testSubjects, testVerbs, testObjects)
	require.NoError(t, SaveLexicon(s, lex))

	data, err := os.ReadFile(s.Path(VerbsTable))
	require.NoError(t, err)
	want := `{
  "කන": {
    "present": "කෑ",
    "future": "කන්නෙමි"
  },
  "බොන": {
    "present": "බී"
  }
}
`
	assert.Equal(t, want, string(data))

	reloaded, err := LoadLexicon(s)
	require.NoError(t, err)
	assert.Equal(t, lex.Vocabulary(), reloaded.Vocabulary())
}

func TestSaveKeepsInvalidForms(t *testing.T) {
	s := FileStore{Dir: t.TempDir()}
	verbs := `{"කන": {"present": 1, "future": null}, "බොන": "බී", "යන": 7}`
	lex := newTestLexicon(t, testSubjects, verbs, testObjects)
	require.NoError(t, SaveTable(s, VerbsTable, lex.Verbs))

	data, err := os.ReadFile(s.Path(VerbsTable))
	require.NoError(t, err)
	assert.JSONEq(t, verbs, string(data))
}

func TestCopyLexicon(t *testing.T) {
	src := FileStore{Dir: t.TempDir()}
	dst := FileStore{Dir: t.TempDir()}
	require.NoError(t, src.Write(ObjectsTable, []byte(testObjects)))

	require.NoError(t, CopyLexicon(dst, src))
	data, err := dst.Read(ObjectsTable)
	require.NoError(t, err)
	assert.Equal(t, testObjects, string(data))

	_, err = dst.Read(VerbsTable)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, src.Write(VerbsTable, []byte(`{`)))
	assert.Error(t, CopyLexicon(dst, src))
}

func TestVocabularyOrder(t *testing.T) {
	lex := newTestLexicon(t, testSubjects, testVerbs, testObjects)
	want := Vocabulary{
		Subjects: []string{"මම", "ඔහු"},
		Objects:  []string{"බත්", "වතුර"},
		Verbs:    []string{"කන", "බොන"},
	}
	assert.Equal(t, want, lex.Vocabulary())

	data, err := json.Marshal(NewLexicon().Vocabulary())
	require.NoError(t, err)
	assert.JSONEq(t, `{"subjects": [], "objects": [], "verbs": []}`, string(data))
}
