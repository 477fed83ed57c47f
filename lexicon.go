package corrector

import "encoding/json"

// Names of the three lexicon tables in a Store.
const (
	SubjectsTable = "subjects"
	VerbsTable    = "verbs"
	ObjectsTable  = "objects"
)

// Lexicon holds the three vocabulary tables. Once handed to a
// Corrector it must not be modified.
type Lexicon struct {
	// Subjects maps a subject token to its features.
	Subjects *Table[Subject]
	// Verbs maps a base verb (a prefix of its inflected forms) to its
	// tense stems.
	Verbs *Table[*Paradigm]
	// Objects maps an object token to arbitrary metadata.
	Objects *Table[json.RawMessage]

	warnings []error
}

// NewLexicon returns a lexicon with three empty tables.
func NewLexicon() *Lexicon {
	return &Lexicon{
		Subjects: NewTable[Subject](),
		Verbs:    NewTable[*Paradigm](),
		Objects:  NewTable[json.RawMessage](),
	}
}

// Warnings returns the non-fatal problems met while loading, such as
// *MissingResourceError for tables that had to be created.
func (l *Lexicon) Warnings() []error {
	return l.warnings
}

// Vocabulary lists the known tokens of each table in table order.
type Vocabulary struct {
	Subjects []string `json:"subjects"`
	Objects  []string `json:"objects"`
	Verbs    []string `json:"verbs"`
}

// Vocabulary returns the keys of every table.
func (l *Lexicon) Vocabulary() Vocabulary {
	v := Vocabulary{
		Subjects: l.Subjects.Keys(),
		Objects:  l.Objects.Keys(),
		Verbs:    l.Verbs.Keys(),
	}
	if v.Subjects == nil {
		v.Subjects = []string{}
	}
	if v.Objects == nil {
		v.Objects = []string{}
	}
	if v.Verbs == nil {
		v.Verbs = []string{}
	}
	return v
}
