package corrector

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Tense names a conjugation category; it selects a stem in a Paradigm.
type Tense string

const (
	TensePresent Tense = "present"
	TenseFuture  Tense = "future"
)

// Subject holds the grammatical features of a subject token.
type Subject struct {
	// Suffix is appended to non-future stems.
	Suffix string `json:"suffix"`
	// Person is informational only (e.g. "first").
	Person string `json:"person,omitempty"`

	// raw is the entry as loaded, written back unchanged on save.
	raw json.RawMessage
}

// NewSubject returns a subject entry with the given suffix.
func NewSubject(suffix string) Subject {
	return Subject{Suffix: suffix}
}

func (s *Subject) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("subject entry must be a JSON object")
	}
	var p struct {
		Suffix *string `json:"suffix"`
		Person string  `json:"person"`
	}
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	if p.Suffix == nil {
		return errors.New("subject entry has no suffix")
	}
	*s = Subject{Suffix: *p.Suffix, Person: p.Person}
	s.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

func (s Subject) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}
	type plain Subject
	return marshalVerbatim(plain(s))
}

// Form is a single tense entry of a Paradigm. It is either a textual
// stem (possibly empty) or a structurally invalid value, which is kept
// so it can be reported and saved back untouched.
type Form struct {
	Stem string

	raw     json.RawMessage
	invalid bool
}

// StemForm returns a valid form holding stem.
func StemForm(stem string) Form {
	return Form{Stem: stem}
}

// Invalid reports whether the lexicon value is not a textual stem.
func (f Form) Invalid() bool {
	return f.invalid
}

// Raw returns the JSON value of an invalid form.
func (f Form) Raw() json.RawMessage {
	return f.raw
}

func (f *Form) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = Form{Stem: s}
		return nil
	}
	*f = Form{raw: append(json.RawMessage(nil), trimmed...), invalid: true}
	return nil
}

func (f Form) MarshalJSON() ([]byte, error) {
	if f.invalid {
		return f.raw, nil
	}
	return marshalVerbatim(f.Stem)
}

// Paradigm maps a tense name to its stem. A verb entry that is not a
// JSON object decodes to an invalid paradigm holding the raw value.
type Paradigm struct {
	Table[Form]

	raw     json.RawMessage
	invalid bool
}

// NewParadigm returns an empty, valid paradigm.
func NewParadigm() *Paradigm {
	return &Paradigm{Table: *NewTable[Form]()}
}

// Invalid reports whether the verb entry is not a JSON object.
func (p *Paradigm) Invalid() bool {
	return p == nil || p.invalid
}

// Raw returns the JSON value of an invalid paradigm.
func (p *Paradigm) Raw() json.RawMessage {
	if p == nil {
		return json.RawMessage("null")
	}
	return p.raw
}

func (p *Paradigm) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		p.raw, p.invalid = nil, false
		return p.Table.UnmarshalJSON(trimmed)
	}
	p.Table.reset()
	p.raw = append(json.RawMessage(nil), trimmed...)
	p.invalid = true
	return nil
}

func (p *Paradigm) MarshalJSON() ([]byte, error) {
	if p.invalid {
		return p.raw, nil
	}
	return p.Table.MarshalJSON()
}

// Components is the result of classifying the tokens of a sentence.
type Components struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Verb    string `json:"verb"`
}
