package corrector

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Store when a table has never been written.
var ErrNotFound = errors.New("lexicon table not found")

// InvalidFormError reports a verb entry whose value for a tense is not
// a textual stem. It is never recovered from: correcting with a corrupt
// lexicon would silently produce wrong output.
type InvalidFormError struct {
	BaseVerb string
	Tense    Tense
	// Value is the offending JSON value ("null" for a missing paradigm).
	Value string
}

func (e *InvalidFormError) Error() string {
	return fmt.Sprintf("invalid verb form for base verb %q in tense %q: %s", e.BaseVerb, e.Tense, e.Value)
}

// MissingResourceError records a lexicon table that did not exist and
// was replaced by a freshly written empty table. It is a warning.
type MissingResourceError struct {
	Name string
	Err  error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("dictionary table %s not found, created empty table", e.Name)
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}
