package corrector

import "strings"

// Problems reported by Check.
const (
	ProblemNoSubject = "no subject found"
	ProblemNoVerb    = "no verb found"
)

// Report describes a checked sentence.
type Report struct {
	// Input is the sentence as given.
	Input string `json:"input"`
	// Components are the roles found, after word repair.
	Components Components `json:"components"`
	// BaseVerb and Tense are resolved from Components.Verb.
	BaseVerb string `json:"base_verb,omitempty"`
	Tense    Tense  `json:"tense,omitempty"`
	// Repairs maps an unknown token to the vocabulary word it was
	// taken for.
	Repairs map[string]string `json:"repairs"`
	// Unknown lists the tokens that got no role at all.
	Unknown []string `json:"unknown"`
	// Problems lists why the sentence could not be corrected.
	Problems []string `json:"problems"`
	// Corrected is the rebuilt sentence, or Input when there were
	// problems.
	Corrected string `json:"corrected"`
}

// OK reports whether the sentence could be corrected.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Check is a lenient CorrectSentence: tokens that are not in the
// lexicon may be repaired to a vocabulary word within
// MaxRepairDistance, filling the object, subject and verb roles in that
// order of preference. The result explains what was found and changed.
func (c *Corrector) Check(sentence string) (Report, error) {
	rep := Report{
		Input:    sentence,
		Repairs:  make(map[string]string),
		Unknown:  []string{},
		Problems: []string{},
	}
	comp := &rep.Components

	var pending []string
	for _, word := range strings.Fields(sentence) {
		switch {
		case c.lex.Subjects.Has(word):
			comp.Subject = word
		case c.lex.Objects.Has(word):
			comp.Object = word
		default:
			if _, _, ok := c.resolve(word); ok {
				comp.Verb = word
			} else {
				pending = append(pending, word)
			}
		}
	}

	for _, word := range pending {
		if fixed, ok := c.repair(word, comp); ok {
			rep.Repairs[word] = fixed
			continue
		}
		rep.Unknown = append(rep.Unknown, word)
	}
	if comp.Verb == "" && len(rep.Unknown) > 0 {
		// an unknown verb is still a verb candidate; it is kept as written
		last := len(rep.Unknown) - 1
		comp.Verb = rep.Unknown[last]
		rep.Unknown = rep.Unknown[:last]
	}

	if comp.Subject == "" {
		rep.Problems = append(rep.Problems, ProblemNoSubject)
	}
	if comp.Verb == "" {
		rep.Problems = append(rep.Problems, ProblemNoVerb)
	}
	if !rep.OK() {
		rep.Corrected = sentence
		return rep, nil
	}

	if base, tense, ok := c.resolve(comp.Verb); ok {
		rep.BaseVerb, rep.Tense = base, tense
	}
	corrected, err := c.rebuild(*comp)
	if err != nil {
		return rep, err
	}
	rep.Corrected = corrected
	return rep, nil
}

// repair fills the first empty role that word is close to.
func (c *Corrector) repair(word string, comp *Components) (string, bool) {
	if comp.Object == "" {
		if fixed, ok := Closest(word, c.lex.Objects.Keys()); ok {
			comp.Object = fixed
			return fixed, true
		}
	}
	if comp.Subject == "" {
		if fixed, ok := Closest(word, c.lex.Subjects.Keys()); ok {
			comp.Subject = fixed
			return fixed, true
		}
	}
	if comp.Verb == "" {
		if fixed, ok := Closest(word, c.lex.Verbs.Keys()); ok {
			comp.Verb = fixed
			return fixed, true
		}
	}
	return "", false
}
