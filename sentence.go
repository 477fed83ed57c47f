package corrector

import "strings"

func (c *Corrector) classify(sentence string) Components {
	var comp Components
	for _, word := range strings.Fields(sentence) {
		switch {
		case c.lex.Subjects.Has(word):
			comp.Subject = word
		case c.lex.Objects.Has(word):
			comp.Object = word
		default:
			comp.Verb = word
		}
	}
	return comp
}

// resolve is ResolveBaseVerbAndTense; ok is false when no base verb
// is a prefix of verb.
//
// The future check looks at the whole candidate, not at what is left
// after the base verb.
func (c *Corrector) resolve(verb string) (base string, tense Tense, ok bool) {
	tense = TensePresent
	for b := range c.lex.Verbs.All() {
		if strings.HasPrefix(verb, b) {
			if c.isFuture(verb) {
				tense = TenseFuture
			}
			return b, tense, true
		}
	}
	return "", tense, false
}

func (c *Corrector) isFuture(verb string) bool {
	for _, m := range c.futureMarkers {
		if m != "" && strings.HasSuffix(verb, m) {
			return true
		}
	}
	return false
}

func (c *Corrector) correctSentence(sentence string) (string, error) {
	comp := c.classify(sentence)
	if comp.Subject == "" || comp.Verb == "" {
		return sentence, nil
	}
	return c.rebuild(comp)
}

// rebuild conjugates comp.Verb and joins subject [object] verb.
// A verb with no matching base verb is kept as written.
func (c *Corrector) rebuild(comp Components) (string, error) {
	verb := comp.Verb
	if base, tense, ok := c.resolve(comp.Verb); ok {
		v, err := c.conjugate(base, tense, comp.Subject)
		if err != nil {
			return "", err
		}
		verb = v
	}

	words := []string{comp.Subject}
	if comp.Object != "" && c.lex.Objects.Has(comp.Object) {
		words = append(words, comp.Object)
	}
	words = append(words, verb)
	return strings.Join(words, " "), nil
}

func (c *Corrector) correctParagraph(paragraph string) (string, error) {
	var out []string
	for _, s := range strings.Split(paragraph, ".") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		corrected, err := c.correctSentence(s)
		if err != nil {
			return "", err
		}
		out = append(out, corrected)
	}
	result := strings.Join(out, ". ")
	if strings.HasSuffix(paragraph, ".") {
		result += "."
	}
	return result, nil
}
