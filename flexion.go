package corrector

// conjugate builds the inflected form of baseVerb.
// Future stems are stored fully inflected, so only non-future stems
// take the subject suffix. A tense missing from the paradigm is an
// empty stem, which is valid.
func (c *Corrector) conjugate(baseVerb string, tense Tense, subject string) (string, error) {
	paradigm, ok := c.lex.Verbs.Get(baseVerb)
	if !ok {
		return baseVerb, nil
	}
	subj, ok := c.lex.Subjects.Get(subject)
	if !ok {
		return baseVerb, nil
	}
	if paradigm.Invalid() {
		return "", &InvalidFormError{BaseVerb: baseVerb, Tense: tense, Value: string(paradigm.Raw())}
	}

	form, _ := paradigm.Get(string(tense))
	if form.Invalid() {
		return "", &InvalidFormError{BaseVerb: baseVerb, Tense: tense, Value: string(form.Raw())}
	}

	if tense == TenseFuture {
		return form.Stem, nil
	}
	return form.Stem + subj.Suffix, nil
}
