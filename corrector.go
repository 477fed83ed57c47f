// Package corrector provides rule-based morphological correction of
// simple subject-object-verb Sinhala sentences.
//
// Every token of a sentence gets its role by membership in one of three
// lexicon tables (subjects, objects, base verbs). The verb is conjugated
// from the subject's suffix and a detected tense, and the sentence is
// rebuilt in subject [object] verb order.
package corrector

// DefaultFutureMarkers are the endings that mark a verb candidate as
// already being in the future tense.
var DefaultFutureMarkers = []string{"න්න", "න්නෙමි"}

// Corrector holds a loaded lexicon and provides the public API.
// It never modifies the lexicon, so a single Corrector is safe for
// concurrent use.
type Corrector struct {
	lex           *Lexicon
	futureMarkers []string
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithFutureMarkers replaces DefaultFutureMarkers.
func WithFutureMarkers(markers ...string) Option {
	return func(c *Corrector) {
		c.futureMarkers = append([]string(nil), markers...)
	}
}

// New returns a Corrector over lex. A nil lex behaves as an empty lexicon.
func New(lex *Lexicon, opts ...Option) *Corrector {
	if lex == nil {
		lex = NewLexicon()
	}
	c := &Corrector{
		lex:           lex,
		futureMarkers: DefaultFutureMarkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lexicon returns the tables the corrector works with.
func (c *Corrector) Lexicon() *Lexicon {
	return c.lex
}

// Vocabulary lists the subjects, objects and base verbs.
func (c *Corrector) Vocabulary() Vocabulary {
	return c.lex.Vocabulary()
}

// Classify assigns a role to every whitespace-separated token.
// The last token of each role wins; any token that is neither a subject
// nor an object becomes the verb candidate.
func (c *Corrector) Classify(sentence string) Components {
	return c.classify(sentence)
}

// ResolveBaseVerbAndTense finds the first base verb, in table order,
// that verb starts with. The tense is TenseFuture when verb ends with a
// future marker, TensePresent otherwise. An empty base verb means no
// base verb matched.
func (c *Corrector) ResolveBaseVerbAndTense(verb string) (string, Tense) {
	base, tense, _ := c.resolve(verb)
	return base, tense
}

// Conjugate returns the form of baseVerb for tense and subject.
// When either is unknown baseVerb is returned as is. A non-textual
// lexicon value yields *InvalidFormError.
func (c *Corrector) Conjugate(baseVerb string, tense Tense, subject string) (string, error) {
	return c.conjugate(baseVerb, tense, subject)
}

// CorrectSentence conjugates the verb of sentence for its subject and
// rebuilds it as subject [object] verb. A sentence without a subject or
// a verb candidate is returned unchanged.
func (c *Corrector) CorrectSentence(sentence string) (string, error) {
	return c.correctSentence(sentence)
}

// CorrectParagraph splits paragraph on periods, corrects every
// non-empty sentence and joins them with ". ". The trailing period is
// kept only if paragraph had one.
func (c *Corrector) CorrectParagraph(paragraph string) (string, error) {
	return c.correctParagraph(paragraph)
}
