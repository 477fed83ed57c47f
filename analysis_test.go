package corrector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExact(t *testing.T) {
	c := newTestCorrector(t)
	rep, err := c.Check("මම බත් කනවා")
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Equal(t, Components{"මම", "බත්", "කනවා"}, rep.Components)
	assert.Equal(t, "කන", rep.BaseVerb)
	assert.Equal(t, TensePresent, rep.Tense)
	assert.Empty(t, rep.Repairs)
	assert.Empty(t, rep.Unknown)
	assert.Equal(t, "මම බත් කෑමි", rep.Corrected)
}

func TestCheckRepairsWords(t *testing.T) {
	c := newTestCorrector(t)

	rep, err := c.Check("මම බත කනවා")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"බත": "බත්"}, rep.Repairs)
	assert.Equal(t, "මම බත් කෑමි", rep.Corrected)

	// the object role is taken, so the typo is read as the subject
	rep, err = c.Check("මමා වතුර බොනවා")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"මමා": "මම"}, rep.Repairs)
	assert.Equal(t, "මම වතුර බීමි", rep.Corrected)
}

func TestCheckUnknownVerbIsKept(t *testing.T) {
	c := newTestCorrector(t)
	rep, err := c.Check("ඔහු වතුර ගිහිල්ලා")
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Equal(t, "ගිහිල්ලා", rep.Components.Verb)
	assert.Empty(t, rep.Unknown)
	assert.Equal(t, "ඔහු වතුර ගිහිල්ලා", rep.Corrected)
}

func TestCheckProblems(t *testing.T) {
	c := newTestCorrector(t)

	rep, err := c.Check("බත් කනවා")
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Equal(t, []string{ProblemNoSubject}, rep.Problems)
	assert.Equal(t, "බත් කනවා", rep.Corrected)

	rep, err = c.Check("මම")
	require.NoError(t, err)
	assert.Equal(t, []string{ProblemNoVerb}, rep.Problems)

	rep, err = c.Check("")
	require.NoError(t, err)
	assert.Equal(t, []string{ProblemNoSubject, ProblemNoVerb}, rep.Problems)
}

func TestCheckInvalidForm(t *testing.T) {
	c := New(newTestLexicon(t, testSubjects, `{"කන": {"present": true}}`, testObjects))
	_, err := c.Check("මම කනවා")
	var invalid *InvalidFormError
	assert.True(t, errors.As(err, &invalid))
}
