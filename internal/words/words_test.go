package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewNormalizes(t *testing.T) {
	l, err := New([]string{" Crane ", "SLUMP", "toolong", "ab1de", "crane"}, []string{"Added"})
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "slump"}, l.Answers())
	assert.True(t, l.Contains("crane"))
	assert.True(t, l.Contains("CRANE"))
	assert.True(t, l.Contains("added"))
	assert.False(t, l.Contains("toolong"))
	assert.True(t, l.IsAnswer("slump"))
	assert.False(t, l.IsAnswer("added"))

	answers, allowed := l.Stats()
	assert.Equal(t, 2, answers)
	assert.Equal(t, 3, allowed)
}

func TestNewRejectsEmptyAnswers(t *testing.T) {
	_, err := New([]string{"nope", "123456"}, []string{"crane"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRandomWordIsAnAnswer(t *testing.T) {
	l, err := New([]string{"crane", "slump", "haste"}, []string{"added"})
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		assert.True(t, l.IsAnswer(l.RandomWord()))
	}
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("", "")
	require.NoError(t, err)

	answers, allowed := l.Stats()
	assert.Greater(t, answers, 100)
	assert.Greater(t, allowed, answers)
	assert.True(t, l.IsAnswer("slump"))
	assert.True(t, l.Contains("added"))
	assert.False(t, l.IsAnswer("added"))
	for _, w := range l.Answers() {
		assert.Len(t, w, 5)
	}
}

func TestLoadFiles(t *testing.T) {
	answers := writeList(t, "answers.txt", "# answers\ncrane\nSLUMP\n\nbad\n")
	allowed := writeList(t, "allowed.txt", "added\nzebra\n")

	t.Run("both files", func(t *testing.T) {
		l, err := Load(answers, allowed)
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "slump"}, l.Answers())
		assert.True(t, l.Contains("zebra"))
		assert.False(t, l.IsAnswer("zebra"))
	})

	t.Run("allowed file only", func(t *testing.T) {
		l, err := Load("", allowed)
		require.NoError(t, err)
		assert.Equal(t, []string{"added", "zebra"}, l.Answers())
	})

	t.Run("answers file only", func(t *testing.T) {
		_, err := Load(answers, "")
		assert.ErrorIs(t, err, ErrAnswersWithoutAllowed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), allowed)
		assert.Error(t, err)
	})
}
