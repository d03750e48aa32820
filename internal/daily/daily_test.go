package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(d))
}

func TestWordIndexIsStablePerDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)

	a := WordIndex(morning, "salt", 1000)
	assert.Equal(t, a, WordIndex(evening, "salt", 1000))
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 1000)
	assert.Equal(t, 0, WordIndex(morning, "salt", 0))
}

func TestWordIndexChangesWithSaltAndDate(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 1<<20)] = true
	}
	assert.Greater(t, len(seen), 25)
	assert.NotEqual(t, WordIndex(day, "a", 1<<20), WordIndex(day, "b", 1<<20))
}

func TestAnswer(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	answers := []string{"crane", "slump", "haste"}

	assert.Equal(t, 202, WordIndex(day, "salt", 1000))
	assert.Equal(t, "haste", Answer(answers, day, "salt"))
	assert.Equal(t, "", Answer(nil, day, "salt"))
}
