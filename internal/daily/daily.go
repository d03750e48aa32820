// Package daily picks a deterministic answer per calendar day, so every
// player started with -daily on the same UTC date gets the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps date into [0, n) with HMAC-SHA256(salt, DateKey(date)),
// reading the first 8 bytes of the MAC big-endian.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	io.WriteString(mac, DateKey(date))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Answer returns the day's word from answers, or "" if answers is empty.
func Answer(answers []string, date time.Time, salt string) string {
	if len(answers) == 0 {
		return ""
	}
	return answers[WordIndex(date, salt, len(answers))]
}
