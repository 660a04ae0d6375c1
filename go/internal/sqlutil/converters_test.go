package sqlutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNullStringRoundTrip(t *testing.T) {
	assert.False(t, ToNullString("").Valid)
	assert.Equal(t, "", FromNullString(ToNullString("")))
	assert.Equal(t, "1", FromNullString(ToNullString("1")))
}

func TestToNullTime(t *testing.T) {
	assert.False(t, ToNullTime(time.Time{}).Valid)
	now := time.Now()
	nt := ToNullTime(now)
	assert.True(t, nt.Valid)
	assert.True(t, nt.Time.Equal(now))
}
