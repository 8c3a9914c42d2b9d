package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentTextValid(t *testing.T) {
	assert.True(t, commentTextValid("Great product!"))
	assert.True(t, commentTextValid(strings.Repeat("a", 500)))
	assert.False(t, commentTextValid(strings.Repeat("a", 501)))
	assert.False(t, commentTextValid(""))
}

func TestCommentTextValidCountsRunesNotBytes(t *testing.T) {
	// 300 runes accentuées = 600 octets : doit passer.
	accented := strings.Repeat("é", 300)
	assert.Equal(t, 600, len(accented))
	assert.True(t, commentTextValid(accented))

	// 500 runes multi-octets restent dans la limite, 501 non.
	assert.True(t, commentTextValid(strings.Repeat("日", 500)))
	assert.False(t, commentTextValid(strings.Repeat("日", 501)))
}
