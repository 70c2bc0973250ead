package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "8001", escapeLike("8001"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
}

func TestSplitPostalCodes(t *testing.T) {
	assert.Nil(t, splitPostalCodes(""))
	assert.Equal(t, []string{"8002", "8003"}, splitPostalCodes("8002,8003"))
	assert.Equal(t, []string{"8002", "8003"}, splitPostalCodes(" 8002 ,,8003,"))
}
