package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdinOrArgs(t *testing.T) {
	args := StdinOrArgs(strings.NewReader("unused"), []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, args)

	args = StdinOrArgs(strings.NewReader("x y\nz\n"), nil)
	assert.Equal(t, []string{"x", "y", "z"}, args)

	args = StdinOrArgs(strings.NewReader("from stdin"), []string{"-"})
	assert.Equal(t, []string{"from", "stdin"}, args)

	args = StdinOrArgs(strings.NewReader(""), nil)
	assert.Empty(t, args)
}

func TestCompareSymbol(t *testing.T) {
	assert.Equal(t, "<", CompareSymbol(-1))
	assert.Equal(t, "==", CompareSymbol(0))
	assert.Equal(t, ">", CompareSymbol(1))
}
