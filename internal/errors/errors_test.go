package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	err := Wrap(&codeError{code: "E1"}, "outer")

	got, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, "E1", got.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}
