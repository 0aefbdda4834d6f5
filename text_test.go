package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextAddContent(t *testing.T) {
	n := NewText([]byte("Hello "))
	if !assert.NoError(t, n.AddContent([]byte("World!")), "AddContent succeeds") {
		return
	}

	content, err := n.Content(nil)
	if !assert.NoError(t, err, "Content succeeds") {
		return
	}
	if !assert.Equal(t, []byte("Hello World!"), content, "Content matches") {
		return
	}
}

func TestTextAddChild(t *testing.T) {
	n1 := NewText([]byte("Hello "))
	n2 := NewText([]byte("World!"))

	if !assert.NoError(t, n1.AddChild(n2), "AddChild succeeds") {
		return
	}

	content, err := n1.Content(nil)
	if !assert.NoError(t, err, "Content succeeds") {
		return
	}
	if !assert.Equal(t, []byte("Hello World!"), content, "Content matches") {
		return
	}
}

func TestTextAddChildInvalidNode(t *testing.T) {
	n1 := NewText([]byte("Hello "))
	n2 := NewComment([]byte("nope"))

	if !assert.Equal(t, ErrInvalidOperation, n1.AddChild(n2), "AddChild fails") {
		return
	}

	content, err := n1.Content(nil)
	if !assert.NoError(t, err, "Content succeeds") {
		return
	}
	if !assert.Equal(t, []byte("Hello "), content, "Content matches") {
		return
	}
}

func TestCDATASectionDoesNotMixWithText(t *testing.T) {
	c := NewCDATASection([]byte("<raw>"))
	n := NewText([]byte("plain"))

	if !assert.Equal(t, ErrInvalidOperation, c.AddChild(n), "text into CDATA fails") {
		return
	}
	if !assert.Equal(t, ErrInvalidOperation, n.AddChild(c), "CDATA into text fails") {
		return
	}
}
