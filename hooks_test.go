package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeHooks(t *testing.T) {
	var registered []Node
	var deregistered []Node

	prevReg := SetRegisterNodeFunc(func(n Node) {
		registered = append(registered, n)
	})
	prevDereg := SetDeregisterNodeFunc(func(n Node) {
		deregistered = append(deregistered, n)
	})
	defer SetRegisterNodeFunc(prevReg)
	defer SetDeregisterNodeFunc(prevDereg)

	doc := CreateDocument()
	e := doc.CreateElement("e")
	txt := doc.CreateText([]byte("x"))
	if !assert.NoError(t, e.AddChild(txt), "AddChild succeeds") {
		return
	}

	if !assert.Contains(t, registered, Node(doc), "document creation observed") {
		return
	}
	if !assert.Contains(t, registered, Node(e), "element creation observed") {
		return
	}
	if !assert.Contains(t, registered, Node(txt), "text creation observed") {
		return
	}
	if !assert.Empty(t, deregistered, "nothing freed yet") {
		return
	}

	Free(e)
	if !assert.Contains(t, deregistered, Node(e), "element release observed") {
		return
	}
	if !assert.Contains(t, deregistered, Node(txt), "descendant release observed") {
		return
	}
}

func TestSetRegisterNodeFuncReturnsPrevious(t *testing.T) {
	first := func(Node) {}
	prev := SetRegisterNodeFunc(first)
	defer SetRegisterNodeFunc(prev)

	// installing a replacement hands back the hook it displaces
	got := SetRegisterNodeFunc(nil)
	if !assert.NotNil(t, got, "previous hook returned") {
		return
	}
	SetRegisterNodeFunc(prev)

	prevD := SetDeregisterNodeFunc(func(Node) {})
	got2 := SetDeregisterNodeFunc(prevD)
	if !assert.NotNil(t, got2, "previous deregister hook returned") {
		return
	}
}

func TestHooksUninstalled(t *testing.T) {
	calls := 0
	prev := SetRegisterNodeFunc(func(Node) { calls++ })
	SetRegisterNodeFunc(prev)

	NewElement("quiet")
	if !assert.Zero(t, calls, "uninstalled hook never fires") {
		return
	}
}
