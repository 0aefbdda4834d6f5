package argon

// RegisterNodeFunc is invoked synchronously once for every node created.
// DeregisterNodeFunc is invoked synchronously once for every node freed.
// The hooks exist for bookkeeping and leak tracking; they must not
// mutate the tree re-entrantly during the callback.
type (
	RegisterNodeFunc   func(Node)
	DeregisterNodeFunc func(Node)
)

var (
	registerNodeFunc   RegisterNodeFunc
	deregisterNodeFunc DeregisterNodeFunc
)

// SetRegisterNodeFunc installs the process-wide node registration hook
// and returns the previously installed hook, so callers (tests in
// particular) can restore it. Pass nil to uninstall.
func SetRegisterNodeFunc(f RegisterNodeFunc) RegisterNodeFunc {
	prev := registerNodeFunc
	registerNodeFunc = f
	return prev
}

// SetDeregisterNodeFunc installs the process-wide node deregistration
// hook and returns the previously installed hook. Pass nil to uninstall.
func SetDeregisterNodeFunc(f DeregisterNodeFunc) DeregisterNodeFunc {
	prev := deregisterNodeFunc
	deregisterNodeFunc = f
	return prev
}

func registerNode(n Node) {
	if f := registerNodeFunc; f != nil {
		f(n)
	}
}

func deregisterNode(n Node) {
	if f := deregisterNodeFunc; f != nil {
		f(n)
	}
}
