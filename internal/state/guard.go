package state

// DirtyGuard tracks unsaved edits for one view. It is created by whatever
// component owns navigation and passed down explicitly; there is no
// process-wide dirty flag.
type DirtyGuard struct {
	dirty bool
}

// NewDirtyGuard returns a clean guard.
func NewDirtyGuard() *DirtyGuard { return &DirtyGuard{} }

// Set marks the view dirty or clean.
func (g *DirtyGuard) Set(dirty bool) { g.dirty = dirty }

// IsDirty reports whether unsaved edits exist.
func (g *DirtyGuard) IsDirty() bool { return g.dirty }

// ConfirmLeave decides whether navigation may proceed. A clean guard always
// allows it; a dirty one asks confirm, and resets only when the user
// accepts losing the edits.
func (g *DirtyGuard) ConfirmLeave(confirm func() bool) bool {
	if !g.dirty {
		return true
	}
	if confirm == nil || !confirm() {
		return false
	}
	g.dirty = false
	return true
}

// Reset clears the flag after a successful save.
func (g *DirtyGuard) Reset() { g.dirty = false }
