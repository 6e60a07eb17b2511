package ui

// ResizeNotifier fans out window size changes. ebiten only reports the
// outside size through Game.Layout, so the game feeds it from there.
type ResizeNotifier struct {
	w, h   int
	nextID int
	subs   map[int]func(w, h int)
}

func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{subs: make(map[int]func(w, h int))}
}

// Subscribe registers fn and returns the function that removes it.
// The returned function may be called more than once.
func (rn *ResizeNotifier) Subscribe(fn func(w, h int)) (unsubscribe func()) {
	id := rn.nextID
	rn.nextID++
	rn.subs[id] = fn
	return func() {
		delete(rn.subs, id)
	}
}

// Notify delivers the size to every subscriber if it changed since the last call.
func (rn *ResizeNotifier) Notify(w, h int) {
	if w == rn.w && h == rn.h {
		return
	}
	rn.w, rn.h = w, h
	for _, fn := range rn.subs {
		fn(w, h)
	}
}

// Size returns the last notified size.
func (rn *ResizeNotifier) Size() (int, int) {
	return rn.w, rn.h
}

// Subscribers returns the number of live subscriptions.
func (rn *ResizeNotifier) Subscribers() int {
	return len(rn.subs)
}
