package wm

// DefaultPendingPool is the pending-update pool capacity used when the
// configured value is zero or negative.
const DefaultPendingPool = 8

// pendingUpdate records a geometry intent awaiting acknowledgement: the
// serial of the size request it rode on and the decorated frame that must
// take effect once the peer commits that request.
type pendingUpdate struct {
	serial uint32
	x, y   int
	width  int
	height int
}

// pendingRing is a fixed-capacity FIFO of pendingUpdates. Entries are
// pushed in request order, so serials in the ring are monotonically
// increasing modulo 2^32.
type pendingRing struct {
	buf   []pendingUpdate
	head  int
	count int
}

func newPendingRing(capacity int) *pendingRing {
	if capacity <= 0 {
		capacity = DefaultPendingPool
	}
	return &pendingRing{buf: make([]pendingUpdate, capacity)}
}

func (r *pendingRing) Len() int    { return r.count }
func (r *pendingRing) Empty() bool { return r.count == 0 }

// Push appends u. When the ring is full the oldest entry is evicted to
// make room; it is returned with full=true so the caller can salvage it.
func (r *pendingRing) Push(u pendingUpdate) (evicted pendingUpdate, full bool) {
	if r.count == len(r.buf) {
		evicted = r.buf[r.head]
		full = true
		r.head = (r.head + 1) % len(r.buf)
		r.count--
	}
	r.buf[(r.head+r.count)%len(r.buf)] = u
	r.count++
	return evicted, full
}

// PopThrough removes and returns the oldest entry if it was issued at or
// before serial. Ordering is judged by signed 32-bit delta, so comparisons
// stay correct across serial wraparound as long as entries are within
// 2^31 of one another.
func (r *pendingRing) PopThrough(serial uint32) (pendingUpdate, bool) {
	if r.count == 0 {
		return pendingUpdate{}, false
	}
	u := r.buf[r.head]
	if int32(u.serial-serial) > 0 {
		return pendingUpdate{}, false
	}
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return u, true
}
