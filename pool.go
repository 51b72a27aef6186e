package list

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sirupsen/logrus"
)

type allocator[V any] interface {
	alloc(value V) (*Node[V], error)
	free(n *Node[V])
}

// heap allocates every node with new and lets the garbage collector reclaim released nodes.
type heap[V any] struct{}

func (heap[V]) alloc(value V) (*Node[V], error) {
	return &Node[V]{Value: value}, nil
}

func (heap[V]) free(n *Node[V]) {
	*n = Node[V]{}
}

// PoolStats are cumulative node pool counters.
type PoolStats struct {
	Allocs int64
	Frees  int64
	Failed int64
}

// Pool is a node allocator that reuses released nodes.
//
// The list operations of a Pool behave like the package level functions
// but allocate and release nodes through the pool. A list must only be
// mutated through the pool that allocated its nodes.
//
// A Pool is safe for concurrent use by lists owned by different goroutines.
type Pool[V any] struct {
	logger logrus.FieldLogger
	pool   sync.Pool
	allocs *xsync.Counter
	frees  *xsync.Counter
	failed *xsync.Counter
	live   atomic.Int64
	cap    int64
}

// NewPool creates a node pool.
func NewPool[V any](opts ...Option) *Pool[V] {
	o := newDefaultPoolOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Pool[V]{
		logger: o.logger,
		allocs: xsync.NewCounter(),
		frees:  xsync.NewCounter(),
		failed: xsync.NewCounter(),
		cap:    int64(o.capacity),
	}
}

// Len returns the number of live nodes allocated from the pool.
func (p *Pool[V]) Len() int {
	return int(p.live.Load())
}

// Stats returns the pool counters.
func (p *Pool[V]) Stats() PoolStats {
	return PoolStats{
		Allocs: p.allocs.Value(),
		Frees:  p.frees.Value(),
		Failed: p.failed.Value(),
	}
}

// Append inserts a value after the last node of the list.
func (p *Pool[V]) Append(head **Node[V], value V) error {
	return appendNode[V](head, value, p)
}

// Prepend inserts a value before the first node of the list.
func (p *Pool[V]) Prepend(head **Node[V], value V) error {
	return prependNode[V](head, value, p)
}

// InsertAfter inserts a value immediately after the node at index idx.
func (p *Pool[V]) InsertAfter(head **Node[V], idx int, value V) error {
	return insertAfter[V](head, idx, value, p)
}

// Delete removes the node at index idx and returns it to the pool.
func (p *Pool[V]) Delete(head **Node[V], idx int) error {
	return deleteNode[V](head, idx, p)
}

// Destroy returns every node of the list to the pool and sets the head to nil.
func (p *Pool[V]) Destroy(head **Node[V]) error {
	return destroy[V](head, p)
}

func (p *Pool[V]) alloc(value V) (*Node[V], error) {
	if !p.reserve() {
		p.failed.Inc()
		p.logger.WithFields(logrus.Fields{
			"capacity": p.cap,
			"live":     p.live.Load(),
		}).Debug("node pool exhausted")

		return nil, errors.Wrapf(ErrOutOfMemory, "capacity %d", p.cap)
	}

	n, ok := p.pool.Get().(*Node[V])
	if !ok {
		n = &Node[V]{}
	}

	n.Value = value
	p.allocs.Inc()

	return n, nil
}

func (p *Pool[V]) free(n *Node[V]) {
	for {
		live := p.live.Load()
		if live == 0 {
			p.logger.WithField("capacity", p.cap).Warn("node released to a pool with no live nodes")
			*n = Node[V]{}
			return
		}

		if p.live.CompareAndSwap(live, live-1) {
			break
		}
	}

	*n = Node[V]{}
	p.frees.Inc()
	p.pool.Put(n)
}

func (p *Pool[V]) reserve() bool {
	if p.cap == 0 {
		p.live.Add(1)
		return true
	}

	for {
		live := p.live.Load()
		if live >= p.cap {
			return false
		}

		if p.live.CompareAndSwap(live, live+1) {
			return true
		}
	}
}
