package cache

// lruNode is an element of lruList. It carries the key so the owner can
// delete the map entry when the node is evicted.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is a doubly-linked recency list with a sentinel root. The node
// after root is the most recently used. Not safe for concurrent use.
type lruList[K comparable] struct {
	root lruNode[K]
	n    int
}

func newLRUList[K comparable]() *lruList[K] {
	l := &lruList[K]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *lruList[K]) Len() int {
	return l.n
}

// PushFront inserts key as the most recently used entry.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	l.insertAfter(node, &l.root)
	l.n++
	return node
}

// MoveToFront marks node as the most recently used entry.
func (l *lruList[K]) MoveToFront(node *lruNode[K]) {
	if node == nil || l.root.next == node {
		return
	}
	l.detach(node)
	l.insertAfter(node, &l.root)
}

// Remove unlinks node.
func (l *lruList[K]) Remove(node *lruNode[K]) {
	if node == nil || node.next == nil {
		return
	}
	l.detach(node)
	node.next, node.prev = nil, nil
	l.n--
}

// RemoveOldest unlinks the least recently used node and returns its key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.n == 0 {
		var zero K
		return zero, false
	}
	node := l.root.prev
	l.Remove(node)
	return node.key, true
}

// Clear drops every node.
func (l *lruList[K]) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0
}

func (l *lruList[K]) insertAfter(node, at *lruNode[K]) {
	node.prev = at
	node.next = at.next
	at.next.prev = node
	at.next = node
}

func (l *lruList[K]) detach(node *lruNode[K]) {
	node.prev.next = node.next
	node.next.prev = node.prev
}
