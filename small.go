package s3fifo

// promotionThreshold is the frequency an entry must exceed
// while in Small to be moved into Main instead of Ghost.
const promotionThreshold = 1

// insertSmall makes room in Small if needed, then pushes entry to its front.
func (c *Cache[Key, Value]) insertSmall(entry *entry[Key, Value]) (evicted Value, ok bool) {
	if c.small.Full() {
		evicted, ok = c.evictSmall()
	}
	c.small.PushFront(entry)
	return evicted, ok
}

// evictSmall processes the oldest entry of Small.
// A reused entry is promoted into Main, and the value returned (if any)
// is whatever Main evicted to make room for it.
// Otherwise the entry is evicted, its value returned,
// and its key remembered by Ghost.
func (c *Cache[Key, Value]) evictSmall() (Value, bool) {
	if c.small.Len() == 0 {
		var zero Value
		return zero, false
	}
	entry := c.small.PopBack()
	if entry.frequency > promotionThreshold {
		return c.insertMain(entry)
	}
	c.remember(entry.key, entry.frequency)
	return entry.value, true
}
