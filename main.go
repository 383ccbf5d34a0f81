package s3fifo

// insertMain makes room in Main if needed, then pushes entry to its front.
func (c *Cache[Key, Value]) insertMain(entry *entry[Key, Value]) (evicted Value, ok bool) {
	if c.main.Full() {
		evicted, ok = c.evictMain()
	}
	c.main.PushFront(entry)
	return evicted, ok
}

// evictMain scans Main from oldest to newest, decaying frequencies
// until an entry with frequency 0 is found and evicted.
// A frequency-3 entry needs 3 passes to decay, so
// 3*len+1 steps always suffice.
func (c *Cache[Key, Value]) evictMain() (Value, bool) {
	var (
		zero  Value
		steps = maxFrequency*c.main.Len() + 1
	)
	if c.main.Len() == 0 {
		return zero, false
	}
	for range steps {
		entry := c.main.PopBack()
		if entry.frequency == 0 {
			return entry.value, true
		}
		entry.frequency--
		c.main.PushFront(entry)
	}
	assert(false, "main scan finished without an eviction")
	return zero, false
}
