package s3fifo

// ghostRecord is what remains of an entry evicted from Small.
type ghostRecord[Key comparable] struct {
	key       Key
	frequency uint8
}

// remember pushes a record for key to the front of Ghost,
// dropping the oldest record first if Ghost is full.
func (c *Cache[Key, _]) remember(key Key, frequency uint8) {
	if c.ghost.Cap() == 0 {
		return
	}
	if c.ghost.Full() {
		c.ghost.PopBack()
	}
	c.ghost.PushFront(ghostRecord[Key]{
		key:       key,
		frequency: frequency,
	})
}

// forget removes the record for key from Ghost,
// returning its frequency if one was present.
func (c *Cache[Key, _]) forget(key Key) (uint8, bool) {
	i := c.ghost.Index(func(record ghostRecord[Key]) bool {
		return record.key == key
	})
	if i < 0 {
		return 0, false
	}
	return c.ghost.Remove(i).frequency, true
}
