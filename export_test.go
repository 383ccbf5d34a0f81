package s3fifo

// QueueLengths reports the current length of Small, Main, and Ghost.
func (c *Cache[_, _]) QueueLengths() (small, main, ghost int) {
	return c.small.Len(), c.main.Len(), c.ghost.Len()
}

// QueueCapacities reports the capacity of Small, Main, and Ghost.
func (c *Cache[_, _]) QueueCapacities() (small, main, ghost int) {
	return c.small.Cap(), c.main.Cap(), c.ghost.Cap()
}

// InMain reports whether key is resident in Main.
func (c *Cache[Key, Value]) InMain(key Key) bool {
	return c.main.Index(func(entry *entry[Key, Value]) bool {
		return entry.key == key
	}) >= 0
}

// Frequency returns the frequency of a resident entry,
// or of its Ghost record, without counting as an access.
func (c *Cache[Key, _]) Frequency(key Key) (uint8, bool) {
	for _, queue := range c.residents() {
		for entry := range queue.All() {
			if entry.key == key {
				return entry.frequency, true
			}
		}
	}
	for record := range c.ghost.All() {
		if record.key == key {
			return record.frequency, true
		}
	}
	return 0, false
}

// GhostKeys returns the keys remembered by Ghost, oldest first.
func (c *Cache[Key, _]) GhostKeys() []Key {
	keys := make([]Key, 0, c.ghost.Len())
	for record := range c.ghost.All() {
		keys = append(keys, record.key)
	}
	return keys
}
