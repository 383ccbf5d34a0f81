package s3fifo_test

import (
	"fmt"
	"sync"

	s3fifo "github.com/djdv/go-s3fifo"
)

func ExampleCache() {
	const (
		capacity = 1024 // TODO(Anyone): Use contextual capacity.
		key      = "name"
		value    = 1
	)
	cache, err := s3fifo.New[string, int](capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	if _, ok := cache.Get(key); !ok {
		cache.Put(key, value)
	}
	if got, ok := cache.Get(key); ok {
		fmt.Printf("%s: %d\n", key, got)
	}
	// Output:
	// name: 1
}

func ExampleCache_Put() {
	cache, err := s3fifo.New[string, string](s3fifo.MinimumCapacity)
	if err != nil {
		panic(err)
	}
	cache.Put("greeting", "hello")
	// Put does not replace a resident value.
	stored, _, _ := cache.Put("greeting", "goodbye")
	fmt.Println(*stored)
	// GetMut does.
	if value, ok := cache.GetMut("greeting"); ok {
		*value = "goodbye"
	}
	got, _ := cache.Get("greeting")
	fmt.Println(got)
	// Output:
	// hello
	// goodbye
}

func ExampleCache_Pop() {
	cache, err := s3fifo.New[int, string](s3fifo.MinimumCapacity)
	if err != nil {
		panic(err)
	}
	cache.Put(1, "one")
	cache.Put(2, "two") // Small holds a single entry; "one" is evicted.
	for {
		value, ok := cache.Pop()
		if !ok {
			break
		}
		fmt.Println("shed:", value)
	}
	fmt.Println("resident:", cache.Len())
	// Output:
	// shed: two
	// resident: 0
}

// The cache is not safe for concurrent use;
// callers serialize access themselves.
func Example_concurrent() {
	var (
		mu       sync.Mutex
		cache, _ = s3fifo.New[int, int](100)
		wg       sync.WaitGroup
	)
	for worker := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 10 {
				key := worker*10 + i
				mu.Lock()
				cache.Put(key, key)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	mu.Lock()
	defer mu.Unlock()
	fmt.Println("resident:", cache.Len())
	// Output:
	// resident: 10
}
