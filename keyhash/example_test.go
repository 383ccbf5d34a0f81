package keyhash_test

import (
	"fmt"

	"github.com/djdv/go-s3fifo"
	"github.com/djdv/go-s3fifo/keyhash"
)

func ExampleString() {
	cache, err := s3fifo.New[keyhash.Key[string], string](s3fifo.MinimumCapacity)
	if err != nil {
		panic(err)
	}
	const url = "https://example.com/"
	key := keyhash.String(url)
	if _, ok := cache.Get(key); !ok {
		cache.Put(key, "<html>...</html>")
	}
	body, _ := cache.Get(keyhash.String(url))
	fmt.Println(body)
	// Output:
	// <html>...</html>
}
