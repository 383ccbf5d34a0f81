// Package s3fifo implements a [Cache] using the S3-FIFO replacement algorithm.
//
// S3-FIFO is a scan-resistant policy that approximates LFU behaviour
// using only FIFO queues and small saturating frequency counters.
// It avoids the bookkeeping of a full LRU/LFU ordering structure;
// insertion and eviction are cheap, lookups are a linear scan
// over short queues.
// The algorithm is described in the [SOSP 2023 S3-FIFO paper].
//
// The cache decides what stays and what is evicted, nothing more.
// Key derivation (see package keyhash) and synchronization
// are the caller's responsibility.
//
// Glossary and invariants:
//
//   - Small
//
//     FIFO of recently inserted, not yet proven entries.
//     Capacity is capacity/10.
//
//   - Main
//
//     FIFO of entries that showed reuse.
//     Capacity is capacity*9/10.
//
//   - Ghost
//
//     FIFO of keys (and their last frequency) evicted from Small
//     without promotion. Values are not retained.
//     Capacity mirrors Main.
//
//   - Frequency
//
//     A counter in [0, 3]. Incremented (saturating) on every hit,
//     decremented each time Main's eviction scan passes over the entry.
//
// Operations:
//
//   - Promotion
//
//     An entry leaving Small with frequency > 1 moves to the front of Main
//     with its frequency intact.
//
//   - Ghosting
//
//     An entry leaving Small with frequency <= 1 is evicted;
//     its key and frequency are pushed to the front of Ghost,
//     dropping Ghost's oldest record if Ghost is full.
//
//   - Ghost hit
//
//     Putting a key that has a Ghost record removes the record
//     and lands the new entry directly in Main with the recorded frequency.
//
//   - Frequency decay
//
//     Evicting from Main pops the oldest entry; if its frequency is 0 it is evicted,
//     otherwise the frequency is decremented and the entry re-enters at the front.
//     The scan is bounded to 3*len(Main)+1 steps, which is exactly enough
//     to evict from a Main where every entry has frequency 3.
//
// A key resident in Main is never present in Small or Ghost.
// New and promoted entries always land at the front of a queue;
// eviction always takes from the back.
//
// [SOSP 2023 S3-FIFO paper]: https://dl.acm.org/doi/10.1145/3600006.3613147
package s3fifo
