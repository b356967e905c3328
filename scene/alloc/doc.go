// Package alloc provides the memory side of a scene load.
//
// # Overview
//
// A load never grows an allocation after first use. The loader counts what
// it needs, asks a types.Allocator for two exact-size blocks (chunks and
// pairs), then carves those blocks sequentially with a bump allocator. This
// package holds both halves of that arrangement.
//
// # Bump Allocation
//
// Region hands out byte ranges from a fixed [beg, end) window:
//
//   - Alloc(count, size, align): zero padding is computed against the region
//     end, then count*size bytes are reserved at the current cursor
//   - no per-object free; the owner of the backing storage reclaims it all
//
// Slab wraps a Region around a typed backing slice so callers get zeroed
// []T blocks instead of offsets.
//
// # Allocators
//
//   - Heap: the default, backed by make; Free is left to the GC
//   - Fixed: reserves chunk and pair pools once and serves loads from them
//     until exhausted (the harness' fixed-buffer mode)
//   - Limited: wraps another allocator with a byte budget
//
// # Usage Example
//
//	a := alloc.NewFixed(1024, 8192)
//	doc, err := scene.LoadWithOptions(src, scene.Options{Allocator: a})
//	if err != nil {
//	    return err
//	}
//	defer doc.Release(a)
//
// # Thread Safety
//
// Nothing here is thread-safe. A single allocator shared by concurrent loads
// must be synchronized by the caller.
package alloc
