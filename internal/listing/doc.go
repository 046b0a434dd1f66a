// Package listing decides what an incrementally loaded list renders and when
// it asks for more.
//
// The rendering decision is a pure function of a ResultSet:
//   - every loaded item becomes a real entry keyed by the item's own key, in
//     load order;
//   - while the first page is in flight (pending with no known total) eight
//     placeholder entries keyed by their position follow the real entries;
//   - a sentinel always closes the list.
//
// Controller wires the sentinel to a waypoint on the host's viewport so that
// each time the sentinel scrolls into view the caller's fetch function runs.
// Controller never de-duplicates those calls: overlapping fetches are the
// caller's concern.
package listing
