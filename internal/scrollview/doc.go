// Package scrollview provides the scrollable container handle that visibility
// observers measure against.
//
// A Viewport exposes its current visible region in content coordinates (rows
// from the top of the scrolled content) and lets observers subscribe to scroll
// and resize changes. Subscriptions are explicit resources: every call to
// Observe returns a Subscription that must be released when the observer is
// detached, so repeated attach/detach cycles never accumulate listeners.
//
// Pane is the in-memory implementation used by the terminal UI and by tests.
// It has no dependency on a real terminal.
package scrollview
