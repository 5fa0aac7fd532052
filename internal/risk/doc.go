// Package risk flags mentions warranting human review.
//
// A mention triggers an alert on a high reply:like ratio, negative sentiment
// with high visibility, or conspiracy-keyword matches. Alerts dedup by
// author+date with first-seen-wins semantics.
package risk
