// Package sentiment implements rule-based sentiment classification.
//
// Two policies exist behind the Classifier capability: Magnitude (raw API
// mentions, confidence from winning keyword count) and Ratio (posts pipeline,
// polarity from the positive/negative balance). Both are pure functions of
// the text and the configured keyword sets.
package sentiment
