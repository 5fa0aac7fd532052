// Package scoring implements the engagement, reach, and brand score models.
//
// Two reach notions coexist on purpose: the step-function multiplier feeds
// the composite score, while the weighted ranking reach feeds top-mention
// ordering, alert visibility checks, and the brand score blend.
package scoring
