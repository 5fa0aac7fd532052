package sentiment

// Keywords holds the configured positive and negative keyword sets. Entries
// are literal phrases or single tokens, matched case-insensitively.
type Keywords struct {
	Positive []string
	Negative []string
}

// DefaultMentionKeywords is the keyword set used for raw API mentions.
func DefaultMentionKeywords() Keywords {
	return Keywords{
		Positive: []string{
			"great", "amazing", "excellent", "love", "brilliant", "innovative", "solve",
			"solving", "solution", "hero", "impressive", "breakthrough", "future",
			"real deal", "incredible", "fantastic", "support", "proud", "exciting",
			"hope", "helpful", "progress", "success", "positive", "good", "awesome",
			"transformative", "revolutionary", "game changer", "life saving",
		},
		Negative: []string{
			"scam", "fraud", "dangerous", "flood", "drought", "blame", "held accountable",
			"conspiracy", "hoax", "unproven", "destroy", "damage", "harm", "risk",
			"lawsuit", "corrupt", "chemtrail", "poison", "terrible", "awful", "worst",
			"reckless", "irresponsible", "fake", "lie", "lies", "grift", "grifter",
			"catastrophe", "disaster", "toxic", "threat", "threatening",
		},
	}
}

// DefaultPostKeywords is the keyword set used for the posts pipeline. The
// negative entries double as the risk-indicative keyword list.
func DefaultPostKeywords() Keywords {
	return Keywords{
		Positive: []string{
			"love", "recommend", "amazing", "best", "great", "excellent",
			"incredible", "fantastic", "impressed", "helpful", "brilliant",
		},
		Negative: []string{
			"scam", "fraud", "lawsuit", "complaint", "ripped off", "terrible",
			"sued", "criminal", "ponzi", "ripoff", "avoid", "worst", "fake",
		},
	}
}
