package practice

// Sample questions served when live content cannot fill a practice run.
// Distractors are deliberately unrelated to the sentence so that the
// correct answer is never in doubt.

type fallbackItem struct {
	prompt      string
	answer      string
	distractors []string
}

type bucket struct {
	name string

	// fragments are matched case-insensitively against category names.
	fragments []string
	items     []fallbackItem
}

var generalBucket = bucket{
	name: "General",
	items: []fallbackItem{
		{"I read a good _____ last night.", "book", []string{"glacier", "asteroid", "walrus", "cement"}},
		{"Please close the _____ when you leave.", "door", []string{"equation", "volcano", "satellite", "harbor"}},
	},
}

var buckets = []bucket{
	{
		name:      "Everyday Life",
		fragments: []string{"everyday life"},
		items: []fallbackItem{
			{"I brush my _____ every morning before breakfast.", "teeth", []string{"volcano", "galaxy", "parliament", "submarine"}},
			{"We buy fresh bread at the _____ on the corner.", "bakery", []string{"glacier", "telescope", "orchestra", "hurricane"}},
			{"She turns off the _____ before going to sleep.", "light", []string{"desert", "penguin", "trumpet", "satellite"}},
		},
	},
	{
		name:      "People and Relationships",
		fragments: []string{"people", "relationship"},
		items: []fallbackItem{
			{"My _____ and I grew up in the same house.", "brother", []string{"carrot", "umbrella", "engine", "pyramid"}},
			{"They invited all their _____ to the wedding.", "friends", []string{"tractors", "meteors", "cabbages", "bicycles"}},
			{"A good _____ always listens carefully.", "partner", []string{"spoon", "thunder", "cactus", "keyboard"}},
		},
	},
	{
		name:      "Work and Education",
		fragments: []string{"work", "education"},
		items: []fallbackItem{
			{"The _____ explained the lesson to the class.", "teacher", []string{"mushroom", "lighthouse", "saxophone", "iceberg"}},
			{"I sent the report to my _____ this morning.", "manager", []string{"dolphin", "pineapple", "volcano", "chimney"}},
			{"Students must finish their _____ before Friday.", "homework", []string{"waterfall", "kangaroo", "lantern", "pepper"}},
		},
	},
	{
		name:      "Health and Wellness",
		fragments: []string{"health", "well"},
		items: []fallbackItem{
			{"You should drink more _____ when you exercise.", "water", []string{"gravel", "paint", "velvet", "copper"}},
			{"The _____ gave me medicine for my cough.", "doctor", []string{"giraffe", "anchor", "violin", "comet"}},
		},
	},
	{
		name:      "Travel and Leisure",
		fragments: []string{"travel", "leisure"},
		items: []fallbackItem{
			{"We bought a _____ for the evening train.", "ticket", []string{"kidney", "hammer", "spinach", "tornado"}},
			{"Our hotel room has a view of the _____.", "beach", []string{"invoice", "eyebrow", "stapler", "algebra"}},
			{"Don't forget your _____ at the airport.", "passport", []string{"broccoli", "wrench", "molecule", "sneeze"}},
		},
	},
	{
		name:      "Environment and Nature",
		fragments: []string{"environment", "nature"},
		items: []fallbackItem{
			{"The _____ shines brightly in the summer sky.", "sun", []string{"sandwich", "printer", "elbow", "receipt"}},
			{"Many birds build nests in the tall _____.", "trees", []string{"invoices", "spoons", "batteries", "socks"}},
			{"We must protect the _____ from plastic pollution.", "ocean", []string{"wallet", "pencil", "hiccup", "toaster"}},
		},
	},
}

// Longer sentences and rarer words appended for MEDIUM (first item) and
// HARD (both items).
var harderItems = []fallbackItem{
	{"Despite the heavy rain, the festival _____ as planned.", "continued", []string{"evaporated", "hibernated", "fermented", "calcified"}},
	{"The committee's _____ decision surprised even its most loyal supporters.", "unanimous", []string{"carnivorous", "subterranean", "photosynthetic", "amphibious"}},
}
