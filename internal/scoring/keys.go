package scoring

import "github.com/risusan11/eikenhub/internal/model"

// answerKeys maps each level to its question-id → expected-answer table.
// Comparison is case-sensitive; both sides are trimmed at compare time.
var answerKeys = map[model.Level]map[string]string{
	model.Level5: {
		// Part 1 – Vocabulary
		"q1": "play", "q2": "book", "q3": "lives", "q4": "are", "q5": "listens",
		// Part 2 – Grammar
		"q6": "to be", "q7": "bigger", "q8": "many", "q9": "speaks", "q10": "eat",
		// Part 3 – Conversation
		"q11": "When", "q12": "at", "q13": "saw", "q14": "my", "q15": "play",
		// Part 4 – Reading
		"q16": "In Osaka", "q17": "two", "q18": "every morning", "q19": "dogs", "q20": "Anna",
		// Part 5 – Listening
		"q21": "is", "q22": "like", "q23": "school", "q24": "on", "q25": "run",
	},
	model.Level4: {
		"q1": "eats", "q2": "reading", "q3": "more interesting", "q4": "went", "q5": "play",
		"q6": "kind", "q7": "finishes", "q8": "books", "q9": "have", "q10": "goes",
		"q11": "What time", "q12": "at", "q13": "plays", "q14": "two", "q15": "is",
		"q16": "Let's", "q17": "is watching", "q18": "to go", "q19": "since", "q20": "next to",
		"q21": "the guitar", "q22": "two hours", "q23": "join a band",
		"q24": "cooking", "q25": "every Sunday", "q26": "a chef",
		"q27": "by bus", "q28": "soccer", "q29": "a teacher", "q30": "every day",
	},
	model.Level3: {
		"q1": "goes", "q2": "some", "q3": "more interesting", "q4": "watched", "q5": "cooking",
		"q6": "I'd like some water", "q7": "a lot of", "q8": "to eat", "q9": "was late",
		"q10": "has studied",
		"q11": "English", "q12": "By train", "q13": "Sure", "q14": "To the zoo", "q15": "See you",
		"q16": "three times a week", "q17": "at the gym", "q18": "join the school team",
		"q19": "makes breakfast", "q20": "new dishes", "q21": "by watching videos",
		"q22": "on weekends", "q23": "talking to customers", "q24": "work full-time",
	},
	model.LevelPre2: {
		"q1": "release", "q2": "interest", "q3": "charge", "q4": "encouraged", "q5": "effective",
		"q6": "a holiday", "q7": "improve", "q8": "allowed", "q9": "managed", "q10": "reading",
		"q11": "rains", "q12": "to help", "q13": "more", "q14": "been", "q15": "takes",
		"q16": "when", "q17": "where", "q18": "among", "q19": "to use", "q20": "must not",
		"q21": "Yes, that would be great", "q22": "In front of the station",
		"q23": "It was amazing", "q24": "Yes, I listen to her songs", "q25": "See you",
		"q26": "two years ago", "q27": "by watching online lessons",
		"q28": "He played at an event", "q29": "cleans cages and feeds animals",
		"q30": "adopt animals", "q31": "on weekends",
		"q32": "visiting museums", "q33": "history and technology", "q34": "five",
	},
	model.Level2: {
		"q1": "identify", "q2": "introduce", "q3": "positive", "q4": "spectacular", "q5": "increased",
		"q6": "improve", "q7": "encourages", "q8": "delayed", "q9": "consider", "q10": "find",
		"q11": "rains", "q12": "watching", "q13": "take effect", "q14": "reading", "q15": "gets",
		"q16": "impressive", "q17": "how", "q18": "for", "q19": "ate", "q20": "because of",
		"q21": "Not at all", "q22": "Sure, no problem", "q23": "Three times a week",
		"q24": "She’s in the library", "q25": "You're welcome",
		"q26": "when she was ten", "q27": "teaches coding",
		"q28": "to reduce traffic", "q29": "bike lanes",
		"q30": "a doctor", "q31": "biology", "q32": "to understand patients better",
	},
	model.LevelPre1: {
		"q1": "groundbreaking", "q2": "sway", "q3": "violations", "q4": "jeopardize", "q5": "insulate",
		"q6": "eliminate", "q7": "credibility", "q8": "utilize", "q9": "vulnerable", "q10": "implement",
		"q11": "notable", "q12": "revise", "q13": "disrupt", "q14": "misleading", "q15": "endangered",
		"q16": "evaluate", "q17": "resolve", "q18": "cause", "q19": "shortage", "q20": "concerned",
		"q21": "promote", "q22": "foster", "q23": "transformed", "q24": "significant", "q25": "expanded",
		"q26": "weaken", "q27": "interaction", "q28": "maintain",
		"q29": "It absorbs water from the air",
		"q30": "in deserts", "q31": "to cool the environment",
		"q32": "lower energy use",
		"q33": "they make risky decisions",
		"q34": "to solve complex problems",
	},
	model.Level1: {
		"q1": "inexorable", "q2": "juxtapose", "q3": "convoluted", "q4": "exacerbate", "q5": "conundrum",
		"q6": "specious", "q7": "paradigmatic", "q8": "scathing", "q9": "withstand", "q10": "prescient",
		"q11": "deplorable", "q12": "enigmatic", "q13": "decimate", "q14": "fluid", "q15": "unanimous",
		"q16": "tact", "q17": "opaque", "q18": "combat", "q19": "lyrical", "q20": "untenable",
		"q21": "quell", "q22": "meticulous", "q23": "profound", "q24": "imprudent", "q25": "intertwined",
		"q26": "erode", "q27": "cultivate", "q28": "reconcile",
		"q29": "early societies were egalitarian",
		"q30": "that early societies were hierarchical",
		"q31": "machines making moral decisions",
		"q32": "it complicates regulation",
		"q33": "large-scale weather shifts",
		"q34": "interactions are unpredictable",
	},
	model.LevelNaraku: {
		// Vocabulary. The five cloze items reuse ids q26-q28, so the
		// overlapping vocabulary items carry a "vocab" suffix.
		"q1": "intricate", "q2": "pervasive", "q3": "impoverished", "q4": "obfuscatory",
		"q5": "emergent", "q6": "contingent", "q7": "intractable", "q8": "bankrupt",
		"q9": "tenuous", "q10": "trenchant", "q11": "precipitous", "q12": "illusory",
		"q13": "spontaneous", "q14": "speculative", "q15": "salient", "q16": "untenable",
		"q17": "paradigmatic", "q18": "opaque", "q19": "stochastic", "q20": "radical",
		"q21": "erode", "q22": "exceptional", "q23": "enigmatic", "q24": "profound",
		"q25": "volatile", "q26vocab": "fallacious", "q27vocab": "serendipitous",
		"q28vocab": "prescient", "q29vocab": "tenuous", "q30vocab": "superficial",
		// Cloze
		"q26": "induce", "q27": "foster", "q28": "reconcile",
		// Reading
		"q29": "ancient political flexibility",
		"q30": "the inevitability of hierarchy",
		"q31": "AI moral agency",
		"q32": "it may involve networks of actors",
		"q33": "nonlinear interactions",
		"q34": "uneven data collection",
	},
}

// essayLevels marks the levels whose tests include an AI-graded essay.
var essayLevels = map[model.Level]bool{
	model.Level3:      true,
	model.LevelPre2:   true,
	model.Level2:      true,
	model.LevelPre1:   true,
	model.Level1:      true,
	model.LevelNaraku: true,
}
