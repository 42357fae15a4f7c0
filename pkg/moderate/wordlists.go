package moderate

// Built-in term lists. These are the fixed defaults; a YAML overlay can
// extend (never shrink) them at runtime, see overlay.go.

// defaultProfanity is the profanity word set. Matching is whole-word after
// lowercasing and punctuation stripping, plus a leet-normalized re-test.
var defaultProfanity = []string{
	"fuck", "fucking", "fucker", "motherfucker",
	"shit", "bullshit", "shitty",
	"bitch", "bitches",
	"asshole", "arsehole", "jackass", "dumbass",
	"bastard", "cunt", "twat", "wanker", "prick",
	"dick", "dickhead", "cock", "cocksucker",
	"pussy", "whore", "slut", "skank",
	"fag", "faggot", "dyke",
	"nigger", "nigga",
	"retard", "retarded",
	"piss", "tits",
	"douche", "douchebag",
}

// leetTable maps leet-speak substitutions back to letters. This is the only
// obfuscation-defeat mechanism: a fixed substitution table, deliberately not
// a fuzzy or edit-distance matcher.
var leetTable = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'$': 's',
	'@': 'a',
	'€': 'e',
}

// defaultSpamPatterns are matched as case-insensitive substrings.
var defaultSpamPatterns = []string{
	// URLs and link bait
	"http://", "https://", "www.", ".com/", "bit.ly", "tinyurl",
	"click here", "link in bio", "check out my",

	// Social handle markers
	"follow me", "add me on", "snapchat", "snap me", "my insta",
	"instagram.com", "onlyfans", "telegram", "whatsapp me", "kik me",

	// Payment apps and money spam
	"cashapp", "cash app", "venmo", "paypal", "zelle",
	"send money", "sugar daddy", "sugar baby",
	"bitcoin", "crypto investment", "forex",

	// Canned spam phrases
	"make money fast", "work from home", "earn extra cash",
	"limited time offer", "act now", "free gift", "you have won",
	"congratulations you", "claim your prize", "risk free",
	"double your", "guaranteed income",
}

// emojiSpamThreshold is the emoji count above which text is flagged as spam
// regardless of pattern matches.
const emojiSpamThreshold = 10

// streetSuffixes terminate the street-address pattern ("123 Main Street").
var streetSuffixes = []string{
	"street", "st", "avenue", "ave", "road", "rd", "boulevard", "blvd",
	"lane", "ln", "drive", "dr", "court", "ct", "circle", "cir",
	"place", "pl", "way", "terrace", "ter", "parkway", "pkwy",
}

// defaultForbiddenNameTerms are rejected as substrings of the space-stripped
// lowercase name. The list covers sexual, scam, drug and fake-identity terms
// that have no place in a display name.
var defaultForbiddenNameTerms = []string{
	// Sexual
	"sex", "sexy", "xxx", "porn", "nude", "naked", "escort", "hooker",
	"onlyfans", "fetish", "horny",

	// Scam / payment
	"cashapp", "venmo", "paypal", "bitcoin", "crypto", "sugardaddy",
	"sugarbaby", "sellpic", "freemoney",

	// Drugs
	"weed", "cocaine", "heroin", "meth", "mdma", "xanax", "dealer",
	"drugs",

	// Fake identity
	"admin", "support", "official", "verified", "moderator", "system",
	"fake", "test", "bot", "scam", "spam",
}
