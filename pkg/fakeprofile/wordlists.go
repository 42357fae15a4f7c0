package fakeprofile

// genericBioPhrases are canned bio phrases. Three or more present at once
// marks the bio as generic.
var genericBioPhrases = []string{
	"love to laugh",
	"live life to the fullest",
	"looking for my soulmate",
	"just ask",
	"love to travel",
	"work hard play hard",
	"no drama",
	"here for a good time",
	"fluent in sarcasm",
	"partner in crime",
	"love long walks",
	"new to this",
}

// bioLinkPatterns are social-handle and URL markers. The first match is
// enough; scanning stops there.
var bioLinkPatterns = []string{
	"http://", "https://", "www.",
	"instagram", "insta:", "ig:", "snapchat", "snap:", "sc:",
	"onlyfans", "telegram", "t.me/", "kik:", "whatsapp",
	"follow me", "add me", "dm me",
}

// bioPaymentKeywords mark money-solicitation bios. The first match is
// enough; scanning stops there.
var bioPaymentKeywords = []string{
	"cashapp", "cash app", "venmo", "paypal", "zelle",
	"bitcoin", "btc", "crypto", "invest",
	"sugar daddy", "sugar baby", "spoil me", "send money",
}

// suspiciousNameKeywords are throwaway-account markers tested as substrings
// of the lowercase name. The first match short-circuits the remaining
// keyword checks.
var suspiciousNameKeywords = []string{
	"fake", "test", "bot", "scam", "spam",
}

// botCharset is the character set whose density marks bot-generated text.
const botCharset = "!@#$%^&*()"
