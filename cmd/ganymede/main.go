// Ganymede is a content safety pipeline for user-generated content.
//
// It provides three stateless components behind one HTTP API and CLI:
//   - Text sanitization with leveled attack-pattern stripping
//   - Content moderation with a violation taxonomy and 0-100 scoring
//   - Fake profile analysis with weighted multi-signal suspicion scoring
//
// Usage:
//
//	# Start the HTTP server with default configuration
//	ganymede run
//
//	# Start with custom configuration file
//	ganymede run --config /path/to/config.yaml
//
//	# Sanitize a string at the strict level
//	ganymede sanitize --level strict "<script>alert(1)</script>hi"
//
//	# Moderate a message
//	ganymede moderate "check out my insta"
//
//	# Validate a display name
//	ganymede moderate name "John Smith"
//
//	# Analyze a profile described in a JSON file
//	ganymede analyze --file profile.json
//
//	# Show version information
//	ganymede version
//
// For complete documentation, see: https://github.com/mercator-hq/ganymede
package main

func main() {
	Execute()
}
