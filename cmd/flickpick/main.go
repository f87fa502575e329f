// Command flickpick is a CLI for the flickpick discovery engine: cached TMDB
// access, filtered discovery with progressive fallback, random picks, and
// collection insights.
package main

func main() {
	Execute()
}
