package catalog

// Mood and era names from the caller's preference model resolve to keyword id
// lists and year ranges here, before criteria building. Keyword ids are TMDB
// keyword tags.
var moodKeywords = map[string][]int{
	"feel-good":    {10683, 6054},  // coming of age, friendship
	"romantic":     {9673, 9799},   // love, romantic comedy
	"dark":         {4565, 10714},  // dystopia, serial killer
	"mind-bending": {4379, 156395}, // time travel, nonlinear timeline
	"adrenaline":   {10051, 9748},  // heist, revenge
	"scary":        {12377, 162846}, // zombie, ghost
	"epic":         {6917, 818},    // epic, based on novel
	"tearjerker":   {6054, 15009},  // friendship, tragedy
}

var eraYears = map[string]IntRange{
	"golden-age": {Min: 1930, Max: 1959},
	"60s":        {Min: 1960, Max: 1969},
	"70s":        {Min: 1970, Max: 1979},
	"80s":        {Min: 1980, Max: 1989},
	"90s":        {Min: 1990, Max: 1999},
	"2000s":      {Min: 2000, Max: 2009},
	"2010s":      {Min: 2010, Max: 2019},
	"modern":     {Min: 2010, Max: 2029},
}

// resolveMoods maps mood names to their keyword ids, dropping unknown names.
func resolveMoods(moods []string) []int {
	var ids []int
	for _, mood := range moods {
		ids = append(ids, moodKeywords[mood]...)
	}
	return ids
}

// resolveEra maps an era name to its year range, nil for unknown names.
func resolveEra(era string) *IntRange {
	r, ok := eraYears[era]
	if !ok {
		return nil
	}
	return &r
}
