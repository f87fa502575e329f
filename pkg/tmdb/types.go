// Package tmdb provides a client for The Movie Database API v3.
package tmdb

import "strconv"

// Genre is a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is the response from GET /movie/{id}.
type Movie struct {
	ID            int      `json:"id"`
	IMDBID        string   `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title"`
	Overview      string   `json:"overview"`
	Tagline       string   `json:"tagline"`
	ReleaseDate   string   `json:"release_date"` // "2024-03-01"
	PosterPath    string   `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath  string   `json:"backdrop_path"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	Popularity    float64  `json:"popularity"`
	Runtime       int      `json:"runtime"` // minutes
	Genres        []Genre  `json:"genres"`
	OriginCountry []string `json:"origin_country"`

	// Populated by the engine's detail fan-out, not by the bare detail call.
	Videos  []Video      `json:"videos,omitempty"`
	Cast    []CastMember `json:"cast,omitempty"`
	Crew    []CrewMember `json:"crew,omitempty"`
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (m *Movie) PosterURL(size string) string {
	if m.PosterPath == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/" + size + m.PosterPath
}

// MovieListItem is a single movie in a paginated list response. List endpoints
// return a reduced shape: genre ids instead of genre objects, no runtime.
type MovieListItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	GenreIDs    []int   `json:"genre_ids"`
}

// Year extracts the year from ReleaseDate.
func (m *MovieListItem) Year() int {
	return yearOf(m.ReleaseDate)
}

// MoviePage is one page of a paginated movie list.
type MoviePage struct {
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
	Results      []MovieListItem `json:"results"`
}

// CastMember is a single cast entry in movie credits.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path"`
}

// CrewMember is a single crew entry in movie credits.
type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

// Credits is the response from GET /movie/{id}/credits.
type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is a trailer, teaser or clip attached to a movie.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"` // YouTube video key
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// VideoList is the response from GET /movie/{id}/videos.
type VideoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// Keyword is a TMDB keyword tag.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// KeywordList is the response from GET /movie/{id}/keywords.
type KeywordList struct {
	ID       int       `json:"id"`
	Keywords []Keyword `json:"keywords"`
}

// KeywordPage is one page of keyword search results.
type KeywordPage struct {
	Page         int       `json:"page"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
	Results      []Keyword `json:"results"`
}

// Person is the response from GET /person/{id}.
type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography"`
	Birthday           string  `json:"birthday"`
	Deathday           string  `json:"deathday"`
	PlaceOfBirth       string  `json:"place_of_birth"`
	ProfilePath        string  `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// PersonListItem is a single person in a paginated list response.
type PersonListItem struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        string  `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// PersonPage is one page of a paginated person list.
type PersonPage struct {
	Page         int              `json:"page"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
	Results      []PersonListItem `json:"results"`
}

// PersonCastCredit is one acting credit in a person's combined credits.
type PersonCastCredit struct {
	ID          int     `json:"id"`
	MediaType   string  `json:"media_type"`
	Title       string  `json:"title,omitempty"` // movies
	Name        string  `json:"name,omitempty"`  // TV
	Character   string  `json:"character"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Popularity  float64 `json:"popularity"`
}

// PersonCrewCredit is one crew credit in a person's combined credits.
type PersonCrewCredit struct {
	ID          int     `json:"id"`
	MediaType   string  `json:"media_type"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Popularity  float64 `json:"popularity"`
}

// CombinedCredits is the response from GET /person/{id}/combined_credits.
type CombinedCredits struct {
	ID   int                `json:"id"`
	Cast []PersonCastCredit `json:"cast"`
	Crew []PersonCrewCredit `json:"crew"`
}

// genreListResponse is the response from GET /genre/movie/list.
type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

func yearOf(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
