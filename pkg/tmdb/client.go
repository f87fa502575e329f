package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"

// List identifies a predefined movie list endpoint.
type List string

// Predefined movie lists.
const (
	ListTrending   List = "trending"
	ListNowPlaying List = "now_playing"
	ListPopular    List = "popular"
	ListTopRated   List = "top_rated"
	ListUpcoming   List = "upcoming"
)

func (l List) path() string {
	if l == ListTrending {
		return "/3/trending/movie/day"
	}
	return "/3/movie/" + string(l)
}

// Client is a TMDB API v3 client using bearer token authentication.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	defaults   Options
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithDefaults sets the default region/language/adult options merged into
// every call that doesn't override them.
func WithDefaults(defaults Options) Option {
	return func(c *Client) {
		c.defaults = defaults
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// NewClient creates a new TMDB client.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MovieDetails fetches movie metadata by TMDB ID.
func (c *Client) MovieDetails(ctx context.Context, id int) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, "/3/movie/"+strconv.Itoa(id), c.detailValues(), &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// MovieCredits fetches cast and crew for a movie.
func (c *Client) MovieCredits(ctx context.Context, id int) (*Credits, error) {
	var credits Credits
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d/credits", id), c.detailValues(), &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// MovieVideos fetches trailers and clips for a movie.
func (c *Client) MovieVideos(ctx context.Context, id int) (*VideoList, error) {
	var videos VideoList
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d/videos", id), c.detailValues(), &videos); err != nil {
		return nil, err
	}
	return &videos, nil
}

// MovieKeywords fetches keyword tags for a movie.
func (c *Client) MovieKeywords(ctx context.Context, id int) (*KeywordList, error) {
	var keywords KeywordList
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d/keywords", id), nil, &keywords); err != nil {
		return nil, err
	}
	return &keywords, nil
}

// PersonDetails fetches person metadata by TMDB ID.
func (c *Client) PersonDetails(ctx context.Context, id int) (*Person, error) {
	var person Person
	if err := c.get(ctx, "/3/person/"+strconv.Itoa(id), c.detailValues(), &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// PopularPeople fetches one page of the popular people list.
func (c *Client) PopularPeople(ctx context.Context, opts Options) (*PersonPage, error) {
	var page PersonPage
	if err := c.get(ctx, "/3/person/popular", opts.values(c.defaults), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// PersonCombinedCredits fetches a person's movie and TV credits in one call.
func (c *Client) PersonCombinedCredits(ctx context.Context, id int) (*CombinedCredits, error) {
	var credits CombinedCredits
	if err := c.get(ctx, fmt.Sprintf("/3/person/%d/combined_credits", id), c.detailValues(), &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// Genres fetches the full movie genre list.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/3/genre/movie/list", c.detailValues(), &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// SearchMovies searches movies by free text.
func (c *Client) SearchMovies(ctx context.Context, query string, opts Options) (*MoviePage, error) {
	v := opts.values(c.defaults)
	v.Set("query", query)
	var page MoviePage
	if err := c.get(ctx, "/3/search/movie", v, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchPeople searches people by free text.
func (c *Client) SearchPeople(ctx context.Context, query string, opts Options) (*PersonPage, error) {
	v := opts.values(c.defaults)
	v.Set("query", query)
	var page PersonPage
	if err := c.get(ctx, "/3/search/person", v, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchKeywords searches keyword tags by free text.
func (c *Client) SearchKeywords(ctx context.Context, query string, opts Options) (*KeywordPage, error) {
	v := opts.values(c.defaults)
	v.Set("query", query)
	var page KeywordPage
	if err := c.get(ctx, "/3/search/keyword", v, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DiscoverMovies runs a filtered discover query. The params carry the filter
// dimensions (genres, cast, dates...); opts carry the universal options.
func (c *Client) DiscoverMovies(ctx context.Context, params url.Values, opts Options) (*MoviePage, error) {
	v := opts.values(c.defaults)
	if v.Get("sort_by") == "" {
		v.Set("sort_by", "popularity.desc")
	}
	for key, vals := range params {
		for _, val := range vals {
			v.Set(key, val)
		}
	}
	var page MoviePage
	if err := c.get(ctx, "/3/discover/movie", v, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MovieList fetches one page of a predefined list (trending, popular, ...).
func (c *Client) MovieList(ctx context.Context, list List, opts Options) (*MoviePage, error) {
	var page MoviePage
	if err := c.get(ctx, list.path(), opts.values(c.defaults), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// detailValues returns the query values for single-entity calls, which only
// honor the language default.
func (c *Client) detailValues() url.Values {
	if c.defaults.Language == "" {
		return nil
	}
	v := url.Values{}
	v.Set("language", c.defaults.Language)
	return v
}

// get performs an authenticated GET and decodes the JSON response into dest.
func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	start := time.Now()

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &APIError{Message: "create request failed", cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "catalog unreachable", cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		var body apiErrorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil && body.StatusMessage != "" {
			apiErr.Message = body.StatusMessage
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &APIError{Message: "decode response failed", cause: err}
	}

	if c.log != nil {
		c.log.Debug("catalog call", "path", path, "duration_ms", time.Since(start).Milliseconds())
	}
	return nil
}
