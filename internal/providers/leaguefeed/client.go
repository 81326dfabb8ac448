package leaguefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/providers"
)

// Config controls how the client reaches the upstream schedule API.
type Config struct {
	BaseURL    string
	APIKey     string
	League     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches a season schedule from the upstream API and maps it to
// domain games.
type Client struct {
	baseURL    string
	apiKey     string
	league     string
	httpClient httpDoer
	maxPages   int
}

// NewClient constructs a schedule feed client with the provided configuration.
func NewClient(cfg Config) *Client {
	league := cfg.League
	if league == "" {
		league = defaultLeague
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		league:     league,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchSchedule walks the paginated /games endpoint for the given season.
func (c *Client) FetchSchedule(ctx context.Context, season string) ([]domain.Game, error) {
	page := 1
	allGames := make([]domain.Game, 0)

	for {
		req, err := c.buildRequest(ctx, season, page)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			rlErr := rateLimitError(resp)
			resp.Body.Close()
			return nil, rlErr
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var payload scheduleResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
			resp.Body.Close()
			return nil, decodeErr
		}
		resp.Body.Close()

		for _, g := range payload.Data {
			game, err := mapGame(g, c.league, season)
			if err != nil {
				return nil, err
			}
			allGames = append(allGames, game)
		}

		totalPages := payload.Meta.TotalPages
		if totalPages > 0 {
			if page >= totalPages {
				break
			}
		} else {
			if len(payload.Data) == 0 || len(payload.Data) < defaultPerPage {
				break
			}
		}
		if page >= c.maxPages {
			break
		}
		page++
	}

	return allGames, nil
}

func (c *Client) buildRequest(ctx context.Context, season string, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	if season != "" {
		q.Set("seasons[]", season)
	}
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

func rateLimitError(resp *http.Response) *providers.RateLimitError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		Message:    strings.TrimSpace(string(body)),
	}
}

func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
