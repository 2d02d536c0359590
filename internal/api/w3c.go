package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"woodo-statistic/internal/config"
	"woodo-statistic/internal/constants"
	"woodo-statistic/internal/domain"

	"github.com/valyala/fasthttp"
)

// W3CClient talks to the W3Champions website backend. It does not retry;
// callers decide how to degrade when a call fails.
type W3CClient struct {
	baseURL string
	gateway int
	client  *fasthttp.Client
}

func NewW3CClient(cfg *config.Config) *W3CClient {
	return newW3CClient(cfg.W3CBaseURL, cfg.Gateway, &fasthttp.Client{
		MaxConnsPerHost:     constants.UpstreamMaxConnsPerHost,
		ReadTimeout:         constants.ExternalAPITimeout,
		WriteTimeout:        constants.ExternalAPITimeout,
		MaxIdleConnDuration: constants.UpstreamMaxIdleConnDur,
	})
}

func newW3CClient(baseURL string, gateway int, hc *fasthttp.Client) *W3CClient {
	return &W3CClient{baseURL: baseURL, gateway: gateway, client: hc}
}

// GetOngoingMatch returns nil without error when the player is not in a match.
func (c *W3CClient) GetOngoingMatch(ctx context.Context, battleTag string) (*OngoingMatchResponse, error) {
	path := fmt.Sprintf("/matches/ongoing/%s", url.PathEscape(battleTag))
	return doRequest[OngoingMatchResponse](ctx, c, path)
}

func (c *W3CClient) GetPlayer(ctx context.Context, battleTag string) (*PlayerResponse, error) {
	path := fmt.Sprintf("/players/%s", url.PathEscape(battleTag))
	return doRequest[PlayerResponse](ctx, c, path)
}

func (c *W3CClient) GetRaceStats(ctx context.Context, battleTag string, season int) ([]RaceStatItem, error) {
	path := fmt.Sprintf("/players/%s/race-stats?gateWay=%d&season=%d", url.PathEscape(battleTag), c.gateway, season)
	resp, err := doRequest[[]RaceStatItem](ctx, c, path)
	if err != nil || resp == nil {
		return nil, err
	}
	return *resp, nil
}

func (c *W3CClient) GetHeroStats(ctx context.Context, battleTag string, season int) (*HeroStatsResponse, error) {
	path := fmt.Sprintf("/player-stats/%s/hero-on-map-versus-race?season=%d", url.PathEscape(battleTag), season)
	return doRequest[HeroStatsResponse](ctx, c, path)
}

// SearchMatches returns one page of raw match records, most recent first.
func (c *W3CClient) SearchMatches(ctx context.Context, battleTag string, season, offset, pageSize int) ([]RawMatch, error) {
	q := url.Values{}
	q.Set("playerId", battleTag)
	q.Set("gateway", fmt.Sprint(c.gateway))
	q.Set("offset", fmt.Sprint(offset))
	q.Set("pageSize", fmt.Sprint(pageSize))
	q.Set("season", fmt.Sprint(season))

	resp, err := doRequest[MatchSearchResponse](ctx, c, "/matches/search?"+q.Encode())
	if err != nil || resp == nil {
		return nil, err
	}
	return resp.Matches, nil
}

func doRequest[T any](ctx context.Context, client *W3CClient, path string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(client.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, path, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, path, err)
		}
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNoContent:
		return nil, nil
	case fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	default:
		return nil, fmt.Errorf("%w: status %d for %s", domain.ErrUpstream, resp.StatusCode(), path)
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrUpstream, path, err)
	}
	return &result, nil
}
