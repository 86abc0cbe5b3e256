package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WayleX/Beerter/internal/client/models"
	"github.com/WayleX/Beerter/internal/common"
	"github.com/WayleX/Beerter/internal/logging"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// alreadyLikedMsg is what /post_like answers when the like exists.
const alreadyLikedMsg = "Already liked"

// invalidTokenMsg is the marker /verify uses for a rejected token.
const invalidTokenMsg = "Invalid token"

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	timeout    time.Duration
	log        logging.Logger
	requestID  func() string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API at baseURL. timeout bounds each
// call (0 means no bound beyond ctx). log may be nil.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: host is required", baseURL)
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		timeout:    timeout,
		log:        log.With("component", "api"),
		requestID:  uuid.NewString,
	}, nil
}

// call describes one API request.
type call struct {
	method string
	path   string
	// auth: attach the session token; fail with common.ErrNoToken if none.
	auth bool
	// token overrides the session token (used by Verify).
	token string
	body  any
}

// response is a completed exchange with any status.
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// roundTrip performs c and returns the raw response. Only transport
// failures and missing tokens are errors here.
func (s *HTTPClient) roundTrip(ctx context.Context, c call) (*response, error) {
	token := c.token
	if c.auth && token == "" {
		t, ok := s.tokens.Get()
		if !ok {
			return nil, common.ErrNoToken
		}
		token = t
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var body io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, s.baseURL+c.path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	rid := s.requestID()
	req.Header.Set(common.RequestIDHeaderName, rid)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Debug(ctx, "request failed", "method", c.method, "path", c.path, "request_id", rid, logging.Err(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	s.log.Debug(ctx, "request done",
		"method", c.method, "path", c.path, "request_id", rid,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	return &response{status: resp.StatusCode, body: b}, nil
}

// do performs c, maps non-2xx statuses to errors and decodes a 2xx body
// into out when out is not nil.
func (s *HTTPClient) do(ctx context.Context, c call, out any) error {
	resp, err := s.roundTrip(ctx, c)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return mapError(resp)
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", c.method, c.path, err)
	}
	return nil
}

func mapError(resp *response) *APIError {
	msg := extractMessage(resp.body)
	if msg == "" {
		msg = http.StatusText(resp.status)
	}
	return &APIError{Status: resp.status, Message: msg}
}

// extractMessage pulls a human-readable message out of an error body.
// FastAPI validation errors put a list under "detail"; the first entry's
// "msg" is used then.
func extractMessage(body []byte) string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return strings.TrimSpace(string(body))
	}
	for _, key := range []string{"message", "detail", "msg"} {
		raw, ok := m[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		var list []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0].Msg != "" {
			return list[0].Msg
		}
	}
	return ""
}

func reviewPath(prefix, id string) string {
	return prefix + url.PathEscape(id)
}

func (s *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.do(ctx, call{method: http.MethodPost, path: "/register", body: req}, nil)
}

func (s *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := s.do(ctx, call{method: http.MethodPost, path: "/login", body: req}, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", common.ErrNoAccessToken
	}
	return resp.AccessToken, nil
}

// Verify asks the server whether token is still valid.
//
//   - transport failure, 502/503/504, 2xx body that is not an object or
//     a bool → TransportError
//   - any other non-2xx, body false, {"detail":"Invalid token"} → Invalid
//   - body true or an identity object → Valid
func (s *HTTPClient) Verify(ctx context.Context, token string) VerifyResult {
	if token == "" {
		return Invalid{Reason: common.ErrNoToken.Error()}
	}

	resp, err := s.roundTrip(ctx, call{method: http.MethodGet, path: "/verify", token: token})
	if err != nil {
		return TransportError{Err: err}
	}

	if !resp.ok() {
		apiErr := mapError(resp)
		// A gateway error means the auth service was never asked.
		if errors.Is(apiErr, ErrUnavailable) {
			return TransportError{Err: apiErr}
		}
		return Invalid{Reason: apiErr.Message}
	}

	var raw any
	if err := json.Unmarshal(resp.body, &raw); err != nil {
		return TransportError{Err: fmt.Errorf("decode verify response: %w", err)}
	}

	switch v := raw.(type) {
	case bool:
		if !v {
			return Invalid{Reason: invalidTokenMsg}
		}
		return Valid{}
	case map[string]any:
		if detail, _ := v["detail"].(string); detail == invalidTokenMsg {
			return Invalid{Reason: detail}
		}
		return Valid{Identity: identityFrom(v)}
	default:
		return TransportError{Err: fmt.Errorf("unexpected verify response: %s", bytes.TrimSpace(resp.body))}
	}
}

func identityFrom(v map[string]any) models.Identity {
	id := models.Identity{}
	id.Email, _ = v["user_email"].(string)
	id.Nickname, _ = v["nickname"].(string)
	switch uid := v["user_id"].(type) {
	case string:
		id.UserID = uid
	case float64:
		id.UserID = fmt.Sprintf("%.0f", uid)
	}
	return id
}

func (s *HTTPClient) Logout(ctx context.Context) error {
	return s.do(ctx, call{method: http.MethodPost, path: "/logout", auth: true}, nil)
}

func (s *HTTPClient) GetAllBeers(ctx context.Context) ([]models.Beer, error) {
	beers := []models.Beer{}
	if err := s.do(ctx, call{method: http.MethodGet, path: "/get_all_beers"}, &beers); err != nil {
		return nil, err
	}
	return beers, nil
}

func (s *HTTPClient) GetBeerNames(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := s.do(ctx, call{method: http.MethodGet, path: "/beers"}, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *HTTPClient) PostReview(ctx context.Context, r models.NewReview) (*models.Review, error) {
	var out models.Review
	if err := s.do(ctx, call{method: http.MethodPost, path: "/post_review", auth: true, body: r}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HTTPClient) GetReview(ctx context.Context, id string) (*models.Review, error) {
	var out models.Review
	if err := s.do(ctx, call{method: http.MethodGet, path: reviewPath("/get_review/", id), auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HTTPClient) EditReview(ctx context.Context, id string, u models.ReviewUpdate) (*models.Review, error) {
	var out models.Review
	if err := s.do(ctx, call{method: http.MethodPut, path: reviewPath("/edit_review/", id), auth: true, body: u}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HTTPClient) listReviews(ctx context.Context, path string) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.do(ctx, call{method: http.MethodGet, path: path, auth: true}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *HTTPClient) GetReviewsByUser(ctx context.Context) ([]models.Review, error) {
	return s.listReviews(ctx, "/get_reviews_by_user")
}

func (s *HTTPClient) GetRecentReviews(ctx context.Context) ([]models.Review, error) {
	return s.listReviews(ctx, "/get_reviews")
}

func (s *HTTPClient) GetReviewsByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.listReviews(ctx, reviewPath("/get_reviews_by_product/", productID))
}

func (s *HTTPClient) SearchReviews(ctx context.Context, keyword string) ([]models.Review, error) {
	return s.listReviews(ctx, reviewPath("/get_reviews_by_keyword/", keyword))
}

func (s *HTTPClient) GetFeed(ctx context.Context) (*models.Feed, error) {
	var feed models.Feed
	if err := s.do(ctx, call{method: http.MethodGet, path: "/get_feed", auth: true}, &feed); err != nil {
		return nil, err
	}
	if feed.Reviews == nil {
		feed.Reviews = []models.Review{}
	}
	return &feed, nil
}

func (s *HTTPClient) RefreshFeed(ctx context.Context) error {
	return s.do(ctx, call{method: http.MethodPost, path: "/refresh_feed", auth: true}, nil)
}

// Like records a like. A like that already exists counts as success.
func (s *HTTPClient) Like(ctx context.Context, reviewID string) error {
	err := s.do(ctx, call{method: http.MethodPost, path: reviewPath("/post_like/", reviewID), auth: true}, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message == alreadyLikedMsg {
		return nil
	}
	return err
}

func (s *HTTPClient) Unlike(ctx context.Context, reviewID string) error {
	return s.do(ctx, call{method: http.MethodDelete, path: reviewPath("/post_like/", reviewID), auth: true}, nil)
}

func (s *HTTPClient) GetLikes(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := s.do(ctx, call{method: http.MethodGet, path: "/get_likes", auth: true}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
