package notifier

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pfrederiksen/dci-showbot/internal/faults"
)

const (
	redditWWWBase   = "https://www.reddit.com"
	redditOAuthBase = "https://oauth.reddit.com"

	redditAppID     = "AOBwXdKkVWSjTg"
	redditUsername  = "DrumCorpsBot"
	redditUserAgent = "dci-showbot/1.0 (by /u/DrumCorpsBot)"

	redditTimeout = 10 * time.Second
)

// RedditPublisher submits self-posts to a subreddit as a script app.
type RedditPublisher struct {
	httpClient *http.Client

	wwwBase   string
	oauthBase string

	password  string
	secret    string
	subreddit string
}

// NewRedditPublisher creates a Reddit publisher for the given subreddit
// using the operator-supplied script-app password and secret.
func NewRedditPublisher(password, secret, subreddit string) (*RedditPublisher, error) {
	if password == "" || secret == "" {
		return nil, faults.New(faults.Credential, "reddit password and/or secret not set")
	}
	return newRedditPublisher(redditWWWBase, redditOAuthBase, password, secret, subreddit), nil
}

func newRedditPublisher(wwwBase, oauthBase, password, secret, subreddit string) *RedditPublisher {
	return &RedditPublisher{
		httpClient: &http.Client{
			Timeout: redditTimeout,
		},
		wwwBase:   wwwBase,
		oauthBase: oauthBase,
		password:  password,
		secret:    secret,
		subreddit: subreddit,
	}
}

// Submit authorizes and posts a self-post. The body is expected to be
// transport-encoded already.
func (p *RedditPublisher) Submit(title, body string) error {
	token, err := p.authorize()
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("kind", "self")
	form.Set("sr", p.subreddit)
	form.Set("title", title)
	form.Set("text", body)

	req, err := http.NewRequest("POST", p.oauthBase+"/api/submit", strings.NewReader(form.Encode()))
	if err != nil {
		return faults.Errorf(faults.Transport, "creating submit request: %w", err)
	}
	req.Header.Set("Authorization", "bearer "+token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return faults.Errorf(faults.Transport, "submitting post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return faults.Errorf(faults.Transport, "reading submit response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return faults.Errorf(faults.Transport, "reddit submit error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		JSON struct {
			Errors [][]interface{} `json:"errors"`
		} `json:"json"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return faults.Errorf(faults.Transport, "parsing submit response: %w", err)
	}
	if len(result.JSON.Errors) > 0 {
		return faults.Errorf(faults.Transport, "reddit submit rejected: %v", result.JSON.Errors)
	}

	return nil
}

// authorize exchanges the script-app credentials for a bearer token.
func (p *RedditPublisher) authorize() (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", redditUsername)
	form.Set("password", p.password)

	req, err := http.NewRequest("POST", p.wwwBase+"/api/v1/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", faults.Errorf(faults.Transport, "creating token request: %w", err)
	}
	req.SetBasicAuth(redditAppID, p.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", faults.Errorf(faults.Transport, "requesting token: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", faults.Errorf(faults.Transport, "reading token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", faults.Errorf(faults.Transport, "reddit token error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", faults.Errorf(faults.Transport, "parsing token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", faults.Errorf(faults.Credential, "reddit refused credentials: %s", result.Error)
	}

	return result.AccessToken, nil
}

// String identifies the backend in logs.
func (p *RedditPublisher) String() string {
	return fmt.Sprintf("reddit(/r/%s)", p.subreddit)
}
