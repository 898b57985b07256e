package notifier

import (
	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/pfrederiksen/dci-showbot/internal/faults"
)

// tweetLimit is Twitter's character cap.
const tweetLimit = 280

// TwitterPublisher announces show threads on Twitter. Only the post
// title goes out; the lineup tables don't fit a tweet.
type TwitterPublisher struct {
	client *twitter.Client
}

// NewTwitterPublisher creates a Twitter publisher from OAuth1 credentials.
func NewTwitterPublisher(apiKey, apiSecret, accessToken, accessSecret string) (*TwitterPublisher, error) {
	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, faults.New(faults.Credential, "missing required Twitter credentials")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterPublisher{client: twitter.NewClient(httpClient)}, nil
}

// Submit tweets the thread title. The encoded body is ignored.
func (p *TwitterPublisher) Submit(title, _ string) error {
	tweet := truncateTweet(title)

	if _, _, err := p.client.Statuses.Update(tweet, nil); err != nil {
		return faults.Errorf(faults.Transport, "posting tweet: %w", err)
	}
	return nil
}

func truncateTweet(text string) string {
	if len(text) <= tweetLimit {
		return text
	}
	return text[:tweetLimit-3] + "..."
}

// String identifies the backend in logs.
func (p *TwitterPublisher) String() string {
	return "twitter"
}
