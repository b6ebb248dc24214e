package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty client bound to one companion endpoint. Requests
// with a []byte body are signed with the pairing key before they are sent.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL. A non-positive timeout leaves
// the resty default. signer may be nil when the peer does not check
// signatures.
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8080", 10*time.Second, utils.NewHasher(key))
//	resp, err := client.R().SetBody(body).Post("/api/companion/fetch")
func NewHTTPClient(baseURL string, timeout time.Duration, signer *Hasher) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if signer != nil {
		client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if body, ok := r.Body.([]byte); ok {
				r.SetHeader(HashHeader, signer.Sign(body))
			}
			return nil
		})
	}
	return &HTTPClient{Client: client}
}
