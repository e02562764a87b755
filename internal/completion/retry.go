package completion

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// newRetryClient returns an http.Client that repeats a request up to maxRetries times
// after a transport error, a 429 or a 5xx response, waiting backoff between attempts.
// timeout bounds the whole exchange including retries.
func newRetryClient(base http.RoundTripper, timeout time.Duration, maxRetries int, backoff time.Duration) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: base}
	rc.Logger = nil
	rc.RetryMax = maxRetries
	rc.RetryWaitMin = backoff
	rc.RetryWaitMax = backoff
	rc.Backoff = func(min, _ time.Duration, _ int, _ *http.Response) time.Duration {
		return min
	}
	rc.CheckRetry = checkRetry
	// Hand the last response or error back unchanged once retries run out.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := rc.StandardClient()
	client.Timeout = timeout
	return client
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}
	if err != nil {
		return true, nil
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError, nil
}
