package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrDenied, body)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrTimeout, body)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
	}
}
