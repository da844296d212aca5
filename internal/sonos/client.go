package sonos

import (
	"fmt"
	"net/http"
	"time"
)

// Client controls a single Sonos ZonePlayer. It holds nothing but the
// target address and an HTTP client, so one Client can serve any number
// of sequential calls without teardown.
type Client struct {
	IP   string
	Port int
	HTTP *http.Client
}

func NewClient(ip string, timeout time.Duration) *Client {
	return &Client{
		IP:   ip,
		Port: 1400,
		HTTP: &http.Client{Timeout: timeout},
	}
}

func (c *Client) baseURL() string {
	port := c.Port
	if port == 0 {
		port = 1400
	}
	return fmt.Sprintf("http://%s:%d", c.IP, port)
}
