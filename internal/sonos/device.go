package sonos

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Device struct {
	IP       string `json:"ip"`
	Name     string `json:"name"`
	UDN      string `json:"udn"`
	Location string `json:"location"`
}

type deviceDescription struct {
	Device struct {
		DeviceType   string `xml:"deviceType"`
		RoomName     string `xml:"roomName"`
		Manufacturer string `xml:"manufacturer"`
		UDN          string `xml:"UDN"`
	} `xml:"device"`
}

// GetDeviceDescription reads the unit's UPnP description document and
// returns its room name and UDN. Non-Sonos devices answering on port 1400
// are rejected.
func (c *Client) GetDeviceDescription(ctx context.Context) (Device, error) {
	location := c.baseURL() + "/xml/device_description.xml"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return Device{}, err
	}
	resp, err := doRequest(ctx, c.HTTP, req)
	if err != nil {
		return Device{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Device{}, fmt.Errorf("device description: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return Device{}, err
	}

	var dd deviceDescription
	if err := xml.Unmarshal(raw, &dd); err != nil {
		return Device{}, err
	}

	deviceType := strings.TrimSpace(dd.Device.DeviceType)
	manufacturer := strings.TrimSpace(dd.Device.Manufacturer)
	if deviceType != "urn:schemas-upnp-org:device:ZonePlayer:1" && !strings.Contains(strings.ToLower(manufacturer), "sonos") {
		return Device{}, fmt.Errorf("not a sonos ZonePlayer (deviceType=%q manufacturer=%q)", deviceType, manufacturer)
	}

	return Device{
		IP:       c.IP,
		Name:     strings.TrimSpace(dd.Device.RoomName),
		UDN:      strings.TrimPrefix(strings.TrimSpace(dd.Device.UDN), "uuid:"),
		Location: location,
	}, nil
}
