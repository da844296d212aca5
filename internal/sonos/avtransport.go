package sonos

import "context"

// Transport actions always target instance 0 (ZonePlayers expose a single
// AVTransport instance) at speed 1.
const transportArgs = "<InstanceID>0</InstanceID><Speed>1</Speed>"

func (c *Client) Play(ctx context.Context) (Result, error) {
	return c.command(ctx, controlAVTransport, urnAVTransport, "Play", transportArgs)
}

func (c *Client) Pause(ctx context.Context) (Result, error) {
	return c.command(ctx, controlAVTransport, urnAVTransport, "Pause", transportArgs)
}

func (c *Client) Stop(ctx context.Context) (Result, error) {
	return c.command(ctx, controlAVTransport, urnAVTransport, "Stop", transportArgs)
}

// Next can fail for provider-specific reasons: streaming services with skip
// limits hand back a fault code once the limit is hit.
func (c *Client) Next(ctx context.Context) (Result, error) {
	return c.command(ctx, controlAVTransport, urnAVTransport, "Next", transportArgs)
}

// Previous fails with code 701 on sources that cannot seek backward.
func (c *Client) Previous(ctx context.Context) (Result, error) {
	return c.command(ctx, controlAVTransport, urnAVTransport, "Previous", transportArgs)
}

// TrackInfo describes the currently playing track. Every field is optional
// on the wire; absent ones stay empty strings.
type TrackInfo struct {
	PlaylistPosition string `json:"playlistPosition"`
	Duration         string `json:"duration"`
	Title            string `json:"title"`
	Artist           string `json:"artist"`
	Album            string `json:"album"`
}

// GetCurrentTrackInfo fetches GetPositionInfo and flattens it into a
// TrackInfo. Title/artist/album live in the embedded DIDL-Lite document
// carried by the TrackMetaData field; when that field is empty they default
// to empty strings without touching the metadata parser.
func (c *Client) GetCurrentTrackInfo(ctx context.Context) (TrackInfo, error) {
	fields, err := c.query(ctx, controlAVTransport, urnAVTransport, "GetPositionInfo",
		"<InstanceID>0</InstanceID><Channel>Master</Channel>")
	if err != nil {
		return TrackInfo{}, err
	}

	info := TrackInfo{
		PlaylistPosition: fields["Track"],
		Duration:         fields["TrackDuration"],
	}
	if meta := fields["TrackMetaData"]; meta != "" {
		md, err := parseTrackMetadata(meta)
		if err != nil {
			return TrackInfo{}, err
		}
		info.Title = md.Title
		info.Artist = md.Artist
		info.Album = md.Album
	}
	return info, nil
}

type TransportInfo struct {
	State  string `json:"state"`
	Status string `json:"status"`
	Speed  string `json:"speed"`
}

func (c *Client) GetTransportInfo(ctx context.Context) (TransportInfo, error) {
	fields, err := c.query(ctx, controlAVTransport, urnAVTransport, "GetTransportInfo",
		"<InstanceID>0</InstanceID>")
	if err != nil {
		return TransportInfo{}, err
	}
	return TransportInfo{
		State:  fields["CurrentTransportState"],
		Status: fields["CurrentTransportStatus"],
		Speed:  fields["CurrentSpeed"],
	}, nil
}
