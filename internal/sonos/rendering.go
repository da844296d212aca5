package sonos

import (
	"context"
	"strconv"
)

// SetMute mutes (true) or unmutes (false) the master channel.
func (c *Client) SetMute(ctx context.Context, mute bool) (Result, error) {
	v := "0"
	if mute {
		v = "1"
	}
	return c.command(ctx, controlRenderingControl, urnRenderingControl, "SetMute",
		"<InstanceID>0</InstanceID><Channel>Master</Channel><DesiredMute>"+v+"</DesiredMute>")
}

// SetVolume sets the master volume. The value is forwarded as-is; the device
// rejects out-of-range values with a fault of its own.
func (c *Client) SetVolume(ctx context.Context, volume int) (Result, error) {
	return c.command(ctx, controlRenderingControl, urnRenderingControl, "SetVolume",
		"<InstanceID>0</InstanceID><Channel>Master</Channel><DesiredVolume>"+strconv.Itoa(volume)+"</DesiredVolume>")
}

func (c *Client) GetVolume(ctx context.Context) (int, error) {
	fields, err := c.query(ctx, controlRenderingControl, urnRenderingControl, "GetVolume",
		"<InstanceID>0</InstanceID><Channel>Master</Channel>")
	if err != nil {
		return 0, err
	}
	v, _ := strconv.Atoi(fields["CurrentVolume"])
	return v, nil
}

func (c *Client) GetMute(ctx context.Context) (bool, error) {
	fields, err := c.query(ctx, controlRenderingControl, urnRenderingControl, "GetMute",
		"<InstanceID>0</InstanceID><Channel>Master</Channel>")
	if err != nil {
		return false, err
	}
	return fields["CurrentMute"] == "1", nil
}
