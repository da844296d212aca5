package sonos

import "context"

// SetLEDState turns the white status light on the unit on or off.
func (c *Client) SetLEDState(ctx context.Context, on bool) (Result, error) {
	state := "Off"
	if on {
		state = "On"
	}
	return c.command(ctx, controlDeviceProperties, urnDeviceProperties, "SetLEDState",
		"<DesiredLEDState>"+state+"</DesiredLEDState>")
}

func (c *Client) GetLEDState(ctx context.Context) (bool, error) {
	fields, err := c.query(ctx, controlDeviceProperties, urnDeviceProperties, "GetLEDState", "")
	if err != nil {
		return false, err
	}
	return fields["CurrentLEDState"] == "On", nil
}
