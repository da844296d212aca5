package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLEDCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "led <on|off|get>",
		Short: "Control the white status light",
		Long:  "Turns the unit's white status LED on or off via DeviceProperties.SetLEDState.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch strings.ToLower(args[0]) {
			case "get":
				on, err := c.GetLEDState(ctx)
				if err != nil {
					return err
				}
				if isJSON(flags) {
					return writeJSON(cmd, map[string]any{"led": on})
				}
				state := "off"
				if on {
					state = "on"
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), state)
				return nil
			case "on":
				res, err := c.SetLEDState(ctx, true)
				return finish(cmd, flags, "led.on", res, err)
			case "off":
				res, err := c.SetLEDState(ctx, false)
				return finish(cmd, flags, "led.off", res, err)
			default:
				return errors.New("expected on|off|get")
			}
		},
	}
}
