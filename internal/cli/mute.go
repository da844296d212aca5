package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMuteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mute <on|off|toggle|get>",
		Short: "Get or set mute",
		Long:  "Controls RenderingControl mute on the speaker.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch strings.ToLower(args[0]) {
			case "get":
				v, err := c.GetMute(ctx)
				if err != nil {
					return err
				}
				if isJSON(flags) {
					return writeJSON(cmd, map[string]any{"mute": v})
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			case "on":
				res, err := c.SetMute(ctx, true)
				return finish(cmd, flags, "mute.on", res, err)
			case "off":
				res, err := c.SetMute(ctx, false)
				return finish(cmd, flags, "mute.off", res, err)
			case "toggle":
				v, err := c.GetMute(ctx)
				if err != nil {
					return err
				}
				res, err := c.SetMute(ctx, !v)
				return finish(cmd, flags, "mute.toggle", res, err)
			default:
				return errors.New("expected on|off|toggle|get")
			}
		},
	}
}
