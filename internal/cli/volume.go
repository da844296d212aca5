package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newVolumeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Get or set volume",
		Long:  "Controls RenderingControl volume on the speaker (0-100). Values are forwarded as-is; the device rejects out-of-range ones.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Get volume",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}
			v, err := c.GetVolume(cmd.Context())
			if err != nil {
				return err
			}
			if isJSON(flags) {
				return writeJSON(cmd, map[string]any{"volume": v})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <0-100>",
		Short: "Set volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}
			res, err := c.SetVolume(cmd.Context(), v)
			return finish(cmd, flags, "volume.set", res, err)
		},
	})

	return cmd
}
