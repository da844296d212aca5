package cli

import "github.com/spf13/cobra"

func newPlayCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Resume playback",
		Long:  "Sends AVTransport.Play to the speaker.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}
			res, err := c.Play(cmd.Context())
			return finish(cmd, flags, "play", res, err)
		},
	}
}

func newPauseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause playback",
		Long:  "Sends AVTransport.Pause to the speaker.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}
			res, err := c.Pause(cmd.Context())
			return finish(cmd, flags, "pause", res, err)
		},
	}
}

func newStopCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop playback",
		Long:  "Sends AVTransport.Stop to the speaker.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}
			res, err := c.Stop(cmd.Context())
			return finish(cmd, flags, "stop", res, err)
		},
	}
}

func newNextCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Skip to next track",
		Long:  "Sends AVTransport.Next to the speaker. Streaming sources with skip limits reject this with a UPnP fault once the limit is hit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}
			res, err := c.Next(cmd.Context())
			return finish(cmd, flags, "next", res, err)
		},
	}
}

func newPrevCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Go to previous track",
		Long:  "Sends AVTransport.Previous to the speaker. Sources that cannot seek backward reject this with UPnP error 701.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSpeakerClient(flags)
			if err != nil {
				return err
			}
			res, err := c.Previous(cmd.Context())
			return finish(cmd, flags, "prev", res, err)
		},
	}
}
