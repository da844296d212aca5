package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sonos-tools/sonosctl/internal/sonos"
)

type statusClient interface {
	GetDeviceDescription(ctx context.Context) (sonos.Device, error)
	GetTransportInfo(ctx context.Context) (sonos.TransportInfo, error)
	GetCurrentTrackInfo(ctx context.Context) (sonos.TrackInfo, error)
	GetVolume(ctx context.Context) (int, error)
	GetMute(ctx context.Context) (bool, error)
}

var newStatusClient = func(flags *rootFlags) (statusClient, error) {
	return speakerClient(flags)
}

type statusOutput struct {
	Device    sonos.Device        `json:"device"`
	Transport sonos.TransportInfo `json:"transport"`
	Track     sonos.TrackInfo     `json:"track"`
	Volume    int                 `json:"volume"`
	Mute      bool                `json:"mute"`
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Aliases:      []string{"now"},
		Short:        "Show current playback status",
		Long:         "Prints speaker status (transport state, current track, volume/mute). Use --format json for machine-readable output.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newStatusClient(flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			dev, _ := c.GetDeviceDescription(ctx)
			transport, _ := c.GetTransportInfo(ctx)
			track, _ := c.GetCurrentTrackInfo(ctx)
			vol, _ := c.GetVolume(ctx)
			mute, _ := c.GetMute(ctx)

			out := statusOutput{
				Device:    dev,
				Transport: transport,
				Track:     track,
				Volume:    vol,
				Mute:      mute,
			}

			if isJSON(flags) {
				return writeJSON(cmd, out)
			}

			if isTSV(flags) {
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "speaker\t%s\n", dev.Name)
				_, _ = fmt.Fprintf(w, "ip\t%s\n", dev.IP)
				_, _ = fmt.Fprintf(w, "state\t%s\n", transport.State)
				_, _ = fmt.Fprintf(w, "track\t%s\n", track.PlaylistPosition)
				_, _ = fmt.Fprintf(w, "title\t%s\n", track.Title)
				_, _ = fmt.Fprintf(w, "artist\t%s\n", track.Artist)
				_, _ = fmt.Fprintf(w, "album\t%s\n", track.Album)
				_, _ = fmt.Fprintf(w, "duration\t%s\n", track.Duration)
				_, _ = fmt.Fprintf(w, "volume\t%d\n", vol)
				_, _ = fmt.Fprintf(w, "mute\t%v\n", mute)
				return nil
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Speaker:\t%s (%s)\n", dev.Name, dev.IP)
			_, _ = fmt.Fprintf(w, "State:\t\t%s\n", transport.State)
			_, _ = fmt.Fprintf(w, "Track:\t\t%s\n", track.PlaylistPosition)
			if track.Title != "" {
				_, _ = fmt.Fprintf(w, "Title:\t\t%s\n", track.Title)
			}
			if track.Artist != "" {
				_, _ = fmt.Fprintf(w, "Artist:\t\t%s\n", track.Artist)
			}
			if track.Album != "" {
				_, _ = fmt.Fprintf(w, "Album:\t\t%s\n", track.Album)
			}
			_, _ = fmt.Fprintf(w, "Duration:\t%s\n", track.Duration)
			_, _ = fmt.Fprintf(w, "Volume:\t\t%d\n", vol)
			_, _ = fmt.Fprintf(w, "Mute:\t\t%v\n", mute)
			return nil
		},
	}
}
