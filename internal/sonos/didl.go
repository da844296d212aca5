package sonos

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type trackMetadata struct {
	Title  string
	Artist string
	Album  string
}

// parseTrackMetadata pulls title (dc:title), artist (dc:creator) and album
// (upnp:album) out of a DIDL-Lite document. Lookup is by namespace, not
// prefix, so it tolerates whatever prefixes the device chose. The first
// occurrence of each element wins; missing elements leave the field empty.
func parseTrackMetadata(didl string) (trackMetadata, error) {
	dec := xml.NewDecoder(strings.NewReader(didl))
	var md trackMetadata
	var target *string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return md, nil
		}
		if err != nil {
			return trackMetadata{}, fmt.Errorf("parse track metadata: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			target = nil
			switch {
			case t.Name.Space == nsDublinCore && t.Name.Local == "title" && md.Title == "":
				target = &md.Title
			case t.Name.Space == nsDublinCore && t.Name.Local == "creator" && md.Artist == "":
				target = &md.Artist
			case t.Name.Space == nsUPnPMetadata && t.Name.Local == "album" && md.Album == "":
				target = &md.Album
			}
		case xml.EndElement:
			target = nil
		case xml.CharData:
			if target != nil {
				*target += string(t)
			}
		}
	}
}
