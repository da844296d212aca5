package sonos

const (
	controlAVTransport      = "/MediaRenderer/AVTransport/Control"
	controlRenderingControl = "/MediaRenderer/RenderingControl/Control"
	controlDeviceProperties = "/DeviceProperties/Control"

	urnAVTransport      = "urn:schemas-upnp-org:service:AVTransport:1"
	urnRenderingControl = "urn:schemas-upnp-org:service:RenderingControl:1"
	urnDeviceProperties = "urn:schemas-upnp-org:service:DeviceProperties:1"

	nsUPnPControl  = "urn:schemas-upnp-org:control-1-0"
	nsDublinCore   = "http://purl.org/dc/elements/1.1/"
	nsUPnPMetadata = "urn:schemas-upnp-org:metadata-1-0/upnp/"
)
