package selection

// SurfaceSupport is a snapshot of what a device can do with a surface.
type SurfaceSupport struct {
	Capabilities *SurfaceCapabilities
	Formats      []SurfaceFormat
	PresentModes []PresentMode
}

// Adequate reports whether a swapchain can be built at all: at least one
// format and one present mode must be on offer.
func (s *SurfaceSupport) Adequate() bool {
	return len(s.Formats) > 0 && len(s.PresentModes) > 0
}

// QuerySurfaceSupport asks the surface for a fresh snapshot.
func QuerySurfaceSupport(device Device, surface Surface) (*SurfaceSupport, error) {
	var details SurfaceSupport
	var err error

	details.Capabilities, err = surface.Capabilities(device)
	if err != nil {
		return nil, queryError("query surface capabilities", "", err)
	}

	details.Formats, err = surface.Formats(device)
	if err != nil {
		return nil, queryError("query surface formats", "", err)
	}

	details.PresentModes, err = surface.PresentModes(device)
	if err != nil {
		return nil, queryError("query surface present modes", "", err)
	}

	return &details, nil
}
