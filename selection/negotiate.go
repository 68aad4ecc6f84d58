package selection

// ExtentHint reports the window's drawable size in pixels. It is only
// consulted when the surface leaves the extent up to the swapchain.
type ExtentHint func() Extent2D

func FixedExtentHint(extent Extent2D) ExtentHint {
	return func() Extent2D {
		return extent
	}
}

type Negotiator struct {
	requirements Requirements
}

func NewNegotiator(requirements Requirements) *Negotiator {
	return &Negotiator{requirements: requirements}
}

// Negotiate derives the swapchain configuration for a selected device.
// Every choice has a fallback, so it cannot fail. The support snapshot
// must be adequate and the queue assignment complete, which Select
// guarantees for the device it returns.
func (n *Negotiator) Negotiate(support *SurfaceSupport, queues QueueFamilyAssignment, hint ExtentHint) PresentationConfig {
	surfaceFormat := n.chooseSwapSurfaceFormat(support.Formats)
	sharingMode, queueFamilyIndices := chooseSharingMode(queues)

	return PresentationConfig{
		Format:             surfaceFormat.Format,
		ColorSpace:         surfaceFormat.ColorSpace,
		PresentMode:        n.chooseSwapPresentMode(support.PresentModes),
		Extent:             chooseSwapExtent(support.Capabilities, hint),
		ImageCount:         chooseImageCount(support.Capabilities),
		PreTransform:       support.Capabilities.CurrentTransform,
		SharingMode:        sharingMode,
		QueueFamilyIndices: queueFamilyIndices,
	}
}

func (n *Negotiator) chooseSwapSurfaceFormat(availableFormats []SurfaceFormat) SurfaceFormat {
	for _, format := range availableFormats {
		if format == n.requirements.PreferredFormat {
			return format
		}
	}

	if len(availableFormats) == 0 {
		return n.requirements.PreferredFormat
	}
	return availableFormats[0]
}

func (n *Negotiator) chooseSwapPresentMode(availablePresentModes []PresentMode) PresentMode {
	for _, presentMode := range availablePresentModes {
		if presentMode == n.requirements.PreferredPresentMode {
			return presentMode
		}
	}

	return n.requirements.FallbackPresentMode
}

func chooseSwapExtent(capabilities *SurfaceCapabilities, hint ExtentHint) Extent2D {
	if capabilities.HasFixedExtent() {
		return capabilities.CurrentExtent
	}

	drawable := hint()
	return Extent2D{
		Width:  clamp(drawable.Width, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: clamp(drawable.Height, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

// chooseImageCount asks for one image more than the minimum so acquiring
// the next image does not wait on the driver.
func chooseImageCount(capabilities *SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && capabilities.MaxImageCount < imageCount {
		imageCount = capabilities.MaxImageCount
	}
	return imageCount
}

func chooseSharingMode(queues QueueFamilyAssignment) (SharingMode, []int) {
	if !queues.IsComplete() || queues.Shared() {
		return SharingModeExclusive, nil
	}
	return SharingModeConcurrent, []int{*queues.GraphicsFamily, *queues.PresentFamily}
}

func clamp(value, lower, upper int) int {
	if value < lower {
		value = lower
	}
	if value > upper {
		value = upper
	}
	return value
}
