package selection

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func flexibleSupport() *SurfaceSupport {
	return &SurfaceSupport{
		Capabilities: &SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    0,
			CurrentExtent:    Extent2D{Width: UndefinedExtent, Height: UndefinedExtent},
			MinImageExtent:   Extent2D{Width: 64, Height: 64},
			MaxImageExtent:   Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: 1,
		},
		Formats: []SurfaceFormat{
			{Format: FormatR8G8B8A8UNorm, ColorSpace: ColorSpaceSRGBNonlinear},
			{Format: FormatB8G8R8A8SRGB, ColorSpace: ColorSpaceSRGBNonlinear},
		},
		PresentModes: []PresentMode{PresentModeFIFO, PresentModeImmediate, PresentModeMailbox},
	}
}

func sharedQueues(family int) QueueFamilyAssignment {
	return QueueFamilyAssignment{GraphicsFamily: intPtr(family), PresentFamily: intPtr(family)}
}

func panicHint() Extent2D {
	panic("extent hint consulted for a fixed extent")
}

func TestNegotiatePreferredChoices(t *testing.T) {
	c := qt.New(t)
	negotiator := NewNegotiator(DefaultRequirements())

	config := negotiator.Negotiate(flexibleSupport(), sharedQueues(0), FixedExtentHint(Extent2D{Width: 800, Height: 600}))
	c.Assert(config, qt.DeepEquals, PresentationConfig{
		Format:       FormatB8G8R8A8SRGB,
		ColorSpace:   ColorSpaceSRGBNonlinear,
		PresentMode:  PresentModeMailbox,
		Extent:       Extent2D{Width: 800, Height: 600},
		ImageCount:   3,
		PreTransform: 1,
		SharingMode:  SharingModeExclusive,
	})
}

func TestNegotiateFormatFallsBackToFirstEntry(t *testing.T) {
	c := qt.New(t)
	support := flexibleSupport()
	support.Formats = []SurfaceFormat{
		{Format: FormatA2B10G10R10UNorm, ColorSpace: ColorSpaceHDR10ST2084},
		{Format: FormatB8G8R8A8SRGB, ColorSpace: ColorSpaceExtendedSRGBLinear},
		{Format: FormatR8G8B8A8SRGB, ColorSpace: ColorSpaceSRGBNonlinear},
	}

	config := NewNegotiator(DefaultRequirements()).Negotiate(support, sharedQueues(0), FixedExtentHint(Extent2D{Width: 1, Height: 1}))
	c.Assert(config.Format, qt.Equals, FormatA2B10G10R10UNorm)
	c.Assert(config.ColorSpace, qt.Equals, ColorSpaceHDR10ST2084)
}

func TestNegotiatePresentModeFallsBack(t *testing.T) {
	c := qt.New(t)
	support := flexibleSupport()
	support.PresentModes = []PresentMode{PresentModeImmediate, PresentModeFIFORelaxed, PresentModeFIFO}

	config := NewNegotiator(DefaultRequirements()).Negotiate(support, sharedQueues(0), FixedExtentHint(Extent2D{Width: 1, Height: 1}))
	c.Assert(config.PresentMode, qt.Equals, PresentModeFIFO)
}

func TestNegotiateHonorsConfiguredPreferences(t *testing.T) {
	c := qt.New(t)
	requirements := DefaultRequirements()
	requirements.PreferredFormat = SurfaceFormat{Format: FormatR8G8B8A8UNorm, ColorSpace: ColorSpaceSRGBNonlinear}
	requirements.PreferredPresentMode = PresentModeImmediate

	config := NewNegotiator(requirements).Negotiate(flexibleSupport(), sharedQueues(0), FixedExtentHint(Extent2D{Width: 1, Height: 1}))
	c.Assert(config.Format, qt.Equals, FormatR8G8B8A8UNorm)
	c.Assert(config.PresentMode, qt.Equals, PresentModeImmediate)
}

func TestNegotiateExtent(t *testing.T) {
	tests := []struct {
		name     string
		current  Extent2D
		hint     ExtentHint
		expected Extent2D
	}{{
		name:     "fixed extent is used verbatim",
		current:  Extent2D{Width: 1920, Height: 1080},
		hint:     panicHint,
		expected: Extent2D{Width: 1920, Height: 1080},
	}, {
		name:     "fixed extent outside the range is still used",
		current:  Extent2D{Width: 8000, Height: 10},
		hint:     panicHint,
		expected: Extent2D{Width: 8000, Height: 10},
	}, {
		name:     "hint clamped to max",
		current:  Extent2D{Width: UndefinedExtent, Height: UndefinedExtent},
		hint:     FixedExtentHint(Extent2D{Width: 10000, Height: 10000}),
		expected: Extent2D{Width: 4096, Height: 4096},
	}, {
		name:     "hint clamped to min",
		current:  Extent2D{Width: UndefinedExtent, Height: UndefinedExtent},
		hint:     FixedExtentHint(Extent2D{Width: 0, Height: 3}),
		expected: Extent2D{Width: 64, Height: 64},
	}, {
		name:     "dimensions clamp independently",
		current:  Extent2D{Width: UndefinedExtent, Height: UndefinedExtent},
		hint:     FixedExtentHint(Extent2D{Width: 10000, Height: 720}),
		expected: Extent2D{Width: 4096, Height: 720},
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			support := flexibleSupport()
			support.Capabilities.CurrentExtent = test.current

			config := NewNegotiator(DefaultRequirements()).Negotiate(support, sharedQueues(0), test.hint)
			c.Assert(config.Extent, qt.Equals, test.expected)
		})
	}
}

func TestNegotiateImageCount(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		expected int
	}{
		{"unbounded", 2, 0, 3},
		{"room below max", 2, 8, 3},
		{"clamped to max", 3, 3, 3},
		{"single image surface", 1, 1, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			support := flexibleSupport()
			support.Capabilities.MinImageCount = test.min
			support.Capabilities.MaxImageCount = test.max

			config := NewNegotiator(DefaultRequirements()).Negotiate(support, sharedQueues(0), FixedExtentHint(Extent2D{Width: 1, Height: 1}))
			c.Assert(config.ImageCount, qt.Equals, test.expected)
		})
	}
}

func TestNegotiateSharingMode(t *testing.T) {
	c := qt.New(t)
	negotiator := NewNegotiator(DefaultRequirements())
	hint := FixedExtentHint(Extent2D{Width: 1, Height: 1})

	exclusive := negotiator.Negotiate(flexibleSupport(), sharedQueues(2), hint)
	c.Assert(exclusive.SharingMode, qt.Equals, SharingModeExclusive)
	c.Assert(exclusive.QueueFamilyIndices, qt.IsNil)

	split := QueueFamilyAssignment{GraphicsFamily: intPtr(1), PresentFamily: intPtr(2)}
	concurrent := negotiator.Negotiate(flexibleSupport(), split, hint)
	c.Assert(concurrent.SharingMode, qt.Equals, SharingModeConcurrent)
	c.Assert(concurrent.QueueFamilyIndices, qt.DeepEquals, []int{1, 2})
}

func TestNegotiateIsIdempotent(t *testing.T) {
	c := qt.New(t)
	negotiator := NewNegotiator(DefaultRequirements())
	support := flexibleSupport()
	queues := QueueFamilyAssignment{GraphicsFamily: intPtr(0), PresentFamily: intPtr(3)}
	hint := FixedExtentHint(Extent2D{Width: 1280, Height: 720})

	first := negotiator.Negotiate(support, queues, hint)
	second := negotiator.Negotiate(support, queues, hint)
	c.Assert(second, qt.DeepEquals, first)
}

func TestNegotiateAfterSelect(t *testing.T) {
	c := qt.New(t)
	requirements := DefaultRequirements()
	device := suitableDevice("discrete", DeviceClassDiscrete, 16384)
	device.families = families(QueueGraphics, QueueTransfer)
	device.presentFamilies = map[int]bool{1: true}
	surface := &fakeSurface{}

	selection, err := NewSelector(requirements, nil).Select([]Device{device}, surface)
	c.Assert(err, qt.IsNil)

	support, err := QuerySurfaceSupport(selection.Device, surface)
	c.Assert(err, qt.IsNil)

	config := NewNegotiator(requirements).Negotiate(support, selection.Queues, panicHint)
	c.Assert(config.Extent, qt.Equals, Extent2D{Width: 800, Height: 600})
	c.Assert(config.Format, qt.Equals, FormatB8G8R8A8SRGB)
	c.Assert(config.PresentMode, qt.Equals, PresentModeMailbox)
	c.Assert(config.SharingMode, qt.Equals, SharingModeConcurrent)
	c.Assert(config.QueueFamilyIndices, qt.DeepEquals, []int{0, 1})
}
