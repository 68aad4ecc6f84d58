// Package selection picks the physical device best suited to present to a
// window surface and negotiates the swapchain configuration both of them
// can agree on.
//
// The package never talks to a driver directly. Devices and surfaces are
// reached through the Device and Surface interfaces; package vkbackend
// implements them on top of vkngwrapper.
package selection

// Device is a physical device as exposed by the graphics backend. It is
// borrowed for the duration of a selection and never mutated.
type Device interface {
	Properties() (*DeviceProperties, error)
	Features() (FeatureSet, error)
	Extensions() (map[string]struct{}, error)
	QueueFamilies() ([]QueueFamily, error)
}

// Surface answers the device/surface pair queries. Every call queries the
// backend again; nothing is cached.
type Surface interface {
	SupportsPresent(device Device, queueFamily int) (bool, error)
	Capabilities(device Device) (*SurfaceCapabilities, error)
	Formats(device Device) ([]SurfaceFormat, error)
	PresentModes(device Device) ([]PresentMode, error)
}

type DeviceProperties struct {
	Name       string
	Class      DeviceClass
	VendorID   uint32
	DeviceID   uint32
	APIVersion string

	MaxImageDimension2D int
}

type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

func (f QueueFlags) Has(flag QueueFlags) bool {
	return f&flag == flag
}

type QueueFamily struct {
	Index      int
	Flags      QueueFlags
	QueueCount int
}

type Extent2D struct {
	Width  int
	Height int
}

// UndefinedExtent in SurfaceCapabilities.CurrentExtent.Width means the
// surface lets the swapchain pick its own size.
const UndefinedExtent = -1

type SurfaceTransform uint32

type SurfaceCapabilities struct {
	MinImageCount int
	// MaxImageCount of zero means there is no upper limit.
	MaxImageCount int

	CurrentExtent  Extent2D
	MinImageExtent Extent2D
	MaxImageExtent Extent2D

	CurrentTransform SurfaceTransform
}

func (c *SurfaceCapabilities) HasFixedExtent() bool {
	return c.CurrentExtent.Width != UndefinedExtent
}

type SurfaceFormat struct {
	Format     Format     `yaml:"format"`
	ColorSpace ColorSpace `yaml:"colorSpace"`
}

type SharingMode int

const (
	SharingModeExclusive SharingMode = iota
	SharingModeConcurrent
)

func (m SharingMode) String() string {
	if m == SharingModeConcurrent {
		return "concurrent"
	}
	return "exclusive"
}

// Score ranks suitable devices. Anything at or below zero is disqualified.
type Score int

// PresentationConfig is everything swapchain creation needs to know
// beyond the surface and device themselves.
type PresentationConfig struct {
	Format       Format
	ColorSpace   ColorSpace
	PresentMode  PresentMode
	Extent       Extent2D
	ImageCount   int
	PreTransform SurfaceTransform

	SharingMode SharingMode
	// QueueFamilyIndices is nil for exclusive sharing and holds the
	// graphics then present family for concurrent sharing.
	QueueFamilyIndices []int
}
