package selection

import (
	"github.com/cockroachdb/errors"
)

type fakeDevice struct {
	properties DeviceProperties
	features   FeatureSet
	extensions []string
	families   []QueueFamily

	// presentFamilies lists the families that can present to fakeSurface.
	presentFamilies map[int]bool
	// presentErr is returned from the present-support query for any family.
	presentErr error
	// propertiesErr is returned from Properties.
	propertiesErr error

	capabilities SurfaceCapabilities
	formats      []SurfaceFormat
	presentModes []PresentMode
}

func (d *fakeDevice) Properties() (*DeviceProperties, error) {
	if d.propertiesErr != nil {
		return nil, d.propertiesErr
	}
	properties := d.properties
	return &properties, nil
}

func (d *fakeDevice) Features() (FeatureSet, error) {
	return d.features, nil
}

func (d *fakeDevice) Extensions() (map[string]struct{}, error) {
	extensions := make(map[string]struct{}, len(d.extensions))
	for _, extension := range d.extensions {
		extensions[extension] = struct{}{}
	}
	return extensions, nil
}

func (d *fakeDevice) QueueFamilies() ([]QueueFamily, error) {
	return d.families, nil
}

type presentQuery struct {
	device *fakeDevice
	family int
}

type fakeSurface struct {
	queries []presentQuery
}

func (s *fakeSurface) SupportsPresent(device Device, queueFamily int) (bool, error) {
	fake := device.(*fakeDevice)
	s.queries = append(s.queries, presentQuery{device: fake, family: queueFamily})
	if fake.presentErr != nil {
		return false, fake.presentErr
	}
	return fake.presentFamilies[queueFamily], nil
}

func (s *fakeSurface) Capabilities(device Device) (*SurfaceCapabilities, error) {
	capabilities := device.(*fakeDevice).capabilities
	return &capabilities, nil
}

func (s *fakeSurface) Formats(device Device) ([]SurfaceFormat, error) {
	return device.(*fakeDevice).formats, nil
}

func (s *fakeSurface) PresentModes(device Device) ([]PresentMode, error) {
	return device.(*fakeDevice).presentModes, nil
}

var errLostSurface = errors.New("VK_ERROR_SURFACE_LOST_KHR")

func families(flags ...QueueFlags) []QueueFamily {
	queueFamilies := make([]QueueFamily, len(flags))
	for i, flag := range flags {
		queueFamilies[i] = QueueFamily{Index: i, Flags: flag, QueueCount: 1}
	}
	return queueFamilies
}

// suitableDevice returns a device that meets DefaultRequirements.
func suitableDevice(name string, class DeviceClass, maxImageDimension int) *fakeDevice {
	return &fakeDevice{
		properties: DeviceProperties{
			Name:                name,
			Class:               class,
			MaxImageDimension2D: maxImageDimension,
		},
		features:        FeatureSet{FeatureGeometryShader: true, FeatureSamplerAnisotropy: true},
		extensions:      []string{SwapchainExtensionName, "VK_KHR_maintenance1"},
		families:        families(QueueGraphics|QueueCompute|QueueTransfer, QueueTransfer),
		presentFamilies: map[int]bool{0: true},
		capabilities: SurfaceCapabilities{
			MinImageCount:  2,
			MaxImageCount:  8,
			CurrentExtent:  Extent2D{Width: 800, Height: 600},
			MinImageExtent: Extent2D{Width: 1, Height: 1},
			MaxImageExtent: Extent2D{Width: 4096, Height: 4096},
		},
		formats: []SurfaceFormat{
			{Format: FormatB8G8R8A8UNorm, ColorSpace: ColorSpaceSRGBNonlinear},
			{Format: FormatB8G8R8A8SRGB, ColorSpace: ColorSpaceSRGBNonlinear},
		},
		presentModes: []PresentMode{PresentModeFIFO, PresentModeMailbox},
	}
}
