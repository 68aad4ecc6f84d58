package vkbackend

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"

	"github.com/vkngwrapper/swapchainpick/selection"
)

// Surface adapts a khr_surface surface to selection.Surface.
type Surface struct {
	extension khr_surface.ExtensionDriver
	surface   khr_surface.Surface
}

func NewSurface(extension khr_surface.ExtensionDriver, surface khr_surface.Surface) *Surface {
	return &Surface{extension: extension, surface: surface}
}

// CreateSurface creates a presentable surface for an SDL window.
func CreateSurface(instanceDriver core1_0.CoreInstanceDriver, window *sdl.Window) (*Surface, error) {
	surfaceExtension := khr_surface.CreateExtensionDriverFromCoreDriver(instanceDriver)
	surface, err := vkng_sdl2.CreateSurface(instanceDriver.Instance(), surfaceExtension, window)
	if err != nil {
		return nil, errors.Wrap(err, "create surface")
	}

	return NewSurface(surfaceExtension, surface), nil
}

func (s *Surface) Handle() khr_surface.Surface {
	return s.surface
}

func (s *Surface) Destroy() {
	s.extension.DestroySurface(s.surface, nil)
}

func (s *Surface) SupportsPresent(device selection.Device, queueFamily int) (bool, error) {
	handle, err := physicalDeviceHandle(device)
	if err != nil {
		return false, err
	}

	supported, _, err := s.extension.GetPhysicalDeviceSurfaceSupport(s.surface, handle, queueFamily)
	return supported, err
}

func (s *Surface) Capabilities(device selection.Device) (*selection.SurfaceCapabilities, error) {
	handle, err := physicalDeviceHandle(device)
	if err != nil {
		return nil, err
	}

	capabilities, _, err := s.extension.GetPhysicalDeviceSurfaceCapabilities(s.surface, handle)
	if err != nil {
		return nil, err
	}
	return convertCapabilities(capabilities), nil
}

func (s *Surface) Formats(device selection.Device) ([]selection.SurfaceFormat, error) {
	handle, err := physicalDeviceHandle(device)
	if err != nil {
		return nil, err
	}

	formats, _, err := s.extension.GetPhysicalDeviceSurfaceFormats(s.surface, handle)
	if err != nil {
		return nil, err
	}
	return convertFormats(formats), nil
}

func (s *Surface) PresentModes(device selection.Device) ([]selection.PresentMode, error) {
	handle, err := physicalDeviceHandle(device)
	if err != nil {
		return nil, err
	}

	presentModes, _, err := s.extension.GetPhysicalDeviceSurfacePresentModes(s.surface, handle)
	if err != nil {
		return nil, err
	}
	return convertPresentModes(presentModes), nil
}

// DrawableSizeHint reads the window's drawable size in pixels each time it
// is called, which may differ from its size in screen coordinates.
func DrawableSizeHint(window *sdl.Window) selection.ExtentHint {
	return func() selection.Extent2D {
		width, height := window.VulkanGetDrawableSize()
		return selection.Extent2D{Width: int(width), Height: int(height)}
	}
}
