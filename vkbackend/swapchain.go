package vkbackend

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"github.com/vkngwrapper/swapchainpick/selection"
)

type Swapchain struct {
	extension khr_swapchain.ExtensionDriver
	swapchain khr_swapchain.Swapchain

	Images []core1_0.Image
	Config selection.PresentationConfig
}

func (s *Swapchain) Destroy() {
	s.extension.DestroySwapchain(s.swapchain, nil)
}

func swapchainCreateInfo(surface khr_surface.Surface, config selection.PresentationConfig) khr_swapchain.SwapchainCreateInfo {
	return khr_swapchain.SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    config.ImageCount,
		ImageFormat:      core1_0.Format(config.Format),
		ImageColorSpace:  khr_surface.ColorSpace(config.ColorSpace),
		ImageExtent:      core1_0.Extent2D{Width: config.Extent.Width, Height: config.Extent.Height},
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode(config.SharingMode),
		QueueFamilyIndices: config.QueueFamilyIndices,

		PreTransform:   khr_surface.SurfaceTransformFlags(config.PreTransform),
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    khr_surface.PresentMode(config.PresentMode),
		Clipped:        true,
	}
}

// CreateSwapchain builds the swapchain described by a negotiated
// presentation config and fetches its images.
func CreateSwapchain(device *LogicalDevice, surface *Surface, config selection.PresentationConfig) (*Swapchain, error) {
	swapchainExtension := khr_swapchain.CreateExtensionDriverFromCoreDriver(device.Driver)

	swapchain, _, err := swapchainExtension.CreateSwapchain(nil, swapchainCreateInfo(surface.Handle(), config))
	if err != nil {
		return nil, errors.Wrap(err, "createswapchain")
	}

	images, _, err := swapchainExtension.GetSwapchainImages(swapchain)
	if err != nil {
		swapchainExtension.DestroySwapchain(swapchain, nil)
		return nil, errors.Wrap(err, "createswapchain: get images")
	}

	return &Swapchain{
		extension: swapchainExtension,
		swapchain: swapchain,
		Images:    images,
		Config:    config,
	}, nil
}
