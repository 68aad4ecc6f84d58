package vkbackend

import (
	"fmt"
	"math"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"

	"github.com/vkngwrapper/swapchainpick/selection"
)

// featureFields maps each known feature onto its VkPhysicalDeviceFeatures
// member so it can be both read and switched on.
var featureFields = map[selection.Feature]func(*core1_0.PhysicalDeviceFeatures) *bool{
	selection.FeatureGeometryShader:     func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.GeometryShader },
	selection.FeatureTessellationShader: func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.TessellationShader },
	selection.FeatureSamplerAnisotropy:  func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.SamplerAnisotropy },
	selection.FeatureFillModeNonSolid:   func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.FillModeNonSolid },
	selection.FeatureWideLines:          func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.WideLines },
	selection.FeatureMultiViewport:      func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.MultiViewport },
	selection.FeatureShaderInt64:        func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.ShaderInt64 },
	selection.FeatureShaderFloat64:      func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.ShaderFloat64 },
	selection.FeatureSampleRateShading:  func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.SampleRateShading },
	selection.FeatureIndependentBlend:   func(f *core1_0.PhysicalDeviceFeatures) *bool { return &f.IndependentBlend },
}

func convertProperties(properties *core1_0.PhysicalDeviceProperties) *selection.DeviceProperties {
	converted := &selection.DeviceProperties{
		Name:       properties.DriverName,
		Class:      selection.DeviceClass(properties.DriverType),
		VendorID:   properties.VendorID,
		DeviceID:   properties.DeviceID,
		APIVersion: fmt.Sprint(properties.APIVersion),
	}
	if properties.Limits != nil {
		converted.MaxImageDimension2D = properties.Limits.MaxImageDimension2D
	}
	return converted
}

func convertFeatures(features *core1_0.PhysicalDeviceFeatures) selection.FeatureSet {
	set := make(selection.FeatureSet, len(featureFields))
	if features == nil {
		return set
	}
	for feature, field := range featureFields {
		set[feature] = *field(features)
	}
	return set
}

// enabledFeatures switches on exactly the required features.
func enabledFeatures(required []selection.Feature) *core1_0.PhysicalDeviceFeatures {
	features := &core1_0.PhysicalDeviceFeatures{}
	for _, feature := range required {
		if field, ok := featureFields[feature]; ok {
			*field(features) = true
		}
	}
	return features
}

func convertQueueFamilies(queueFamilies []*core1_0.QueueFamilyProperties) []selection.QueueFamily {
	converted := make([]selection.QueueFamily, 0, len(queueFamilies))
	for queueFamilyIdx, queueFamily := range queueFamilies {
		converted = append(converted, selection.QueueFamily{
			Index:      queueFamilyIdx,
			Flags:      selection.QueueFlags(queueFamily.QueueFlags),
			QueueCount: queueFamily.QueueCount,
		})
	}
	return converted
}

func convertExtent(extent core1_0.Extent2D) selection.Extent2D {
	return selection.Extent2D{Width: extent.Width, Height: extent.Height}
}

func convertCapabilities(capabilities *khr_surface.SurfaceCapabilities) *selection.SurfaceCapabilities {
	converted := &selection.SurfaceCapabilities{
		MinImageCount:    capabilities.MinImageCount,
		MaxImageCount:    capabilities.MaxImageCount,
		CurrentExtent:    convertExtent(capabilities.CurrentExtent),
		MinImageExtent:   convertExtent(capabilities.MinImageExtent),
		MaxImageExtent:   convertExtent(capabilities.MaxImageExtent),
		CurrentTransform: selection.SurfaceTransform(capabilities.CurrentTransform),
	}

	// The driver reports 0xFFFFFFFF, which arrives as either -1 or
	// MaxUint32 depending on how it was widened.
	if uint32(capabilities.CurrentExtent.Width) == math.MaxUint32 {
		converted.CurrentExtent = selection.Extent2D{
			Width:  selection.UndefinedExtent,
			Height: selection.UndefinedExtent,
		}
	}

	return converted
}

func convertFormats(formats []khr_surface.SurfaceFormat) []selection.SurfaceFormat {
	converted := make([]selection.SurfaceFormat, 0, len(formats))
	for _, format := range formats {
		converted = append(converted, selection.SurfaceFormat{
			Format:     selection.Format(format.Format),
			ColorSpace: selection.ColorSpace(format.ColorSpace),
		})
	}
	return converted
}

func convertPresentModes(presentModes []khr_surface.PresentMode) []selection.PresentMode {
	converted := make([]selection.PresentMode, 0, len(presentModes))
	for _, presentMode := range presentModes {
		converted = append(converted, selection.PresentMode(presentMode))
	}
	return converted
}

func sharingMode(mode selection.SharingMode) core1_0.SharingMode {
	if mode == selection.SharingModeConcurrent {
		return core1_0.SharingModeConcurrent
	}
	return core1_0.SharingModeExclusive
}
