package selection

import (
	"github.com/cockroachdb/errors"
)

const (
	SwapchainExtensionName = "VK_KHR_swapchain"
	KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"
)

// Feature names a boolean physical device feature, spelled the way the
// Vulkan headers spell the VkPhysicalDeviceFeatures member.
type Feature string

const (
	FeatureGeometryShader     Feature = "geometryShader"
	FeatureTessellationShader Feature = "tessellationShader"
	FeatureSamplerAnisotropy  Feature = "samplerAnisotropy"
	FeatureFillModeNonSolid   Feature = "fillModeNonSolid"
	FeatureWideLines          Feature = "wideLines"
	FeatureMultiViewport      Feature = "multiViewport"
	FeatureShaderInt64        Feature = "shaderInt64"
	FeatureShaderFloat64      Feature = "shaderFloat64"
	FeatureSampleRateShading  Feature = "sampleRateShading"
	FeatureIndependentBlend   Feature = "independentBlend"
)

// KnownFeatures lists every Feature a backend is expected to report.
var KnownFeatures = []Feature{
	FeatureGeometryShader,
	FeatureTessellationShader,
	FeatureSamplerAnisotropy,
	FeatureFillModeNonSolid,
	FeatureWideLines,
	FeatureMultiViewport,
	FeatureShaderInt64,
	FeatureShaderFloat64,
	FeatureSampleRateShading,
	FeatureIndependentBlend,
}

func (f Feature) Known() bool {
	for _, known := range KnownFeatures {
		if f == known {
			return true
		}
	}
	return false
}

// FeatureSet holds the features a device reports. Absent keys are false.
type FeatureSet map[Feature]bool

func (s FeatureSet) Has(f Feature) bool {
	return s[f]
}

// Requirements is the catalog every candidate device is held against, and
// the source of the preferences used during swapchain negotiation.
type Requirements struct {
	RequiredFeatures   []Feature `yaml:"features"`
	RequiredExtensions []string  `yaml:"extensions"`

	PreferredFormat      SurfaceFormat `yaml:"preferredFormat"`
	PreferredPresentMode PresentMode   `yaml:"preferredPresentMode"`
	// FallbackPresentMode is assumed to always be available.
	FallbackPresentMode PresentMode `yaml:"fallbackPresentMode"`

	EnableValidation bool     `yaml:"validation"`
	ValidationLayers []string `yaml:"validationLayers"`
}

func DefaultRequirements() Requirements {
	return Requirements{
		RequiredFeatures:   []Feature{FeatureGeometryShader},
		RequiredExtensions: []string{SwapchainExtensionName},
		PreferredFormat: SurfaceFormat{
			Format:     FormatB8G8R8A8SRGB,
			ColorSpace: ColorSpaceSRGBNonlinear,
		},
		PreferredPresentMode: PresentModeMailbox,
		FallbackPresentMode:  PresentModeFIFO,
		EnableValidation:     true,
		ValidationLayers:     []string{KhronosValidationLayer},
	}
}

func (r Requirements) Validate() error {
	for _, feature := range r.RequiredFeatures {
		if !feature.Known() {
			return errors.Errorf("requirements: unknown feature %q", feature)
		}
	}

	for i, extension := range r.RequiredExtensions {
		if extension == "" {
			return errors.Errorf("requirements: extension %d has an empty name", i)
		}
	}

	if r.EnableValidation {
		for i, layer := range r.ValidationLayers {
			if layer == "" {
				return errors.Errorf("requirements: validation layer %d has an empty name", i)
			}
		}
	}

	return nil
}

// ActiveValidationLayers returns the layers to enable, which is none at all
// when validation is switched off.
func (r Requirements) ActiveValidationLayers() []string {
	if !r.EnableValidation {
		return nil
	}
	return r.ValidationLayers
}
