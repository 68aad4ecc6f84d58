package selection

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// The numeric values of DeviceClass, Format, ColorSpace and PresentMode
// match their Vulkan counterparts so backends can convert by casting.

type DeviceClass int32

const (
	DeviceClassOther DeviceClass = iota
	DeviceClassIntegrated
	DeviceClassDiscrete
	DeviceClassVirtual
	DeviceClassCPU
)

var deviceClassNames = map[DeviceClass]string{
	DeviceClassOther:      "other",
	DeviceClassIntegrated: "integrated",
	DeviceClassDiscrete:   "discrete",
	DeviceClassVirtual:    "virtual",
	DeviceClassCPU:        "cpu",
}

func (c DeviceClass) String() string {
	if name, ok := deviceClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("DeviceClass(%d)", int32(c))
}

type Format int32

const (
	FormatUndefined          Format = 0
	FormatR8G8B8A8UNorm      Format = 37
	FormatR8G8B8A8SRGB       Format = 43
	FormatB8G8R8A8UNorm      Format = 44
	FormatB8G8R8A8SRGB       Format = 50
	FormatA2B10G10R10UNorm   Format = 64
	FormatR16G16B16A16SFloat Format = 97
)

var formatNames = map[Format]string{
	FormatUndefined:          "UNDEFINED",
	FormatR8G8B8A8UNorm:      "R8G8B8A8_UNORM",
	FormatR8G8B8A8SRGB:       "R8G8B8A8_SRGB",
	FormatB8G8R8A8UNorm:      "B8G8R8A8_UNORM",
	FormatB8G8R8A8SRGB:       "B8G8R8A8_SRGB",
	FormatA2B10G10R10UNorm:   "A2B10G10R10_UNORM_PACK32",
	FormatR16G16B16A16SFloat: "R16G16B16A16_SFLOAT",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

func (f *Format) UnmarshalText(text []byte) error {
	for value, name := range formatNames {
		if name == string(text) {
			*f = value
			return nil
		}
	}
	return errors.Errorf("unknown format %q", text)
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

type ColorSpace int32

const (
	ColorSpaceSRGBNonlinear      ColorSpace = 0
	ColorSpaceDisplayP3Nonlinear ColorSpace = 1000104001
	ColorSpaceExtendedSRGBLinear ColorSpace = 1000104002
	ColorSpaceHDR10ST2084        ColorSpace = 1000104008
)

var colorSpaceNames = map[ColorSpace]string{
	ColorSpaceSRGBNonlinear:      "SRGB_NONLINEAR",
	ColorSpaceDisplayP3Nonlinear: "DISPLAY_P3_NONLINEAR",
	ColorSpaceExtendedSRGBLinear: "EXTENDED_SRGB_LINEAR",
	ColorSpaceHDR10ST2084:        "HDR10_ST2084",
}

func (c ColorSpace) String() string {
	if name, ok := colorSpaceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ColorSpace(%d)", int32(c))
}

func (c *ColorSpace) UnmarshalText(text []byte) error {
	for value, name := range colorSpaceNames {
		if name == string(text) {
			*c = value
			return nil
		}
	}
	return errors.Errorf("unknown color space %q", text)
}

func (c ColorSpace) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type PresentMode int32

const (
	PresentModeImmediate PresentMode = iota
	PresentModeMailbox
	PresentModeFIFO
	PresentModeFIFORelaxed
)

var presentModeNames = map[PresentMode]string{
	PresentModeImmediate:   "IMMEDIATE",
	PresentModeMailbox:     "MAILBOX",
	PresentModeFIFO:        "FIFO",
	PresentModeFIFORelaxed: "FIFO_RELAXED",
}

func (m PresentMode) String() string {
	if name, ok := presentModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("PresentMode(%d)", int32(m))
}

func (m *PresentMode) UnmarshalText(text []byte) error {
	for value, name := range presentModeNames {
		if name == string(text) {
			*m = value
			return nil
		}
	}
	return errors.Errorf("unknown present mode %q", text)
}

func (m PresentMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
