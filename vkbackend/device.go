// Package vkbackend runs device selection against a real Vulkan driver
// through vkngwrapper, and hosts the setup steps around it: instance,
// debug messenger, surface, logical device and swapchain.
package vkbackend

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/vkngwrapper/swapchainpick/selection"
)

// PhysicalDevice adapts a vkngwrapper physical device to selection.Device.
type PhysicalDevice struct {
	driver core1_0.CoreInstanceDriver
	handle core1_0.PhysicalDevice
}

func NewPhysicalDevice(driver core1_0.CoreInstanceDriver, handle core1_0.PhysicalDevice) *PhysicalDevice {
	return &PhysicalDevice{driver: driver, handle: handle}
}

func (d *PhysicalDevice) Handle() core1_0.PhysicalDevice {
	return d.handle
}

func (d *PhysicalDevice) Properties() (*selection.DeviceProperties, error) {
	properties, err := d.driver.GetPhysicalDeviceProperties(d.handle)
	if err != nil {
		return nil, err
	}
	return convertProperties(properties), nil
}

func (d *PhysicalDevice) Features() (selection.FeatureSet, error) {
	return convertFeatures(d.driver.GetPhysicalDeviceFeatures(d.handle)), nil
}

func (d *PhysicalDevice) Extensions() (map[string]struct{}, error) {
	extensions, _, err := d.driver.EnumerateDeviceExtensionProperties(d.handle)
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(extensions))
	for name := range extensions {
		names[name] = struct{}{}
	}
	return names, nil
}

func (d *PhysicalDevice) QueueFamilies() ([]selection.QueueFamily, error) {
	return convertQueueFamilies(d.driver.GetPhysicalDeviceQueueFamilyProperties(d.handle)), nil
}

// EnumerateDevices lists every physical device the instance exposes, in
// driver order.
func EnumerateDevices(driver core1_0.CoreInstanceDriver) ([]selection.Device, error) {
	physicalDevices, _, err := driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate physical devices")
	}

	devices := make([]selection.Device, 0, len(physicalDevices))
	for _, physicalDevice := range physicalDevices {
		devices = append(devices, NewPhysicalDevice(driver, physicalDevice))
	}
	return devices, nil
}

func physicalDeviceHandle(device selection.Device) (core1_0.PhysicalDevice, error) {
	physicalDevice, ok := device.(*PhysicalDevice)
	if !ok {
		return core1_0.PhysicalDevice{}, errors.Errorf("vkbackend: device of type %T was not enumerated by vkbackend", device)
	}
	return physicalDevice.handle, nil
}
