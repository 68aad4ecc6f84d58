package vkbackend

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"

	"github.com/vkngwrapper/swapchainpick/selection"
)

// LogicalDevice is the device created for a selection, with one queue
// fetched from each assigned family.
type LogicalDevice struct {
	Driver        core1_0.CoreDeviceDriver
	GraphicsQueue core1_0.Queue
	PresentQueue  core1_0.Queue
}

func (d *LogicalDevice) Destroy() {
	d.Driver.DestroyDevice(nil)
}

func queueCreateInfos(queues selection.QueueFamilyAssignment) []core1_0.DeviceQueueCreateInfo {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range queues.UniqueFamilies() {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}
	return queueFamilyOptions
}

// CreateLogicalDevice creates a device for the selected physical device
// with the required extensions and features enabled. Validation layers are
// enabled on the instance only; device layers are deprecated.
func CreateLogicalDevice(instanceDriver core1_0.CoreInstanceDriver, selected *selection.Selection, requirements selection.Requirements) (*LogicalDevice, error) {
	if !selected.Queues.IsComplete() {
		return nil, errors.New("createlogicaldevice: queue family assignment is incomplete")
	}

	handle, err := physicalDeviceHandle(selected.Device)
	if err != nil {
		return nil, err
	}

	extensions, _, err := instanceDriver.EnumerateDeviceExtensionProperties(handle)
	if err != nil {
		return nil, errors.Wrap(err, "createlogicaldevice: enumerate extensions")
	}

	device, _, err := instanceDriver.CreateDevice(handle, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueCreateInfos(selected.Queues),
		EnabledFeatures:       enabledFeatures(requirements.RequiredFeatures),
		EnabledExtensionNames: deviceExtensionNames(requirements.RequiredExtensions, extensions),
	})
	if err != nil {
		return nil, errors.Wrap(err, "createlogicaldevice")
	}

	deviceDriver, err := instanceDriver.BuildDeviceDriver(device)
	if err != nil {
		return nil, errors.Wrap(err, "createlogicaldevice: build device driver")
	}

	return &LogicalDevice{
		Driver:        deviceDriver,
		GraphicsQueue: deviceDriver.GetQueue(*selected.Queues.GraphicsFamily, 0),
		PresentQueue:  deviceDriver.GetQueue(*selected.Queues.PresentFamily, 0),
	}, nil
}

// deviceExtensionNames lists the required extensions, plus the portability
// subset when the device offers it. Each name appears once.
func deviceExtensionNames(required []string, available map[string]*core1_0.ExtensionProperties) []string {
	var extensionNames []string
	seen := make(map[string]struct{}, len(required)+1)
	for _, name := range required {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		extensionNames = append(extensionNames, name)
	}

	// Makes this compatible with vulkan portability, necessary to run on mobile & mac
	if _, supported := available[khr_portability_subset.ExtensionName]; supported {
		if _, listed := seen[khr_portability_subset.ExtensionName]; !listed {
			extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
		}
	}

	return extensionNames
}
