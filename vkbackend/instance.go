package vkbackend

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"

	"github.com/vkngwrapper/swapchainpick/selection"
)

// CreateInstance creates the Vulkan instance with the extensions SDL needs
// for the window, portability enumeration when the loader offers it, and
// debug utils plus validation layers when validation is enabled.
func CreateInstance(globalDriver core1_0.GlobalDriver, window *sdl.Window, requirements selection.Requirements, logger logrus.FieldLogger) (core1_0.CoreInstanceDriver, error) {
	return createInstance(globalDriver, window.VulkanGetInstanceExtensions(), requirements, logger)
}

func createInstance(globalDriver core1_0.GlobalDriver, windowExtensions []string, requirements selection.Requirements, logger logrus.FieldLogger) (core1_0.CoreInstanceDriver, error) {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    "swapchainpick",
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	extensions, _, err := globalDriver.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "createinstance: enumerate extensions")
	}

	requiredExtensions := append([]string(nil), windowExtensions...)
	if requirements.EnableValidation {
		requiredExtensions = append(requiredExtensions, ext_debug_utils.ExtensionName)
	}

	var missing []string
	for _, ext := range requiredExtensions {
		if _, hasExt := extensions[ext]; !hasExt {
			missing = append(missing, ext)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("createinstance: missing required instance extensions: %s", strings.Join(missing, ", "))
	}
	instanceOptions.EnabledExtensionNames = requiredExtensions

	if _, enumerationSupported := extensions[khr_portability_enumeration.ExtensionName]; enumerationSupported {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if requirements.EnableValidation {
		layers, _, err := globalDriver.AvailableLayers()
		if err != nil {
			return nil, errors.Wrap(err, "createinstance: enumerate layers")
		}

		for _, layer := range requirements.ActiveValidationLayers() {
			if _, hasValidation := layers[layer]; !hasValidation {
				return nil, errors.Errorf("createinstance: cannot add validation layer %s: not available, install the LunarG Vulkan SDK", layer)
			}
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}

		instanceOptions.Next = debugMessengerOptions(logger)
	}

	instance, _, err := globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return nil, errors.Wrap(err, "createinstance")
	}

	instanceDriver, err := globalDriver.BuildInstanceDriver(instance)
	if err != nil {
		return nil, errors.Wrap(err, "createinstance: build instance driver")
	}

	return instanceDriver, nil
}

// DebugMessenger forwards validation layer messages to a logger.
type DebugMessenger struct {
	driver    ext_debug_utils.ExtensionDriver
	messenger ext_debug_utils.DebugUtilsMessenger
}

// NewDebugMessenger returns nil without error when validation is disabled.
func NewDebugMessenger(instanceDriver core1_0.CoreInstanceDriver, requirements selection.Requirements, logger logrus.FieldLogger) (*DebugMessenger, error) {
	if !requirements.EnableValidation {
		return nil, nil
	}

	driver := ext_debug_utils.CreateExtensionDriverFromCoreDriver(instanceDriver)
	messenger, _, err := driver.CreateDebugUtilsMessenger(nil, debugMessengerOptions(logger))
	if err != nil {
		return nil, errors.Wrap(err, "create debug messenger")
	}

	return &DebugMessenger{driver: driver, messenger: messenger}, nil
}

func (m *DebugMessenger) Destroy() {
	if m == nil {
		return
	}
	m.driver.DestroyDebugUtilsMessenger(m.messenger, nil)
}

func debugMessengerOptions(logger logrus.FieldLogger) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    logDebug(logger),
	}
}

func logDebug(logger logrus.FieldLogger) func(ext_debug_utils.DebugUtilsMessageTypeFlags, ext_debug_utils.DebugUtilsMessageSeverityFlags, *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	return func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
		entry := logger.WithFields(logrus.Fields{
			"type":     msgType.String(),
			"severity": severity.String(),
		})

		if severity&ext_debug_utils.SeverityError != 0 {
			entry.Error(data.Message)
		} else {
			entry.Warn(data.Message)
		}

		// Returning true would abort the call that triggered the message.
		return false
	}
}
