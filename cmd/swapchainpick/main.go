package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/vkngwrapper/swapchainpick/config"
	"github.com/vkngwrapper/swapchainpick/selection"
	"github.com/vkngwrapper/swapchainpick/vkbackend"
)

type SwapchainPickApplication struct {
	cfg    config.Config
	logger *logrus.Logger
	hold   bool

	window *sdl.Window

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	debugMessenger *vkbackend.DebugMessenger
	surface        *vkbackend.Surface

	selection     *selection.Selection
	logicalDevice *vkbackend.LogicalDevice
	swapchain     *vkbackend.Swapchain
}

func (app *SwapchainPickApplication) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.cleanup()

	err = app.initVulkan()
	if err != nil {
		return err
	}

	app.report()

	if app.hold {
		app.mainLoop()
	}
	return nil
}

func (app *SwapchainPickApplication) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_VULKAN)
	if app.cfg.Window.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(app.cfg.Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(app.cfg.Window.Width), int32(app.cfg.Window.Height), flags)
	if err != nil {
		return err
	}
	app.window = window

	app.globalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}

	return nil
}

func (app *SwapchainPickApplication) initVulkan() error {
	requirements := app.cfg.Requirements

	var err error
	app.instanceDriver, err = vkbackend.CreateInstance(app.globalDriver, app.window, requirements, app.logger)
	if err != nil {
		return err
	}

	app.debugMessenger, err = vkbackend.NewDebugMessenger(app.instanceDriver, requirements, app.logger)
	if err != nil {
		return err
	}

	app.surface, err = vkbackend.CreateSurface(app.instanceDriver, app.window)
	if err != nil {
		return err
	}

	err = app.pickPhysicalDevice()
	if err != nil {
		return err
	}

	app.logicalDevice, err = vkbackend.CreateLogicalDevice(app.instanceDriver, app.selection, requirements)
	if err != nil {
		return err
	}

	return app.createSwapchain()
}

func (app *SwapchainPickApplication) pickPhysicalDevice() error {
	devices, err := vkbackend.EnumerateDevices(app.instanceDriver)
	if err != nil {
		return err
	}

	app.logger.WithField("count", len(devices)).Info("physical devices found")

	app.selection, err = selection.NewSelector(app.cfg.Requirements, app.logger).Select(devices, app.surface)
	return err
}

func (app *SwapchainPickApplication) createSwapchain() error {
	support, err := selection.QuerySurfaceSupport(app.selection.Device, app.surface)
	if err != nil {
		return err
	}

	negotiator := selection.NewNegotiator(app.cfg.Requirements)
	presentation := negotiator.Negotiate(support, app.selection.Queues, vkbackend.DrawableSizeHint(app.window))

	app.swapchain, err = vkbackend.CreateSwapchain(app.logicalDevice, app.surface, presentation)
	return err
}

func (app *SwapchainPickApplication) report() {
	presentation := app.swapchain.Config

	for rank, candidate := range app.selection.Ranking {
		app.logger.WithFields(logrus.Fields{
			"rank":     rank + 1,
			"device":   candidate.Properties.Name,
			"class":    candidate.Properties.Class,
			"api":      candidate.Properties.APIVersion,
			"score":    candidate.Score,
			"rejected": candidate.Rejection,
		}).Info("ranking")
	}

	app.logger.WithFields(logrus.Fields{
		"device":         app.selection.Properties.Name,
		"graphicsFamily": *app.selection.Queues.GraphicsFamily,
		"presentFamily":  *app.selection.Queues.PresentFamily,
		"format":         presentation.Format,
		"colorSpace":     presentation.ColorSpace,
		"presentMode":    presentation.PresentMode,
		"extent":         fmt.Sprintf("%dx%d", presentation.Extent.Width, presentation.Extent.Height),
		"imageCount":     presentation.ImageCount,
		"images":         len(app.swapchain.Images),
		"sharingMode":    presentation.SharingMode,
	}).Info("swapchain created")
}

func (app *SwapchainPickApplication) mainLoop() {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, quit := event.(*sdl.QuitEvent); quit {
				return
			}
		}
		sdl.Delay(16)
	}
}

func (app *SwapchainPickApplication) cleanup() {
	if app.swapchain != nil {
		app.swapchain.Destroy()
	}

	if app.logicalDevice != nil {
		app.logicalDevice.Destroy()
	}

	if app.surface != nil {
		app.surface.Destroy()
	}

	app.debugMessenger.Destroy()

	if app.instanceDriver != nil {
		app.instanceDriver.DestroyInstance(nil)
	}

	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()
}

func main() {
	runtime.LockOSThread()

	options, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	cfg, err := options.load()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	logger.WithFields(options.fields()).Debug("starting")

	app := &SwapchainPickApplication{
		cfg:    cfg,
		logger: logger,
		hold:   options.hold,
	}

	err = app.Run()
	if err != nil {
		logger.Fatalf("%+v", err)
	}
}
