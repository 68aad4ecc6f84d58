package selection

import (
	"fmt"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
)

// Candidate is the outcome of evaluating one device.
type Candidate struct {
	Device     Device
	Properties *DeviceProperties
	Queues     QueueFamilyAssignment
	Score      Score

	// Order is the device's position in the enumeration.
	Order int
	// Rejection says why the device is unsuitable. Empty when suitable.
	Rejection string
}

func (c *Candidate) Suitable() bool {
	return c.Rejection == ""
}

// Selection is the winning device along with everything learned about it.
type Selection struct {
	Device     Device
	Properties *DeviceProperties
	Queues     QueueFamilyAssignment
	Score      Score

	// Ranking holds every candidate, best first.
	Ranking []Candidate
}

type Selector struct {
	requirements Requirements
	logger       logrus.FieldLogger
}

func NewSelector(requirements Requirements, logger logrus.FieldLogger) *Selector {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Selector{
		requirements: requirements,
		logger:       logger,
	}
}

// IsSuitable reports whether the device meets every requirement when
// paired with the surface.
func (s *Selector) IsSuitable(device Device, surface Surface) (bool, error) {
	candidate, err := s.evaluate(device, surface, s.logger)
	if err != nil {
		return false, err
	}
	return candidate.Suitable(), nil
}

// Score rates the device against the surface. Unsuitable devices score
// zero; suitability is always re-derived rather than taken on trust.
func (s *Selector) Score(device Device, surface Surface) (Score, error) {
	candidate, err := s.evaluate(device, surface, s.logger)
	if err != nil {
		return 0, err
	}
	return candidate.Score, nil
}

// Select scores every device and returns the best one. Equal scores go to
// whichever device was enumerated first.
func (s *Selector) Select(devices []Device, surface Surface) (*Selection, error) {
	start := hrtime.Now()
	logger := s.logger.WithField("run", uuid.New().String())

	candidates := make([]Candidate, 0, len(devices))
	for order, device := range devices {
		candidate, err := s.evaluate(device, surface, logger)
		if err != nil {
			return nil, err
		}
		candidate.Order = order
		candidates = append(candidates, candidate)

		logger.WithFields(logrus.Fields{
			"device": candidate.Properties.Name,
			"class":  candidate.Properties.Class,
			"score":  candidate.Score,
		}).Info("rated device")
	}

	ranking := Rank(candidates)
	logger = logger.WithField("elapsed", hrtime.Since(start))

	if len(ranking) == 0 || ranking[0].Score <= 0 {
		logger.WithField("devices", len(devices)).Error("no device satisfies the requirements")
		return nil, errors.Wrapf(ErrNoSuitableDevice, "%d devices considered", len(devices))
	}

	best := ranking[0]
	logger.WithFields(logrus.Fields{
		"device": best.Properties.Name,
		"score":  best.Score,
	}).Info("selected physical device")

	return &Selection{
		Device:     best.Device,
		Properties: best.Properties,
		Queues:     best.Queues,
		Score:      best.Score,
		Ranking:    ranking,
	}, nil
}

// Rank orders candidates by descending score. Candidates with equal
// scores keep their enumeration order.
func Rank(candidates []Candidate) []Candidate {
	ranking := make([]Candidate, len(candidates))
	copy(ranking, candidates)

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score > ranking[j].Score
		}
		return ranking[i].Order < ranking[j].Order
	})

	return ranking
}

func (s *Selector) evaluate(device Device, surface Surface, logger logrus.FieldLogger) (Candidate, error) {
	candidate := Candidate{Device: device}

	properties, err := device.Properties()
	if err != nil {
		return candidate, queryError("query device properties", "", err)
	}
	candidate.Properties = properties
	logger = logger.WithFields(logrus.Fields{
		"device": properties.Name,
		"class":  properties.Class,
	})

	candidate.Rejection, candidate.Queues, err = s.checkRequirements(device, surface, logger)
	if err != nil {
		return candidate, attachDevice(err, properties.Name)
	}

	if !candidate.Suitable() {
		logger.WithField("reason", candidate.Rejection).Debug("device rejected")
		return candidate, nil
	}

	candidate.Score = rateDevice(properties)
	return candidate, nil
}

// checkRequirements returns an empty rejection when the device is
// suitable. Checks run cheapest first and stop at the first failure.
func (s *Selector) checkRequirements(device Device, surface Surface, logger logrus.FieldLogger) (string, QueueFamilyAssignment, error) {
	var indices QueueFamilyAssignment

	features, err := device.Features()
	if err != nil {
		return "", indices, queryError("query device features", "", err)
	}
	for _, feature := range s.requirements.RequiredFeatures {
		if !features.Has(feature) {
			return fmt.Sprintf("missing feature %s", feature), indices, nil
		}
	}

	indices, err = ResolveQueueFamilies(device, surface)
	if err != nil {
		return "", indices, err
	}
	if !indices.IsComplete() {
		return "no graphics and present queue families", indices, nil
	}

	extensions, err := device.Extensions()
	if err != nil {
		return "", indices, queryError("query device extensions", "", err)
	}
	for _, extension := range s.requirements.RequiredExtensions {
		if _, hasExtension := extensions[extension]; !hasExtension {
			return fmt.Sprintf("missing extension %s", extension), indices, nil
		}
		logger.WithField("extension", extension).Debug("device supports extension")
	}

	support, err := QuerySurfaceSupport(device, surface)
	if err != nil {
		return "", indices, err
	}
	if !support.Adequate() {
		return "surface offers no formats or present modes", indices, nil
	}

	return "", indices, nil
}

func attachDevice(err error, device string) error {
	var queryErr *BackendQueryError
	if errors.As(err, &queryErr) && queryErr.Device == "" {
		queryErr.Device = device
	}
	return err
}
