package selection

// classScores is the base score for each device class. Classes missing
// from the table, DeviceClassOther included, get no base score.
var classScores = map[DeviceClass]Score{
	DeviceClassDiscrete:   100,
	DeviceClassIntegrated: 30,
	DeviceClassCPU:        10,
	DeviceClassVirtual:    5,
}

// resolutionDivisor turns the largest supported 2D image dimension into
// bonus points.
const resolutionDivisor = 128

func classScore(class DeviceClass) Score {
	score, ok := classScores[class]
	if !ok {
		return 0
	}
	return score
}

// rateDevice scores a device that already passed every requirement.
func rateDevice(properties *DeviceProperties) Score {
	score := classScore(properties.Class)
	score += Score(properties.MaxImageDimension2D / resolutionDivisor)
	return score
}
