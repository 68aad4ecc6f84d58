package selection

// QueueFamilyAssignment records which queue families a device offers for
// graphics submission and for presenting to a surface. A nil index means
// no family was found.
type QueueFamilyAssignment struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i *QueueFamilyAssignment) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// Shared reports whether graphics and presentation use the same family.
func (i *QueueFamilyAssignment) Shared() bool {
	return i.IsComplete() && *i.GraphicsFamily == *i.PresentFamily
}

// UniqueFamilies lists each assigned family once, graphics first.
func (i *QueueFamilyAssignment) UniqueFamilies() []int {
	var families []int
	if i.GraphicsFamily != nil {
		families = append(families, *i.GraphicsFamily)
	}
	if i.PresentFamily != nil && (i.GraphicsFamily == nil || *i.PresentFamily != *i.GraphicsFamily) {
		families = append(families, *i.PresentFamily)
	}
	return families
}

// ResolveQueueFamilies scans the device's queue families in index order.
// The first graphics family and the first family able to present to the
// surface win, and the scan stops once both are known. An incomplete
// assignment is not an error; a failed present-support query is.
func ResolveQueueFamilies(device Device, surface Surface) (QueueFamilyAssignment, error) {
	indices := QueueFamilyAssignment{}

	queueFamilies, err := device.QueueFamilies()
	if err != nil {
		return indices, queryError("query queue families", "", err)
	}

	for _, queueFamily := range queueFamilies {
		if indices.GraphicsFamily == nil && queueFamily.Flags.Has(QueueGraphics) {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamily.Index
		}

		supported, err := surface.SupportsPresent(device, queueFamily.Index)
		if err != nil {
			return indices, queryError("query surface support", "", err)
		}

		if indices.PresentFamily == nil && supported {
			indices.PresentFamily = new(int)
			*indices.PresentFamily = queueFamily.Index
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}
