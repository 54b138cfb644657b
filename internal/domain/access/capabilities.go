package access

const (
	CapEditMenu     = "edit_menu"
	CapSchedules    = "schedules"
	CapNoWatermark  = "no_watermark"
	CapCustomDesign = "custom_design"
)

func CapabilitiesFor(status Status) []string {
	switch status {
	case StatusPro:
		return []string{CapEditMenu, CapSchedules, CapNoWatermark, CapCustomDesign}
	case StatusTrial:
		return []string{CapEditMenu, CapSchedules, CapNoWatermark}
	default:
		// expired: menu stays public but read-only, with watermark
		return []string{}
	}
}
