package editor

import (
	"fmt"
	"strings"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
)

// WeekdayPreset returns the weekday selection for a preset name:
// "weekdays" (Mon-Fri), "weekends" (Sat, Sun) or "all".
func WeekdayPreset(name string) (cronexpr.Selection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case constants.PresetWeekdays:
		return cronexpr.Explicit(1, 2, 3, 4, 5), nil
	case constants.PresetWeekends:
		return cronexpr.Explicit(0, 6), nil
	case constants.PresetAll:
		return cronexpr.All(), nil
	default:
		return cronexpr.Selection{}, fmt.Errorf("unknown weekday preset %q (expected: %s, %s, %s)",
			name, constants.PresetWeekdays, constants.PresetWeekends, constants.PresetAll)
	}
}
