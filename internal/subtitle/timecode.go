package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// clockPattern accepts HH:MM:SS followed by a comma or period and three
// millisecond digits. Trailing content is ignored.
var clockPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})`)

// TimeToSeconds converts an HH:MM:SS.mmm timecode to seconds. Both comma and
// period decimal separators are accepted. Unparseable input yields 0.0, which
// callers cannot distinguish from a genuine zero timestamp.
func TimeToSeconds(timecode string) float64 {
	m := clockPattern.FindStringSubmatch(timecode)
	if m == nil {
		return 0.0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	millis, _ := strconv.Atoi(m[4])
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}

// SecondsToTime formats seconds as HH:MM:SS.mmm. Each field is floored and
// the millisecond remainder is truncated, never rounded.
func SecondsToTime(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	millis := int(math.Mod(seconds, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}
