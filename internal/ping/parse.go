package ping

import (
	"regexp"
	"strconv"
	"strings"

	"connectivity-report/internal/models"
)

// Format identifies the ping output dialect to parse.
type Format int

const (
	// FormatUnix covers Linux, macOS and the BSDs.
	FormatUnix Format = iota
	// FormatWindows covers the Windows ping utility.
	FormatWindows
)

// FormatFor maps a GOOS value to the output format its ping produces.
func FormatFor(goos string) Format {
	if goos == "windows" {
		return FormatWindows
	}
	return FormatUnix
}

var (
	// Windows: "Packets: Sent = 4, Received = 2, Lost = 2 (50% loss)"
	winSentRe     = regexp.MustCompile(`Sent = (\d+)`)
	winReceivedRe = regexp.MustCompile(`Received = (\d+)`)
	winLossRe     = regexp.MustCompile(`\((\d+)% loss\)`)
	// Windows per-reply: "Reply from 8.8.8.8: bytes=32 time=15ms TTL=118"
	// or "time<1ms" for sub-millisecond replies
	winTimeRe = regexp.MustCompile(`time[=<](\d+)ms`)
	// Windows: "Minimum = 14ms, Maximum = 16ms, Average = 15ms"
	winAvgRe = regexp.MustCompile(`Average = (\d+)ms`)

	// Unix: "0% packet loss" (loss field of the transmitted line)
	unixLossRe = regexp.MustCompile(`(\d+)%`)
	// Unix: "rtt min/avg/max/mdev = 10.0/12.5/15.0/2.1 ms"
	unixTimesRe = regexp.MustCompile(`= ([\d.]+)/([\d.]+)/([\d.]+)`)
)

// ParseStats extracts packet counts, loss percentage and latency values
// from raw ping output. Lines that do not match leave the corresponding
// fields at zero; parsing never fails outright.
func ParseStats(output string, format Format) models.PingStats {
	var stats models.PingStats
	if format == FormatWindows {
		stats = parseWindows(output)
	} else {
		stats = parseUnix(output)
	}

	// Received cannot exceed sent
	if stats.Received > stats.Sent {
		stats.Received = stats.Sent
	}
	return stats
}

// parseWindows scans Windows-style ping output.
func parseWindows(output string) models.PingStats {
	var stats models.PingStats

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.Contains(line, "Packets:"):
			if m := winSentRe.FindStringSubmatch(line); m != nil {
				stats.Sent, _ = strconv.Atoi(m[1])
			}
			if m := winReceivedRe.FindStringSubmatch(line); m != nil {
				stats.Received, _ = strconv.Atoi(m[1])
			}
			if m := winLossRe.FindStringSubmatch(line); m != nil {
				stats.LossPct, _ = strconv.Atoi(m[1])
			}

		case strings.Contains(line, "time="), strings.Contains(line, "time<"):
			if m := winTimeRe.FindStringSubmatch(line); m != nil {
				if t, err := strconv.ParseFloat(m[1], 64); err == nil {
					if stats.MinMs == 0 || t < stats.MinMs {
						stats.MinMs = t
					}
					if t > stats.MaxMs {
						stats.MaxMs = t
					}
				}
			}

		case strings.Contains(line, "Average"):
			if m := winAvgRe.FindStringSubmatch(line); m != nil {
				stats.AvgMs, _ = strconv.ParseFloat(m[1], 64)
			}
		}
	}

	return stats
}

// parseUnix scans Unix-style ping output. The transmitted line is
// comma-delimited: "4 packets transmitted, 4 received, 0% packet loss".
func parseUnix(output string) models.PingStats {
	var stats models.PingStats

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.Contains(line, "packets transmitted"):
			parts := strings.Split(line, ",")
			stats.Sent = firstInt(parts[0])
			if len(parts) > 1 {
				stats.Received = firstInt(parts[1])
			}
			if len(parts) > 2 {
				if m := unixLossRe.FindStringSubmatch(parts[2]); m != nil {
					stats.LossPct, _ = strconv.Atoi(m[1])
				}
			}

		case strings.Contains(line, "min/avg/max"):
			if m := unixTimesRe.FindStringSubmatch(line); m != nil {
				stats.MinMs, _ = strconv.ParseFloat(m[1], 64)
				stats.AvgMs, _ = strconv.ParseFloat(m[2], 64)
				stats.MaxMs, _ = strconv.ParseFloat(m[3], 64)
			}
		}
	}

	return stats
}

// firstInt returns the first whitespace-separated field of s as an int,
// or zero if it is missing or not numeric.
func firstInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(fields[0])
	return n
}
