package tmux

import (
	"strconv"
	"strings"
	"time"
)

// statusFields is the number of tab-separated fields per status line.
const statusFields = 6

// statusFormat is the list-sessions format whose output ParseSessions reads.
const statusFormat = "#{session_name}\t#{session_attached}\t#{session_activity}\t#{session_created}\t#{pane_current_path}\t#{session_windows}"

// Epochs are accepted for years 1 through 9999, the range time.Time formats
// with a four-digit year. tmux only reports times near the present, so a value
// outside it means corrupt output rather than a real session.
var (
	minEpoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxEpoch = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// ParseSessions converts list-sessions output into sessions, preserving line
// order. Blank lines are skipped. Any malformed line fails the whole parse.
func ParseSessions(raw string) ([]Session, error) {
	sessions := make([]Session, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		session, err := parseSessionLine(line)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func parseSessionLine(line string) (Session, error) {
	parts := strings.Split(line, "\t")
	if len(parts) < statusFields {
		return Session{}, parseError("expected %d fields, got %d: %s", statusFields, len(parts), line)
	}

	attached, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Session{}, parseError("invalid attached count: %s", parts[1])
	}
	activityEpoch, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Session{}, parseError("invalid activity timestamp: %s", parts[2])
	}
	createdEpoch, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Session{}, parseError("invalid created timestamp: %s", parts[3])
	}
	lastActivity, ok := epochToUTC(activityEpoch)
	if !ok {
		return Session{}, parseError("invalid activity epoch: %d", activityEpoch)
	}
	createdAt, ok := epochToUTC(createdEpoch)
	if !ok {
		return Session{}, parseError("invalid created epoch: %d", createdEpoch)
	}
	windows, err := strconv.ParseUint(parts[5], 10, 32)
	if err != nil {
		return Session{}, parseError("invalid window count: %s", parts[5])
	}

	return Session{
		Name:             parts[0],
		Status:           statusForClients(uint32(attached)),
		WorkingDirectory: parts[4],
		LastActivity:     lastActivity,
		CreatedAt:        createdAt,
		WindowCount:      uint32(windows),
	}, nil
}

func epochToUTC(epoch int64) (time.Time, bool) {
	if epoch < minEpoch || epoch > maxEpoch {
		return time.Time{}, false
	}
	return time.Unix(epoch, 0).UTC(), true
}
