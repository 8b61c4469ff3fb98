// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Seconds between the NTP epoch (1900) and the Unix epoch (1970), per
// RFC 4566 section 5.9.
const ntpEpochOffset = 2208988800

// Timing errors returned while parsing "t=", "r=" and "z=" field values.
var (
	ErrTimingSyntax     = errors.New("timing must be <start-time> <stop-time>")
	ErrRepeatTimeSyntax = errors.New("repeat time must be <repeat interval> <active duration> <offsets from start-time>")
	ErrTimeZonesSyntax  = errors.New("time zones must be <adjustment time> <offset> pairs")
	ErrInvalidTimeValue = errors.New("invalid time value")
)

// Timing defines the start and stop times of the "t=" field, as decimal
// counts of NTP seconds (seconds since 1900).
type Timing struct {
	StartTime uint64
	StopTime  uint64
}

// IsUnbounded reports whether the session has no stop time. An unbounded
// session still does not become active until after its start time.
func (t Timing) IsUnbounded() bool {
	return t.StopTime == 0
}

// IsPermanent reports whether the session is regarded as permanent, which
// is the case when both times are zero.
func (t Timing) IsPermanent() bool {
	return t.StartTime == 0 && t.StopTime == 0
}

func (t Timing) String() string {
	return fmt.Sprintf("%d %d", t.StartTime, t.StopTime)
}

// UnmarshalTiming parses the value of a "t=" line: two unsigned decimal
// tokens.
func UnmarshalTiming(raw string) (Timing, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Timing{}, fmt.Errorf("%w: %q", ErrTimingSyntax, raw)
	}

	start, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Timing{}, fmt.Errorf("%w: %q", ErrInvalidTimeValue, fields[0])
	}
	stop, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Timing{}, fmt.Errorf("%w: %q", ErrInvalidTimeValue, fields[1])
	}

	return Timing{StartTime: start, StopTime: stop}, nil
}

// RepeatTime describes one "r=" field of a scheduled session: a repeat
// interval, an active duration and offsets relative to the start time of
// the owning Timing. All values are second counts.
type RepeatTime struct {
	Interval       uint64
	ActiveDuration uint64
	Offsets        []int64
}

// IntervalDuration returns the repeat interval as a time.Duration.
func (r RepeatTime) IntervalDuration() time.Duration {
	return time.Duration(r.Interval) * time.Second
}

// ActiveAsDuration returns the active duration as a time.Duration.
func (r RepeatTime) ActiveAsDuration() time.Duration {
	return time.Duration(r.ActiveDuration) * time.Second
}

// String renders the field value in the RFC 4566 section 5.10 token
// order: <repeat interval> <active duration> <offsets from start-time>.
func (r RepeatTime) String() string {
	fields := []string{
		strconv.FormatUint(r.Interval, 10),
		strconv.FormatUint(r.ActiveDuration, 10),
	}
	for _, offset := range r.Offsets {
		fields = append(fields, strconv.FormatInt(offset, 10))
	}

	return strings.Join(fields, " ")
}

// UnmarshalRepeatTime parses the value of an "r=" line: interval and
// duration tokens followed by zero or more signed offset tokens.
func UnmarshalRepeatTime(raw string) (RepeatTime, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return RepeatTime{}, fmt.Errorf("%w: %q", ErrRepeatTimeSyntax, raw)
	}

	interval, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return RepeatTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeValue, fields[0])
	}
	duration, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return RepeatTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeValue, fields[1])
	}

	repeat := RepeatTime{Interval: interval, ActiveDuration: duration}
	for _, field := range fields[2:] {
		offset, offErr := strconv.ParseInt(field, 10, 64)
		if offErr != nil {
			return RepeatTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeValue, field)
		}
		repeat.Offsets = append(repeat.Offsets, offset)
	}

	return repeat, nil
}

// TimeZone describes a single timezone adjustment rule of the "z=" field.
// Adjustments are relative to the specified adjustment time, not
// cumulative.
type TimeZone struct {
	AdjustmentTime uint64
	Offset         int64
}

func (z TimeZone) String() string {
	return fmt.Sprintf("%d %d", z.AdjustmentTime, z.Offset)
}

// UnmarshalTimeZones parses the value of a "z=" line: one or more
// adjustment/offset pairs, order preserved.
func UnmarshalTimeZones(raw string) ([]TimeZone, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrTimeZonesSyntax, raw)
	}

	zones := make([]TimeZone, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		adjustment, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeValue, fields[i])
		}
		offset, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeValue, fields[i+1])
		}
		zones = append(zones, TimeZone{AdjustmentTime: adjustment, Offset: offset})
	}

	return zones, nil
}

// TimeDescription aggregates one Timing with its repeat times. Repeat
// order is meaningful for scheduling and is preserved as given.
type TimeDescription struct {
	Timing      Timing
	RepeatTimes []RepeatTime
}

// NTPToTime converts an SDP NTP second count to a time.Time.
func NTPToTime(ntp uint64) time.Time {
	return time.Unix(int64(ntp)-ntpEpochOffset, 0) //nolint:gosec
}

// TimeToNTP converts t to seconds since the NTP epoch.
func TimeToNTP(t time.Time) uint64 {
	return uint64(t.Unix() + ntpEpochOffset) //nolint:gosec
}
