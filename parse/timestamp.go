/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"strconv"
	"strings"

	"github.com/npillmayer/orgdom/dom"
)

// matchTimestampValue parses an org timestamp at pos:
//
//	<2023-04-01 Sat 09:30-10:15 +1w -2d>
//	[2023-04-01]--[2023-04-02]
//
// It returns the parsed payload and the offset after the timestamp.
// Active and inactive stamps cannot be mixed within one range.
func (p *parser) matchTimestampValue(pos, limit int) (*dom.Timestamp, int, bool) {
	src := p.src
	if pos >= limit || (src[pos] != '<' && src[pos] != '[') {
		return nil, 0, false
	}
	active := src[pos] == '<'
	first, end, ok := parseStamp(src, pos, limit)
	if !ok {
		return nil, 0, false
	}
	ts := &dom.Timestamp{
		Start:    first.start,
		Repeater: first.repeater,
		Delay:    first.delay,
	}
	if first.hasEndTime {
		ts.End = first.end
		ts.Kind = rangeKind(active)
	} else {
		ts.Kind = singleKind(active)
	}
	if end+2 < limit && src[end] == '-' && src[end+1] == '-' && src[end+2] == src[pos] {
		if second, e2, ok2 := parseStamp(src, end+2, limit); ok2 {
			ts.End = second.start
			ts.Kind = rangeKind(active)
			end = e2
		}
	}
	return ts, end, true
}

func singleKind(active bool) dom.TimestampKind {
	if active {
		return dom.Active
	}
	return dom.Inactive
}

func rangeKind(active bool) dom.TimestampKind {
	if active {
		return dom.ActiveRange
	}
	return dom.InactiveRange
}

// stamp is one bracketed '<…>' or '[…]' part.
type stamp struct {
	start      dom.Datetime
	end        dom.Datetime // for a 'HH:MM-HH:MM' time span
	hasEndTime bool
	repeater   string
	delay      string
}

func parseStamp(src string, pos, limit int) (stamp, int, bool) {
	cl := byte('>')
	if src[pos] == '[' {
		cl = ']'
	}
	k := pos + 1
	for k < limit && src[k] != cl && src[k] != '\n' {
		k++
	}
	if k >= limit || src[k] != cl {
		return stamp{}, 0, false
	}
	fields := strings.Fields(src[pos+1 : k])
	if len(fields) == 0 {
		return stamp{}, 0, false
	}
	var st stamp
	date, ok := parseDate(fields[0])
	if !ok {
		return stamp{}, 0, false
	}
	st.start = date
	for _, f := range fields[1:] {
		switch {
		case f[0] == '+' || strings.HasPrefix(f, ".+"):
			st.repeater = f
		case f[0] == '-':
			st.delay = f
		case isDigit(f[0]):
			h1, m1, h2, m2, span, ok := parseTime(f)
			if !ok {
				return stamp{}, 0, false
			}
			st.start.HasTime = true
			st.start.Hour, st.start.Minute = h1, m1
			if span {
				st.end = st.start
				st.end.Hour, st.end.Minute = h2, m2
				st.hasEndTime = true
			}
		default:
			st.start.Dayname = f
		}
	}
	return st, k + 1, true
}

// parseDate matches 'YYYY-MM-DD'.
func parseDate(f string) (dom.Datetime, bool) {
	parts := strings.Split(f, "-")
	if len(parts) != 3 {
		return dom.Datetime{}, false
	}
	y, ok1 := atoi(parts[0], 4, 4)
	m, ok2 := atoi(parts[1], 1, 2)
	d, ok3 := atoi(parts[2], 1, 2)
	if !ok1 || !ok2 || !ok3 || m < 1 || m > 12 || d < 1 || d > 31 {
		return dom.Datetime{}, false
	}
	return dom.Datetime{Year: y, Month: m, Day: d}, true
}

// parseTime matches 'H:MM' or 'H:MM-H:MM'.
func parseTime(f string) (h1, m1, h2, m2 int, span, ok bool) {
	dash := strings.IndexByte(f, '-')
	head := f
	if dash >= 0 {
		head = f[:dash]
	}
	h1, m1, ok = hourMinute(head)
	if !ok {
		return 0, 0, 0, 0, false, false
	}
	if dash < 0 {
		return h1, m1, 0, 0, false, true
	}
	h2, m2, ok = hourMinute(f[dash+1:])
	if !ok {
		return 0, 0, 0, 0, false, false
	}
	return h1, m1, h2, m2, true, true
}

func hourMinute(f string) (h, m int, ok bool) {
	colon := strings.IndexByte(f, ':')
	if colon < 0 {
		return 0, 0, false
	}
	h, ok1 := atoi(f[:colon], 1, 2)
	m, ok2 := atoi(f[colon+1:], 2, 2)
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// atoi converts an all-digit string of bounded length.
func atoi(s string, min, max int) (int, bool) {
	if len(s) < min || len(s) > max {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
