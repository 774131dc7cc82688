package engine

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-numerology/internal/config"
)

// EncodeICS renders the quadrimester and trimester windows of every entry
// as all-day events. reminderTrigger, when set, attaches a DISPLAY alarm
// to each event. It returns the feed and the number of events.
func (g *Generator) EncodeICS(entries []ProfileEntry, reminderTrigger string) ([]byte, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(g.now().UTC())

	for _, e := range entries {
		for _, ev := range g.entryEvents(e, reminderTrigger) {
			ev.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, ev.Component)
		}
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), len(cal.Children), nil
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}

func (g *Generator) entryEvents(e ProfileEntry, reminderTrigger string) []*ical.Event {
	year := e.Calendar.ReferenceYear
	events := make([]*ical.Event, 0, len(e.Calendar.Quadrimesters)+len(e.Calendar.Trimesters))

	for _, w := range e.Calendar.Quadrimesters {
		summary := fmt.Sprintf(config.FallbackQuadrimester, e.Name, w.Label, w.Value)
		if g.FormatQuadrimester != nil {
			summary = g.FormatQuadrimester(e.Name, w)
		}
		events = append(events, g.newEvent(eventUID(e.UID, year, w.Label), summary, config.CategoryQuadrimester, w.Start, w.End, reminderTrigger))
	}
	for _, w := range e.Calendar.Trimesters {
		summary := fmt.Sprintf(config.FallbackTrimester, e.Name, w.Label, w.Pinnacle.Final, w.Challenge.Final)
		if g.FormatTrimester != nil {
			summary = g.FormatTrimester(e.Name, w)
		}
		events = append(events, g.newEvent(eventUID(e.UID, year, w.Label), summary, config.CategoryTrimester, w.Start, w.End, reminderTrigger))
	}
	return events
}

// newEvent builds an all-day event covering start..end inclusive. DTEND is
// exclusive in iCalendar, hence the extra day.
func (g *Generator) newEvent(uid, summary, category string, start, end time.Time, reminderTrigger string) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uid)
	event.Props.SetText(config.PropSummary, summary)
	event.Props.SetText(config.PropCategories, category)

	description := fmt.Sprintf(config.FallbackDescription, start.Format(config.DateFormatDisplay), end.Format(config.DateFormatDisplay))
	if g.FormatDescription != nil {
		description = g.FormatDescription(start, end)
	}
	event.Props.SetText(config.PropDescription, description)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(start)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(config.PropDTEnd)
	dtEnd.SetDate(end.AddDate(0, 0, 1))
	event.Props.Set(dtEnd)

	if reminderTrigger != "" {
		addAlarm(event, reminderTrigger, summary)
	}
	return event
}

// eventUID derives a per-window UID from the entry hash. Labels are unique
// within a calendar.
func eventUID(base string, year int, label string) string {
	return fmt.Sprintf(config.FormatUID, base, year, strings.ToLower(label), config.ICalDomain)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set the value directly: SetText would add VALUE=TEXT.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
