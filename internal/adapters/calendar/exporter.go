package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/meetboard/api/internal/core/domain"
	"github.com/meetboard/api/internal/core/ports"
)

// Meetings have no stored duration; exported events are one hour long.
const eventDuration = time.Hour

type exporter struct{}

func NewExporter() ports.CalendarExporter {
	return exporter{}
}

func (exporter) Export(w io.Writer, meetings []*domain.Meeting) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//meetboard//meeting board//EN")
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	now := time.Now().UTC()
	for _, meeting := range meetings {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@meetboard", meeting.ID))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetText(ical.PropSummary, meeting.Title)
		event.Props.SetDateTime(ical.PropDateTimeStart, meeting.Time.UTC())
		event.Props.SetDateTime(ical.PropDateTimeEnd, meeting.Time.Add(eventDuration).UTC())
		if meeting.Link != "" {
			event.Props.SetText(ical.PropDescription, meeting.Link)
		}
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}
