package schedule

// SlotIntervalMinutes is the booking grid step. Every bookable time is the
// window start plus a whole number of these.
const SlotIntervalMinutes = 30

// Window is a professional's working-hour range [Start, End) for a day.
type Window struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewWindow builds a window from stored minute offsets. An end at or before
// the start is allowed and simply yields an empty grid.
func NewWindow(startMin, endMin int) (Window, error) {
	start, err := FromMinutes(startMin)
	if err != nil {
		return Window{}, ErrInvalidWindow
	}
	end, err := FromMinutes(endMin)
	if err != nil {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() TimeOfDay {
	return w.start
}

func (w Window) End() TimeOfDay {
	return w.end
}

// Grid returns every time t with start <= t < end where t-start is a multiple
// of the slot interval, in chronological order. Empty when end <= start.
func (w Window) Grid() []TimeOfDay {
	var grid []TimeOfDay
	for t := w.start; t < w.end; t += SlotIntervalMinutes {
		grid = append(grid, t)
	}
	return grid
}

// Contains reports whether t is a bookable grid point of this window.
func (w Window) Contains(t TimeOfDay) bool {
	if t < w.start || t >= w.end {
		return false
	}
	return (t-w.start)%SlotIntervalMinutes == 0
}
