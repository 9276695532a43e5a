package schedule

// FreeSlots returns the window's grid minus every time that matches an entry
// in bookedTimes, preserving chronological order.
//
// bookedTimes must already be restricted to active (non-cancelled) bookings;
// that filtering happens once, at the store that produced the list. The result
// is a snapshot: a returned slot can be taken by a concurrent booking, so
// callers must still reserve and handle the conflict.
func FreeSlots(w Window, bookedTimes []TimeOfDay) []TimeOfDay {
	booked := make(map[TimeOfDay]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	var free []TimeOfDay
	for _, t := range w.Grid() {
		if _, taken := booked[t]; !taken {
			free = append(free, t)
		}
	}
	return free
}
