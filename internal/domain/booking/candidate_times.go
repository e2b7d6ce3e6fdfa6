package booking

var candidateTimes = [...]string{
	"08:00", "08:30",
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	// lunch
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00", "17:30",
	"18:00", "18:30",
	"19:00",
}

// CandidateTimes returns a fresh copy of the daily schedule offered for every
// service and barbershop.
func CandidateTimes() []string {
	out := make([]string, len(candidateTimes))
	copy(out, candidateTimes[:])
	return out
}
