package depstats

import "testing"

func TestScheduledHour(t *testing.T) {
	good := map[string]int{ "00:00":0, "09:15":9, "11:59":11, "23:01":23 }
	for in,want := range good {
		fr := FlightRecord{ScheduledDeparture:in}
		if h,err := fr.ScheduledHour(); err != nil || h != want {
			t.Errorf("'%s': got %d,%v", in, h, err)
		}
	}

	for _,in := range []string{ "0915", "", "ab:00", "24:00", "-1:30" } {
		fr := FlightRecord{ScheduledDeparture:in, RowIndex:7}
		if _,err := fr.ScheduledHour(); err == nil {
			t.Errorf("'%s': wanted an error", in)
		}
	}
}

func TestDelayed(t *testing.T) {
	fr := FlightRecord{ScheduledDeparture:"09:15", ActualDeparture:"09:15"}
	if fr.Delayed() { t.Errorf("identical times are not a delay") }

	// any textual difference counts, even pure formatting, even early
	for _,actual := range []string{ "09:30", "09:00", "9:15" } {
		fr.ActualDeparture = actual
		if !fr.Delayed() { t.Errorf("'%s' vs '09:15' should count as delayed", actual) }
	}
}

func TestMatchesAirline(t *testing.T) {
	fr := FlightRecord{FlightNum:"BA123"}
	if !fr.MatchesAirline("BA") { t.Errorf("BA123 should match BA") }
	if fr.MatchesAirline("ba")  { t.Errorf("prefix match is case-sensitive") }
	if fr.MatchesAirline("AF")  { t.Errorf("BA123 should not match AF") }
}
