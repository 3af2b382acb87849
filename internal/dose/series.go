package dose

import "github.com/alexanderramin/cosmodose/internal/domain"

// SunspotPoint is one year of the illustrative historical sunspot series.
type SunspotPoint struct {
	Year     int
	Sunspots int
}

// sunspotHistory is the fixed example series shown on the historical solar
// cycle chart. Illustrative, not live data.
var sunspotHistory = []SunspotPoint{
	{2012, 95}, {2013, 80}, {2014, 68}, {2015, 55},
	{2016, 50}, {2017, 40}, {2018, 35}, {2019, 60},
	{2020, 85}, {2021, 95}, {2022, 110}, {2023, 120},
}

// SunspotHistory returns a copy of the illustrative sunspot series.
func SunspotHistory() []SunspotPoint {
	out := make([]SunspotPoint, len(sunspotHistory))
	copy(out, sunspotHistory)
	return out
}

// SweepPoint is one sample of the dose-vs-duration chart.
type SweepPoint struct {
	DurationDays int
	TotalDoseMSv float64
}

// DurationSweep evaluates the estimate across mission durations from 1 day up
// to m.DurationDays, holding every other parameter fixed, and returns up to
// steps evenly spaced samples. Used to plot how total dose grows with mission
// length.
func DurationSweep(m domain.MissionParameters, p domain.PersonalFactors, flux domain.FluxReading, steps int) ([]SweepPoint, error) {
	if steps < 2 {
		steps = 2
	}
	if m.DurationDays < steps {
		steps = m.DurationDays
	}
	if steps < 1 {
		return nil, nil
	}

	points := make([]SweepPoint, 0, steps)
	for i := 1; i <= steps; i++ {
		days := m.DurationDays * i / steps
		if days < 1 {
			days = 1
		}
		sample := m
		sample.DurationDays = days

		result, err := Estimate(sample, p, flux)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{DurationDays: days, TotalDoseMSv: result.TotalDoseMSv})
	}
	return points, nil
}
