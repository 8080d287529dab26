// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import "github.com/arjunv-dev/dharohar/internal/models"

// trendStates is the fixed state order of the tourism table. Every year
// carries one observation per state in exactly this order.
var trendStates = [10]string{
	"Rajasthan", "Gujarat", "West Bengal", "Kerala", "Uttar Pradesh",
	"Maharashtra", "Tamil Nadu", "Odisha", "Assam", "Karnataka",
}

// yearFigures holds one year of observations, indexed by trendStates.
type yearFigures struct {
	year          int
	domestic      [10]int
	international [10]int
	siteVisits    [10]int
	revenue       [10]float64
}

var trendFigures = []yearFigures{
	{
		year:          2015,
		domestic:      [10]int{3500000, 2800000, 2500000, 3200000, 4500000, 4800000, 3900000, 1800000, 1200000, 2900000},
		international: [10]int{800000, 450000, 350000, 600000, 900000, 1100000, 750000, 200000, 100000, 400000},
		siteVisits:    [10]int{1500000, 900000, 800000, 1200000, 2000000, 1800000, 1400000, 500000, 300000, 800000},
		revenue:       [10]float64{350, 220, 180, 290, 420, 480, 350, 120, 80, 200},
	},
	{
		year:          2016,
		domestic:      [10]int{3700000, 3000000, 2700000, 3400000, 4700000, 5000000, 4100000, 1900000, 1300000, 3100000},
		international: [10]int{850000, 480000, 380000, 640000, 950000, 1150000, 800000, 220000, 110000, 430000},
		siteVisits:    [10]int{1600000, 950000, 850000, 1280000, 2100000, 1900000, 1500000, 530000, 320000, 850000},
		revenue:       [10]float64{380, 240, 200, 310, 450, 510, 380, 130, 90, 220},
	},
	{
		year:          2017,
		domestic:      [10]int{3900000, 3200000, 2900000, 3600000, 4900000, 5200000, 4300000, 2000000, 1400000, 3300000},
		international: [10]int{900000, 510000, 410000, 680000, 1000000, 1200000, 850000, 240000, 120000, 460000},
		siteVisits:    [10]int{1700000, 1000000, 900000, 1360000, 2200000, 2000000, 1600000, 560000, 340000, 900000},
		revenue:       [10]float64{410, 260, 220, 330, 480, 540, 410, 140, 100, 240},
	},
	{
		year:          2018,
		domestic:      [10]int{4100000, 3400000, 3100000, 3800000, 5100000, 5400000, 4500000, 2100000, 1500000, 3500000},
		international: [10]int{950000, 540000, 440000, 720000, 1050000, 1250000, 900000, 260000, 130000, 490000},
		siteVisits:    [10]int{1800000, 1050000, 950000, 1440000, 2300000, 2100000, 1700000, 590000, 360000, 950000},
		revenue:       [10]float64{440, 280, 240, 350, 510, 570, 440, 150, 110, 260},
	},
	{
		year:          2019,
		domestic:      [10]int{4300000, 3600000, 3300000, 4000000, 5300000, 5600000, 4700000, 2200000, 1600000, 3700000},
		international: [10]int{1000000, 570000, 470000, 760000, 1100000, 1300000, 950000, 280000, 140000, 520000},
		siteVisits:    [10]int{1900000, 1100000, 1000000, 1520000, 2400000, 2200000, 1800000, 620000, 380000, 1000000},
		revenue:       [10]float64{470, 300, 260, 370, 540, 600, 470, 160, 120, 280},
	},
	{
		year:          2020,
		domestic:      [10]int{1500000, 1200000, 1100000, 1300000, 1800000, 1900000, 1600000, 800000, 600000, 1300000},
		international: [10]int{250000, 140000, 120000, 190000, 280000, 330000, 240000, 70000, 35000, 130000},
		siteVisits:    [10]int{600000, 350000, 320000, 480000, 800000, 700000, 570000, 200000, 120000, 320000},
		revenue:       [10]float64{150, 100, 80, 120, 180, 190, 150, 50, 40, 90},
	},
	{
		year:          2021,
		domestic:      [10]int{2200000, 1800000, 1600000, 2000000, 2700000, 2800000, 2400000, 1200000, 900000, 1900000},
		international: [10]int{400000, 230000, 190000, 300000, 450000, 520000, 380000, 110000, 60000, 210000},
		siteVisits:    [10]int{900000, 530000, 480000, 720000, 1200000, 1050000, 860000, 300000, 180000, 480000},
		revenue:       [10]float64{230, 150, 130, 180, 270, 290, 230, 80, 60, 140},
	},
	{
		year:          2022,
		domestic:      [10]int{3800000, 3200000, 2900000, 3500000, 4600000, 4900000, 4100000, 1900000, 1300000, 3200000},
		international: [10]int{800000, 450000, 370000, 600000, 900000, 1050000, 750000, 210000, 100000, 420000},
		siteVisits:    [10]int{1600000, 950000, 860000, 1300000, 2150000, 1900000, 1550000, 540000, 320000, 870000},
		revenue:       [10]float64{410, 270, 230, 320, 480, 540, 410, 140, 100, 240},
	},
}

// tourismTrendRows flattens the per-year tables into year-major rows.
func tourismTrendRows() []models.TourismTrend {
	rows := make([]models.TourismTrend, 0, len(trendFigures)*len(trendStates))
	for _, fig := range trendFigures {
		for i, state := range trendStates {
			rows = append(rows, models.TourismTrend{
				Year:                  fig.year,
				State:                 state,
				DomesticTourists:      fig.domestic[i],
				InternationalTourists: fig.international[i],
				CulturalSiteVisits:    fig.siteVisits[i],
				RevenueMillionsINR:    fig.revenue[i],
			})
		}
	}
	return rows
}
