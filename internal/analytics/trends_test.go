// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package analytics

import (
	"errors"
	"math"
	"testing"

	"github.com/arjunv-dev/dharohar/internal/models"
)

func testTrends() []models.TourismTrend {
	return []models.TourismTrend{
		{Year: 2019, State: "Rajasthan", DomesticTourists: 4300000, InternationalTourists: 1000000, CulturalSiteVisits: 1900000, RevenueMillionsINR: 470},
		{Year: 2019, State: "Kerala", DomesticTourists: 4000000, InternationalTourists: 760000, CulturalSiteVisits: 1520000, RevenueMillionsINR: 370},
		{Year: 2020, State: "Rajasthan", DomesticTourists: 1500000, InternationalTourists: 250000, CulturalSiteVisits: 600000, RevenueMillionsINR: 150},
		{Year: 2020, State: "Kerala", DomesticTourists: 1300000, InternationalTourists: 190000, CulturalSiteVisits: 480000, RevenueMillionsINR: 120},
		{Year: 2022, State: "Rajasthan", DomesticTourists: 3800000, InternationalTourists: 800000, CulturalSiteVisits: 1600000, RevenueMillionsINR: 410},
		{Year: 2022, State: "Kerala", DomesticTourists: 3500000, InternationalTourists: 600000, CulturalSiteVisits: 1300000, RevenueMillionsINR: 320},
	}
}

func TestYearlySummary(t *testing.T) {
	t.Parallel()

	got := YearlySummary(testTrends())
	if len(got) != 3 {
		t.Fatalf("YearlySummary returned %d years, want 3", len(got))
	}
	if got[0].Year != 2019 || got[1].Year != 2020 || got[2].Year != 2022 {
		t.Fatalf("years not ascending: %+v", got)
	}

	y2019 := got[0]
	if y2019.DomesticTourists != 8300000 {
		t.Errorf("2019 domestic = %d, want 8300000", y2019.DomesticTourists)
	}
	if y2019.CulturalSiteVisits != 3420000 {
		t.Errorf("2019 site visits = %d, want 3420000", y2019.CulturalSiteVisits)
	}
	wantDomPct := 8300000.0 / 10060000.0 * 100
	if math.Abs(y2019.DomesticPercent-wantDomPct) > 1e-9 {
		t.Errorf("2019 domestic percent = %v, want %v", y2019.DomesticPercent, wantDomPct)
	}
}

func TestGrowth(t *testing.T) {
	t.Parallel()

	g, err := Growth(testTrends(), "Rajasthan", 2019, 2022)
	if err != nil {
		t.Fatalf("Growth: %v", err)
	}
	want := float64(1600000-1900000) / 1900000 * 100
	if math.Abs(g.GrowthRatePct-want) > 1e-9 {
		t.Errorf("growth rate = %v, want %v", g.GrowthRatePct, want)
	}
}

func TestGrowth_MissingYear(t *testing.T) {
	t.Parallel()

	if _, err := Growth(testTrends(), "Rajasthan", 2010, 2022); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Growth error = %v, want ErrInsufficientData", err)
	}
}

func TestGrowthAll_SortedDescending(t *testing.T) {
	t.Parallel()

	got := GrowthAll(testTrends(), 2019, 2022)
	if len(got) != 2 {
		t.Fatalf("GrowthAll returned %d states, want 2", len(got))
	}
	if got[0].GrowthRatePct < got[1].GrowthRatePct {
		t.Errorf("growth rates not descending: %+v", got)
	}
}

func TestCovidComparison(t *testing.T) {
	t.Parallel()

	got := CovidComparison(testTrends())
	if len(got) != 2 {
		t.Fatalf("CovidComparison returned %d states, want 2", len(got))
	}
	for _, c := range got {
		if c.DeclinePct <= 0 {
			t.Errorf("state %s decline = %v, want positive", c.State, c.DeclinePct)
		}
		if c.RecoveryPct <= 0 || c.RecoveryPct > 100 {
			t.Errorf("state %s recovery = %v, want within (0, 100]", c.State, c.RecoveryPct)
		}
	}
	if got[0].DeclinePct < got[1].DeclinePct {
		t.Errorf("declines not descending: %+v", got)
	}
}

func TestRatios(t *testing.T) {
	t.Parallel()

	got := Ratios(testTrends(), 2019)
	if len(got) != 2 {
		t.Fatalf("Ratios returned %d states, want 2", len(got))
	}
	// Rajasthan 2019: 470M INR over 1.9M visits.
	for _, r := range got {
		if r.State != "Rajasthan" {
			continue
		}
		want := 470.0 * 1_000_000 / 1_900_000
		if math.Abs(r.RevenuePerVisitINR-want) > 1e-9 {
			t.Errorf("revenue per visit = %v, want %v", r.RevenuePerVisitINR, want)
		}
		wantRatio := 1000000.0 / 4300000.0
		if math.Abs(r.IntlDomesticRatio-wantRatio) > 1e-9 {
			t.Errorf("intl/domestic ratio = %v, want %v", r.IntlDomesticRatio, wantRatio)
		}
	}
	if got[0].IntlDomesticRatio < got[1].IntlDomesticRatio {
		t.Errorf("ratios not descending: %+v", got)
	}
}

func TestRatios_SkipsZeroDenominators(t *testing.T) {
	t.Parallel()

	trends := []models.TourismTrend{
		{Year: 2019, State: "Empty", DomesticTourists: 0, CulturalSiteVisits: 0},
	}
	if got := Ratios(trends, 2019); len(got) != 0 {
		t.Errorf("Ratios over zero rows returned %d entries, want 0", len(got))
	}
}
