// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import "github.com/arjunv-dev/dharohar/internal/models"

// initiativeRows returns the responsible-tourism initiatives table.
func initiativeRows() []models.Initiative {
	return []models.Initiative{
		{InitiativeName: "Village Homestay Program", State: "Himachal Pradesh", FocusArea: "Rural Tourism", Description: "Connects travelers with village families offering authentic homestays and cultural experiences", ImpactScore: 4.5, YearStarted: 2015, Beneficiaries: 150, Website: "himachalhomestays.org"},
		{InitiativeName: "Eco-Cultural Tours", State: "Kerala", FocusArea: "Eco-Tourism", Description: "Combines ecological conservation with cultural experiences in the backwaters and forests", ImpactScore: 4.8, YearStarted: 2010, Beneficiaries: 320, Website: "keralaecoculture.org"},
		{InitiativeName: "Artisan Direct", State: "Rajasthan", FocusArea: "Craft Tourism", Description: "Platform connecting tourists directly to artisans, eliminating middlemen and increasing artisan income", ImpactScore: 4.3, YearStarted: 2018, Beneficiaries: 200, Website: "artisandirect.in"},
		{InitiativeName: "Heritage Conservation Volunteers", State: "Maharashtra", FocusArea: "Heritage Conservation", Description: "Engaging tourists in heritage conservation activities at historical sites", ImpactScore: 3.9, YearStarted: 2016, Beneficiaries: 90, Website: "heritageconservation.org"},
		{InitiativeName: "Rural Art Immersion", State: "West Bengal", FocusArea: "Art Education", Description: "Immersive workshops with traditional artists in rural Bengal", ImpactScore: 4.2, YearStarted: 2019, Beneficiaries: 75, Website: "bengalartimmersion.org"},
		{InitiativeName: "Zero Waste Cultural Festivals", State: "Goa", FocusArea: "Waste Management", Description: "Implementation of waste reduction strategies at cultural festivals and events", ImpactScore: 4.0, YearStarted: 2017, Beneficiaries: 110, Website: "zerowastefestivals.in"},
		{InitiativeName: "Indigenous Knowledge Preservation", State: "Nagaland", FocusArea: "Knowledge Preservation", Description: "Documentation and preservation of indigenous knowledge systems with community participation", ImpactScore: 4.7, YearStarted: 2014, Beneficiaries: 85, Website: "indigenousknowledge.org"},
		{InitiativeName: "Community Museum Network", State: "Tamil Nadu", FocusArea: "Museum Development", Description: "Network of small community-run museums showcasing local heritage", ImpactScore: 3.8, YearStarted: 2018, Beneficiaries: 60, Website: "communitymuseums.in"},
		{InitiativeName: "Cultural Exchange Program", State: "Karnataka", FocusArea: "Cultural Exchange", Description: "Facilitating cultural exchange between tourists and local communities", ImpactScore: 4.1, YearStarted: 2012, Beneficiaries: 250, Website: "culturalexchangeindia.org"},
		{InitiativeName: "Sustainable Craft Tourism", State: "Gujarat", FocusArea: "Sustainable Crafts", Description: "Promoting sustainable practices in craft production and tourism", ImpactScore: 4.4, YearStarted: 2016, Beneficiaries: 180, Website: "sustainablecrafts.org"},
		{InitiativeName: "Women Artisans Cooperative", State: "Odisha", FocusArea: "Women Empowerment", Description: "Supporting women artisans through cooperative business models and tourism", ImpactScore: 4.6, YearStarted: 2013, Beneficiaries: 120, Website: "odishawomenartisans.org"},
		{InitiativeName: "Traditional Food Tours", State: "Punjab", FocusArea: "Culinary Tourism", Description: "Food tours highlighting traditional cuisines with focus on local ingredients", ImpactScore: 4.2, YearStarted: 2019, Beneficiaries: 80, Website: "punjabfoodtours.org"},
		{InitiativeName: "Cultural Heritage Protection Fund", State: "Multiple States", FocusArea: "Heritage Protection", Description: "Fund supporting community-led heritage conservation projects", ImpactScore: 3.9, YearStarted: 2017, Beneficiaries: 300, Website: "heritageprotectionfund.in"},
		{InitiativeName: "Green Temple Initiative", State: "Multiple States", FocusArea: "Religious Tourism", Description: "Initiative promoting sustainable practices at religious sites and temples", ImpactScore: 4.0, YearStarted: 2018, Beneficiaries: 450, Website: "greentemples.org"},
		{InitiativeName: "Living Traditions Documentation", State: "Multiple States", FocusArea: "Cultural Documentation", Description: "Project documenting living cultural traditions across India", ImpactScore: 4.3, YearStarted: 2015, Beneficiaries: 200, Website: "livingtraditions.in"},
	}
}
