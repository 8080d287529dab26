// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import "github.com/arjunv-dev/dharohar/internal/models"

// hiddenGemRows returns the lesser-known destination table. Row order is
// the canonical tie-break order for scoring and distance ranking.
func hiddenGemRows() []models.HiddenGem {
	return []models.HiddenGem{
		{Name: "Nubra Valley", State: "Ladakh", ArtForm: "Thangka Painting", Latitude: 34.6989, Longitude: 77.5619, Description: "Remote valley known for unique cultural traditions and Buddhist influence", VisitorsAnnual: 8000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "May-September"},
		{Name: "Ziro Valley", State: "Arunachal Pradesh", ArtForm: "Apatani Textile", Latitude: 27.5949, Longitude: 93.8290, Description: "Home to the Apatani tribe known for their sustainable agriculture and unique nose plugs", VisitorsAnnual: 5000, Accessibility: models.AccessibilityDifficult, BestTimeToVisit: "March-October"},
		{Name: "Majuli Island", State: "Assam", ArtForm: "Mask Making", Latitude: 27.0014, Longitude: 94.2300, Description: "World's largest river island with a unique vaishnava culture and mask-making tradition", VisitorsAnnual: 10000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "November-March"},
		{Name: "Champaner-Pavagadh", State: "Gujarat", ArtForm: "Archaeological Heritage", Latitude: 22.4866, Longitude: 73.5333, Description: "Archaeological park with a blend of Hindu and Islamic architecture", VisitorsAnnual: 12000, Accessibility: models.AccessibilityEasy, BestTimeToVisit: "October-March"},
		{Name: "Shekhawati Region", State: "Rajasthan", ArtForm: "Fresco Painting", Latitude: 27.6094, Longitude: 75.3025, Description: "Open-air art gallery with hundreds of ornate havelis decorated with vibrant frescoes", VisitorsAnnual: 15000, Accessibility: models.AccessibilityEasy, BestTimeToVisit: "October-March"},
		{Name: "Chettinad", State: "Tamil Nadu", ArtForm: "Wood Carving", Latitude: 10.5702, Longitude: 78.7146, Description: "Mansions of wealthy traders featuring unique architecture and wood carvings", VisitorsAnnual: 20000, Accessibility: models.AccessibilityEasy, BestTimeToVisit: "November-February"},
		{Name: "Dhanushkodi", State: "Tamil Nadu", ArtForm: "Temple Architecture", Latitude: 9.1550, Longitude: 79.3963, Description: "Ghost town with abandoned structures and rich cultural history", VisitorsAnnual: 25000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "October-March"},
		{Name: "Andro Village", State: "Manipur", ArtForm: "Pottery", Latitude: 24.7638, Longitude: 94.0210, Description: "Cultural village known for pottery and traditional liquor brewing", VisitorsAnnual: 3000, Accessibility: models.AccessibilityDifficult, BestTimeToVisit: "October-March"},
		{Name: "Longwa Village", State: "Nagaland", ArtForm: "Wood Carving", Latitude: 26.5693, Longitude: 95.0610, Description: "Village split between India and Myanmar, home to tattooed Konyak tribe headhunters", VisitorsAnnual: 2000, Accessibility: models.AccessibilityDifficult, BestTimeToVisit: "October-April"},
		{Name: "Mawlynnong", State: "Meghalaya", ArtForm: "Bamboo Craft", Latitude: 25.1982, Longitude: 91.5767, Description: "Known as Asia's cleanest village with unique living root bridges", VisitorsAnnual: 18000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "September-May"},
		{Name: "Andretta", State: "Himachal Pradesh", ArtForm: "Pottery and Paintings", Latitude: 32.0398, Longitude: 76.2082, Description: "Artists' colony established by Sardar Gurcharan Singh with pottery traditions", VisitorsAnnual: 7000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "March-November"},
		{Name: "Chitrakote Falls", State: "Chhattisgarh", ArtForm: "Tribal Arts", Latitude: 19.2307, Longitude: 81.7200, Description: "Horseshoe-shaped waterfall with tribal communities preserving ancient art forms", VisitorsAnnual: 12000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "September-February"},
		{Name: "Unakoti", State: "Tripura", ArtForm: "Rock Reliefs", Latitude: 24.0865, Longitude: 91.9286, Description: "Ancient rock-cut sculptures and stone images dating back to 7-9th centuries", VisitorsAnnual: 9000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "October-March"},
		{Name: "Nako", State: "Himachal Pradesh", ArtForm: "Thangka Painting", Latitude: 31.8834, Longitude: 77.9333, Description: "Tiny Himalayan village with Buddhist monastery and traditional architecture", VisitorsAnnual: 4000, Accessibility: models.AccessibilityDifficult, BestTimeToVisit: "May-October"},
		{Name: "Gurez Valley", State: "Jammu and Kashmir", ArtForm: "Pashmina Weaving", Latitude: 34.6333, Longitude: 74.8500, Description: "Remote valley with unique Dard-Shin culture and traditional craftsmanship", VisitorsAnnual: 3000, Accessibility: models.AccessibilityDifficult, BestTimeToVisit: "July-September"},
		{Name: "Mechuka", State: "Arunachal Pradesh", ArtForm: "Tribal Weaving", Latitude: 28.9891, Longitude: 94.9190, Description: "Remote valley with traditional Memba tribe culture and monasteries", VisitorsAnnual: 2000, Accessibility: models.AccessibilityDifficult, BestTimeToVisit: "March-October"},
		{Name: "Patan", State: "Gujarat", ArtForm: "Patola Weaving", Latitude: 23.8493, Longitude: 72.1194, Description: "Ancient city famous for its Patola silk double-ikat textile tradition", VisitorsAnnual: 25000, Accessibility: models.AccessibilityEasy, BestTimeToVisit: "October-March"},
		{Name: "Orchha", State: "Madhya Pradesh", ArtForm: "Miniature Paintings", Latitude: 25.3518, Longitude: 78.6582, Description: "Medieval town with grand cenotaphs and Bundela architecture", VisitorsAnnual: 35000, Accessibility: models.AccessibilityEasy, BestTimeToVisit: "October-March"},
		{Name: "Valparai", State: "Tamil Nadu", ArtForm: "Native Crafts", Latitude: 10.3271, Longitude: 76.9512, Description: "Tea plantation region with unique cultural blend and craft traditions", VisitorsAnnual: 15000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "September-May"},
		{Name: "Tawang Monastery", State: "Arunachal Pradesh", ArtForm: "Buddhist Thangkas", Latitude: 27.5859, Longitude: 91.8566, Description: "Largest monastery in India with rare Buddhist artifacts and manuscripts", VisitorsAnnual: 20000, Accessibility: models.AccessibilityModerate, BestTimeToVisit: "March-October"},
	}
}
