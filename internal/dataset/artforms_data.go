// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import "github.com/arjunv-dev/dharohar/internal/models"

// artFormRows returns the traditional art forms table. Coordinates point
// at the region most associated with the art form, not a single venue.
func artFormRows() []models.ArtForm {
	return []models.ArtForm{
		{State: "Rajasthan", ArtForm: "Kathputli", Type: "Puppetry", Description: "Traditional string puppet theater of Rajasthan", Latitude: 26.9124, Longitude: 75.7873, VisitorsAnnual: 150000, CulturalSignificance: models.SignificanceHigh},
		{State: "Gujarat", ArtForm: "Patola", Type: "Textile", Description: "Ancient art of double ikat weaving in Gujarat", Latitude: 22.2587, Longitude: 71.1924, VisitorsAnnual: 120000, CulturalSignificance: models.SignificanceHigh},
		{State: "West Bengal", ArtForm: "Chhau Dance", Type: "Dance", Description: "Traditional martial dance-drama from eastern India", Latitude: 23.6102, Longitude: 87.4594, VisitorsAnnual: 85000, CulturalSignificance: models.SignificanceMedium},
		{State: "Kerala", ArtForm: "Kathakali", Type: "Dance", Description: "Classical dance-drama known for elaborate costumes and makeup", Latitude: 10.8505, Longitude: 76.2711, VisitorsAnnual: 200000, CulturalSignificance: models.SignificanceHigh},
		{State: "Uttar Pradesh", ArtForm: "Nautanki", Type: "Theater", Description: "Folk theater tradition of northern India", Latitude: 27.5706, Longitude: 80.0982, VisitorsAnnual: 90000, CulturalSignificance: models.SignificanceMedium},
		{State: "Maharashtra", ArtForm: "Warli", Type: "Painting", Description: "Tribal art form featuring geometric patterns", Latitude: 19.7515, Longitude: 75.7139, VisitorsAnnual: 110000, CulturalSignificance: models.SignificanceMedium},
		{State: "Tamil Nadu", ArtForm: "Bharatanatyam", Type: "Dance", Description: "One of India's oldest classical dance traditions", Latitude: 13.0827, Longitude: 80.2707, VisitorsAnnual: 180000, CulturalSignificance: models.SignificanceHigh},
		{State: "Odisha", ArtForm: "Pattachitra", Type: "Painting", Description: "Ancient scroll painting tradition of Odisha", Latitude: 20.9517, Longitude: 85.0985, VisitorsAnnual: 75000, CulturalSignificance: models.SignificanceMedium},
		{State: "Assam", ArtForm: "Bihu", Type: "Dance", Description: "Folk dance associated with the Bihu festival of Assam", Latitude: 26.2006, Longitude: 91.7086, VisitorsAnnual: 95000, CulturalSignificance: models.SignificanceMedium},
		{State: "Karnataka", ArtForm: "Yakshagana", Type: "Theater", Description: "Traditional theater form of Karnataka", Latitude: 13.2856, Longitude: 75.7129, VisitorsAnnual: 70000, CulturalSignificance: models.SignificanceMedium},
		{State: "Madhya Pradesh", ArtForm: "Gond Art", Type: "Painting", Description: "Indigenous art style of central India", Latitude: 22.9734, Longitude: 78.6569, VisitorsAnnual: 65000, CulturalSignificance: models.SignificanceMedium},
		{State: "Andhra Pradesh", ArtForm: "Kalamkari", Type: "Textile", Description: "Hand-painted or block-printed cotton textile", Latitude: 15.9129, Longitude: 79.7400, VisitorsAnnual: 100000, CulturalSignificance: models.SignificanceHigh},
		{State: "Telangana", ArtForm: "Bidri", Type: "Metal Craft", Description: "Metal handicraft with silver inlay work", Latitude: 17.3850, Longitude: 78.4867, VisitorsAnnual: 55000, CulturalSignificance: models.SignificanceMedium},
		{State: "Bihar", ArtForm: "Madhubani", Type: "Painting", Description: "Distinctive painting style using natural dyes", Latitude: 25.0961, Longitude: 85.3131, VisitorsAnnual: 80000, CulturalSignificance: models.SignificanceHigh},
		{State: "Punjab", ArtForm: "Phulkari", Type: "Embroidery", Description: "Traditional embroidery technique of Punjab", Latitude: 31.1471, Longitude: 75.3412, VisitorsAnnual: 90000, CulturalSignificance: models.SignificanceMedium},
		{State: "Jammu and Kashmir", ArtForm: "Pashmina", Type: "Textile", Description: "Fine wool textile craftsmanship", Latitude: 34.0837, Longitude: 77.5677, VisitorsAnnual: 110000, CulturalSignificance: models.SignificanceMedium},
		{State: "Himachal Pradesh", ArtForm: "Kangra Painting", Type: "Painting", Description: "Miniature painting tradition of Himachal Pradesh", Latitude: 32.2196, Longitude: 76.3189, VisitorsAnnual: 60000, CulturalSignificance: models.SignificanceMedium},
		{State: "Uttarakhand", ArtForm: "Aipan", Type: "Folk Art", Description: "Ritual folk art using rice paste", Latitude: 30.0668, Longitude: 79.0193, VisitorsAnnual: 45000, CulturalSignificance: models.SignificanceLow},
		{State: "Goa", ArtForm: "Goan Folk Dance", Type: "Dance", Description: "Vibrant folk dance traditions", Latitude: 15.2993, Longitude: 73.9934, VisitorsAnnual: 300000, CulturalSignificance: models.SignificanceMedium},
		{State: "Manipur", ArtForm: "Manipuri Dance", Type: "Dance", Description: "Classical dance form with graceful movements", Latitude: 24.6637, Longitude: 93.9063, VisitorsAnnual: 50000, CulturalSignificance: models.SignificanceHigh},
		{State: "Nagaland", ArtForm: "Naga Wood Carving", Type: "Wood Craft", Description: "Intricate wood carving traditions", Latitude: 26.1584, Longitude: 94.5624, VisitorsAnnual: 30000, CulturalSignificance: models.SignificanceMedium},
		{State: "Tripura", ArtForm: "Risa Textile", Type: "Textile", Description: "Traditional handwoven textile", Latitude: 23.9408, Longitude: 91.9882, VisitorsAnnual: 25000, CulturalSignificance: models.SignificanceLow},
		{State: "Meghalaya", ArtForm: "Khasi Bamboo Work", Type: "Craft", Description: "Traditional bamboo craftsmanship", Latitude: 25.5788, Longitude: 91.8933, VisitorsAnnual: 35000, CulturalSignificance: models.SignificanceLow},
		{State: "Arunachal Pradesh", ArtForm: "Monpa Mask Making", Type: "Mask Making", Description: "Religious and cultural mask making tradition", Latitude: 27.1004, Longitude: 93.6167, VisitorsAnnual: 20000, CulturalSignificance: models.SignificanceMedium},
	}
}
