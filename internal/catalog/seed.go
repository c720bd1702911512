// Copyright (c) 2026 Holospace. All rights reserved.

package catalog

// price is a small helper for optional price literals.
func price(value float64) *float64 {
	return &value
}

// SampleContent returns the launch catalog of four VR experiences.
//
// IDs are fixed short strings because shipped clients reference them directly
// (the demo account owns "1" and "4").
func SampleContent() []ContentRecord {
	return []ContentRecord{
		{
			ID:          "1",
			Title:       "Cyberpunk City 2077",
			Description: "Explore a neon-lit futuristic metropolis with flying cars and towering skyscrapers.",
			Category:    "Adventure",
			Price:       price(12.99),
			Duration:    "45 min",
			Rating:      4.8,
			Thumbnail:   "https://images.unsplash.com/photo-1636036704268-017faa3b6557?fm=jpg&q=80&w=1080",
		},
		{
			ID:          "2",
			Title:       "Space Station Alpha",
			Description: "Experience life aboard an international space station with zero gravity physics.",
			Category:    "Simulation",
			Price:       price(9.99),
			Duration:    "30 min",
			Rating:      4.6,
			Thumbnail:   "https://images.unsplash.com/photo-1634893661513-d6d1f579fc63?fm=jpg&q=80&w=1080",
		},
		{
			ID:          "3",
			Title:       "Ancient Rome VR",
			Description: "Walk through the Roman Forum and Colosseum in their full glory.",
			Category:    "Education",
			Price:       price(14.99),
			Duration:    "60 min",
			Rating:      4.9,
			Thumbnail:   "https://images.unsplash.com/photo-1547930206-82ac0a7aa08d?fm=jpg&q=80&w=1080",
		},
		{
			ID:          "4",
			Title:       "VR Tutorial Island",
			Description: "Learn the basics of VR interaction in this beginner-friendly experience.",
			Category:    "Tutorial",
			Duration:    "15 min",
			Rating:      4.3,
			Thumbnail:   "https://images.unsplash.com/photo-1547930206-82ac0a7aa08d?fm=jpg&q=80&w=1080",
		},
	}
}
