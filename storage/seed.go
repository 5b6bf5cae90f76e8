package storage

import "sanskruti-travels-service/models"

// samplePackages returns the catalog the store is seeded with so the site
// is never empty on a fresh start.
func samplePackages() []models.InsertPackage {
	return []models.InsertPackage{
		{
			Title:        "Kashmir Adventure",
			Description:  "Experience the paradise on earth with our complete Kashmir tour package. Enjoy shikara rides, snow adventures, and traditional Kashmiri cuisine.",
			Price:        45000,
			Location:     "Kashmir",
			Duration:     "7 Days / 6 Nights",
			Destinations: "Srinagar, Gulmarg, Pahalgam",
			ImageURL:     "https://pixabay.com/get/ge65786e9fb782ddbc7612ce67e71b40e967573c39db7cd9994f43d321f9206156cac876f221abdf0ba6d45d1355846c7e4a055564f5865b81b994cba71ae896f_1280.jpg",
			Type:         models.PackageTypeNational,
			Featured:     true,
			BestSeller:   false,
			Rating:       4.5,
			ReviewCount:  48,
		},
		{
			Title:        "Kerala Backwaters",
			Description:  "Discover God's own country with our Kerala tour. Experience houseboat stays, ayurvedic treatments, and the serene backwaters.",
			Price:        38000,
			Location:     "Kerala",
			Duration:     "6 Days / 5 Nights",
			Destinations: "Kochi, Munnar, Alleppey",
			ImageURL:     "https://pixabay.com/get/gbd4551eb8738eabe2a83c67bb4cfd87d72edf7f623c7194af43d75037b5f8802c82a2b1e8629ac4defcd931002eae2de5410e2b602456ad36af72528010b572b_1280.jpg",
			Type:         models.PackageTypeNational,
			Featured:     false,
			BestSeller:   false,
			Rating:       5.0,
			ReviewCount:  63,
		},
		{
			Title:        "European Escapade",
			Description:  "Experience the best of Europe with our multi-city tour. From the Eiffel Tower to Colosseum and Sagrada Familia, explore Europe's iconic landmarks.",
			Price:        125000,
			Location:     "Europe",
			Duration:     "10 Days / 9 Nights",
			Destinations: "Paris, Rome, Barcelona",
			ImageURL:     "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Type:         models.PackageTypeInternational,
			Featured:     true,
			BestSeller:   true,
			Rating:       4.7,
			ReviewCount:  129,
		},
		{
			Title:        "Golden Triangle Tour",
			Description:  "Explore the rich history and culture of India's Golden Triangle. Visit iconic landmarks like the Taj Mahal, Amber Fort, and Qutub Minar.",
			Price:        32500,
			Location:     "North India",
			Duration:     "6 Days / 5 Nights",
			Destinations: "Delhi, Agra, Jaipur",
			ImageURL:     "https://images.unsplash.com/photo-1564507592333-c60657eea523?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Type:         models.PackageTypeNational,
			Featured:     false,
			BestSeller:   true,
			Rating:       4.6,
			ReviewCount:  87,
		},
		{
			Title:        "Goa Beach Vacation",
			Description:  "Enjoy the sun, sand, and sea in Goa. Experience the vibrant beach culture, water sports, and nightlife.",
			Price:        28000,
			Location:     "Goa",
			Duration:     "5 Days / 4 Nights",
			Destinations: "North & South Goa",
			ImageURL:     "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Type:         models.PackageTypeNational,
			Featured:     false,
			BestSeller:   false,
			Rating:       4.3,
			ReviewCount:  56,
		},
		{
			Title:        "Dubai Extravaganza",
			Description:  "Discover the ultramodern city of Dubai with its incredible architecture, luxury shopping, and desert adventures.",
			Price:        75000,
			Location:     "UAE",
			Duration:     "6 Days / 5 Nights",
			Destinations: "Dubai, Abu Dhabi",
			ImageURL:     "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Type:         models.PackageTypeInternational,
			Featured:     false,
			BestSeller:   false,
			Rating:       4.8,
			ReviewCount:  92,
		},
		{
			Title:        "Bali Paradise",
			Description:  "Experience the tropical paradise of Bali with its beautiful beaches, volcanic mountains, and unique cultural heritage.",
			Price:        68000,
			Location:     "Indonesia",
			Duration:     "7 Days / 6 Nights",
			Destinations: "Kuta, Ubud, Seminyak",
			ImageURL:     "https://images.unsplash.com/photo-1539367628448-4bc5c9d171c8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Type:         models.PackageTypeInternational,
			Featured:     true,
			BestSeller:   false,
			Rating:       4.9,
			ReviewCount:  108,
		},
		{
			Title:        "Singapore Explorer",
			Description:  "Discover the vibrant city-state of Singapore with its futuristic architecture, diverse food scene, and world-class attractions.",
			Price:        82000,
			Location:     "Singapore",
			Duration:     "5 Days / 4 Nights",
			Destinations: "Singapore City, Sentosa Island",
			ImageURL:     "https://images.unsplash.com/photo-1565967511849-76a60a516170?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500",
			Type:         models.PackageTypeInternational,
			Featured:     false,
			BestSeller:   false,
			Rating:       4.7,
			ReviewCount:  73,
		},
	}
}
