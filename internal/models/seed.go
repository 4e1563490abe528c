package models

// SeedStations is the static fixture loaded by the one-time admin seed
// action. Slot availability here is fixed rather than randomized so the
// demo data is stable across environments.
func SeedStations() []*Station {
	return []*Station{
		seedStation("Tata Power EZ Charge - Connaught Place", "Block A, Connaught Place", "New Delhi", "India",
			28.6315, 77.2167, "+91 11 6666 7777", []string{"Wi-Fi", "Cafe", "Restroom"}, 4.8, 124, 2, 5),
		seedStation("ChargeGrid Mumbai", "Bandra Kurla Complex", "Mumbai", "India",
			19.0662, 72.8693, "+91 22 4444 5555", []string{"Wi-Fi", "Restroom", "Lounge"}, 4.6, 98, 1, 6),
		seedStation("Ather Grid - Koramangala", "80 Feet Road, Koramangala", "Bangalore", "India",
			12.9352, 77.6245, "+91 80 1234 5678", []string{"Cafe", "Restroom"}, 4.7, 156, 0, 3),
		seedStation("Marina Power Hub", "Marina Beach Road", "Chennai", "India",
			13.0500, 80.2824, "+91 44 2222 3333", []string{"Restroom", "Vending Machine"}, 4.3, 67, 4, 7),
		seedStation("ChargePoint - Canary Wharf", "1 Canada Square", "London", "United Kingdom",
			51.5054, -0.0235, "+44 20 7946 0958", []string{"Wi-Fi", "Cafe", "Lounge"}, 4.9, 211, 3, 5),
		seedStation("Ionity Charging Hub - Alexanderplatz", "Alexanderplatz 1", "Berlin", "Germany",
			52.5219, 13.4132, "+49 30 901820", []string{"Wi-Fi", "Restroom"}, 4.5, 89, 1, 2),
		seedStation("Tokyo EV Fast Charge", "1-chome Shibuya", "Tokyo", "Japan",
			35.6595, 139.7005, "+81 3 1234 5678", []string{"Vending Machine", "Restroom"}, 4.8, 178, 5, 6),
		seedStation("Sydney Harbour E-Fill", "2 Circular Quay", "Sydney", "Australia",
			-33.8568, 151.2153, "+61 2 9374 4000", []string{"Wi-Fi", "Cafe"}, 4.4, 73, 0, 4),
	}
}

func seedStation(name, address, city, country string, lat, lng float64, mobile string, amenities []string, rating float64, reviews int, blockedA, blockedB int) *Station {
	slots := []Slot{
		{Time: "09:00 AM", Available: true},
		{Time: "10:00 AM", Available: true},
		{Time: "11:00 AM", Available: true},
		{Time: "12:00 PM", Available: true},
		{Time: "01:00 PM", Available: true},
		{Time: "02:00 PM", Available: true},
		{Time: "03:00 PM", Available: true},
		{Time: "04:00 PM", Available: true},
	}
	slots[blockedA].Available = false
	slots[blockedB].Available = false

	return &Station{
		Name:         name,
		Address:      address,
		City:         city,
		Country:      country,
		Coordinates:  NewGeoPoint(lat, lng),
		MobileNumber: mobile,
		Amenities:    amenities,
		Slots:        slots,
		Rating:       rating,
		ReviewCount:  reviews,
		ImageURL:     "https://placehold.co/600x400.png",
		ImageHint:    "charging station",
		Bunks: []Bunk{
			{ID: "bunk-1", Name: "Bunk 1", Status: BunkAvailable},
		},
	}
}
