package store

// seedPersons returns the fixed record set loaded at process start.
//
// The data is a literal, not configuration: restarting the service
// always yields exactly these five records.
func seedPersons() []Person {
	return []Person{
		{
			ID:             "3b58aade-8415-49dd-88db-8d7bce14932a",
			FirstName:      "Tanya",
			LastName:       "Slad",
			GraduationYear: 1996,
			Address:        "043 Heath Hill",
			City:           "Dayton",
			Zip:            "45426",
			Country:        "United States",
			Avatar:         "http://dummyimage.com/139x100.png/cc0000/ffffff",
		},
		{
			ID:             "d64efd92-ca8e-40da-b234-47e6403eb167",
			FirstName:      "Ferdy",
			LastName:       "Garrow",
			GraduationYear: 1970,
			Address:        "10 Wayridge Terrace",
			City:           "North Little Rock",
			Zip:            "72199",
			Country:        "United States",
			Avatar:         "http://dummyimage.com/148x100.png/dddddd/000000",
		},
		{
			ID:             "66c09925-589a-43b6-9a5d-d1601cf53287",
			FirstName:      "Lilla",
			LastName:       "Aupol",
			GraduationYear: 1985,
			Address:        "637 Carey Pass",
			City:           "Gainesville",
			Zip:            "32627",
			Country:        "United States",
			Avatar:         "http://dummyimage.com/174x100.png/ff4444/ffffff",
		},
		{
			ID:             "0dd63e57-0b5f-44bc-94ae-5c1b4947cb49",
			FirstName:      "Abdel",
			LastName:       "Duke",
			GraduationYear: 1995,
			Address:        "2 Lake View Point",
			City:           "Shreveport",
			Zip:            "71105",
			Country:        "United States",
			Avatar:         "http://dummyimage.com/145x100.png/dddddd/000000",
		},
		{
			ID:             "a3d8adba-4c20-495f-b4c4-f7de8b9cfb15",
			FirstName:      "Corby",
			LastName:       "Tettley",
			GraduationYear: 1984,
			Address:        "90329 Amoth Drive",
			City:           "Boulder",
			Zip:            "80305",
			Country:        "United States",
			Avatar:         "http://dummyimage.com/198x100.png/cc0000/ffffff",
		},
	}
}
