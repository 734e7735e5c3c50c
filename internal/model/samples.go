package model

// SampleDonations returns the starter records used to seed a fresh session.
// IDs are zero; the store assigns real ones on insert.
func SampleDonations() []Donation {
	return []Donation{
		{DonorName: "Sarah Johnson", Type: TypeMoney, Amount: "500", Date: "2024-08-15"},
		{DonorName: "Mike Chen", Type: TypeFood, Amount: "20", Date: "2024-08-14"},
		{DonorName: "Emily Davis", Type: TypeClothing, Amount: "5", Date: "2024-08-13"},
	}
}
