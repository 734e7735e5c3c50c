package model

// TypeInfo carries display metadata for a donation type.
type TypeInfo struct {
	Value DonationType
	Label string
	Icon  string
}

// typeInfos is the fixed metadata table for the closed type enumeration.
var typeInfos = []TypeInfo{
	{Value: TypeMoney, Label: "Money", Icon: "💰"},
	{Value: TypeFood, Label: "Pet Food", Icon: "🥫"},
	{Value: TypeClothing, Label: "Clothing/Bedding", Icon: "👕"},
	{Value: TypeToys, Label: "Pet Toys", Icon: "🎾"},
	{Value: TypeMedical, Label: "Medical Supplies", Icon: "💊"},
	{Value: TypeOther, Label: "Other", Icon: "📦"},
}

// TypeInfos returns the metadata table in display order.
func TypeInfos() []TypeInfo {
	out := make([]TypeInfo, len(typeInfos))
	copy(out, typeInfos)
	return out
}

// InfoFor returns display metadata for a donation type. Unrecognized values
// fall back to the raw value as label with the generic package icon, so a
// bad type renders rather than disappearing.
func InfoFor(t DonationType) TypeInfo {
	for _, info := range typeInfos {
		if info.Value == t {
			return info
		}
	}
	return TypeInfo{Value: t, Label: string(t), Icon: "📦"}
}
