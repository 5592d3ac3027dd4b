package domain

// CurrencyUnitsPerPoint is the fixed conversion policy between points and money.
const CurrencyUnitsPerPoint = 100

type ActivityCategory struct {
	ID            int32  `json:"id"`
	Name          string `json:"name"`
	Points        int32  `json:"points"`
	MonetaryValue int32  `json:"monetaryValue"`
	Description   string `json:"description"`
}

// DefaultCategories is the reference catalog seeded into an empty database.
var DefaultCategories = []ActivityCategory{
	{Name: "Article Publication", Points: 10, MonetaryValue: 1000, Description: "Authored an article published in a professional journal or newspaper"},
	{Name: "Speaking Engagement", Points: 15, MonetaryValue: 1500, Description: "Spoke at a conference, seminar or webinar as a firm representative"},
	{Name: "Client Referral", Points: 20, MonetaryValue: 2000, Description: "Referred a new client engagement that was signed"},
	{Name: "Training Delivered", Points: 8, MonetaryValue: 800, Description: "Conducted an internal or external training session"},
	{Name: "Professional Certification", Points: 25, MonetaryValue: 2500, Description: "Completed a professional certification or qualification"},
	{Name: "Knowledge Sharing", Points: 5, MonetaryValue: 500, Description: "Published an internal knowledge note, template or checklist"},
	{Name: "Recruitment Support", Points: 5, MonetaryValue: 500, Description: "Interviewed candidates or supported a campus drive"},
}
