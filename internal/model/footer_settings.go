package model

// FooterSettings site alt bilgisi ve iletişim ayarları. Tek kayıt vardır,
// her kayıtta bütünüyle değiştirilir.
type FooterSettings struct {
	CompanyName    string `json:"companyName" validate:"required"`
	Tagline        string `json:"tagline"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	WeekdayHours   string `json:"weekdayHours"`
	SaturdayHours  string `json:"saturdayHours"`
	SundayHours    string `json:"sundayHours"`
	WhatsappNumber string `json:"whatsappNumber"`
}

func DefaultFooterSettings() FooterSettings {
	return FooterSettings{
		CompanyName:    "Reis Emlak",
		Tagline:        "Güvenle evinizi alın",
		Description:    "Eskişehir'in güvenilir emlak danışmanı. Hayalinizdeki evi bulmak için buradayız.",
		Address:        "Arifiye, Süleyman Çakır Cd. No:14 D:2\n26000 Tepebaşı/Eskişehir",
		Phone:          "+90 222 123 45 67",
		Email:          "info@reisemlak.com",
		WeekdayHours:   "09:00 - 18:00",
		SaturdayHours:  "09:00 - 15:00",
		SundayHours:    "Kapalı",
		WhatsappNumber: "+905551234567",
	}
}
