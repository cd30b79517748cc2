package get_affiliate_by_code

// ReferralCodeResponse публичный ответ для проверки реферального кода
// Ставка комиссии и данные аффилиата наружу не отдаются
type ReferralCodeResponse struct {
	ReferralCode string `json:"referralCode"`
	Valid        bool   `json:"valid"`
}
