package affiliate

import "errors"

var (
	// ErrAffiliateNotFound возвращается, когда аффилиат не найден
	ErrAffiliateNotFound = errors.New("affiliate.repository: affiliate not found")

	// ErrDuplicateReferralCode возвращается при попытке создать аффилиата
	// с уже занятым реферальным кодом
	ErrDuplicateReferralCode = errors.New("affiliate.repository: referral code already exists")

	// ErrDuplicateUser возвращается, когда у пользователя уже есть аффилиатский профиль
	ErrDuplicateUser = errors.New("affiliate.repository: user already has an affiliate profile")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("affiliate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("affiliate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("affiliate.repository: failed to scan row")
)
