package affiliates

import "errors"

var (
	// ErrAffiliateNotFound возвращается, когда аффилиат не найден
	ErrAffiliateNotFound = errors.New("affiliate not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrNotPromoter возвращается, когда пользователь не является промоутером
	ErrNotPromoter = errors.New("user is not a promoter")

	// ErrAlreadyAffiliate возвращается, когда у пользователя уже есть аффилиатский профиль
	ErrAlreadyAffiliate = errors.New("user already has an affiliate profile")

	// ErrReferralCodeTaken возвращается, когда реферальный код уже занят
	ErrReferralCodeTaken = errors.New("referral code already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
