package encrypt

import (
	"errors"
	"fmt"
	"regexp"
)

// 定義錯誤信息
var (
	ErrWeakPassword = errors.New("password does not meet strength requirements")
)

// ValidatePasswordStrength 驗證密碼強度
// 規則與後端一致：長度至少 10，含大寫、小寫、數字、特殊字符。
// Hashing happens server-side only; the client never sees a stored hash.
func ValidatePasswordStrength(password string) error {
	if len(password) < 10 {
		return fmt.Errorf("password must be at least 10 characters long")
	}

	// 至少包含一個大寫字母
	if matched, _ := regexp.MatchString(`[A-Z]`, password); !matched {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	// 至少包含一個小寫字母
	if matched, _ := regexp.MatchString(`[a-z]`, password); !matched {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	// 至少包含一個數字
	if matched, _ := regexp.MatchString(`[0-9]`, password); !matched {
		return fmt.Errorf("password must contain at least one digit")
	}

	// 至少包含一個特殊字符
	if matched, _ := regexp.MatchString(`[^A-Za-z0-9]`, password); !matched {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}
