package utils

// NormalizePhone strips everything that is not a digit
func NormalizePhone(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	return string(digits)
}

// IsValidBDPhone checks a normalized Bangladesh mobile number: exactly 11
// digits starting with 01
func IsValidBDPhone(normalized string) bool {
	if len(normalized) != 11 {
		return false
	}
	return normalized[0] == '0' && normalized[1] == '1'
}
